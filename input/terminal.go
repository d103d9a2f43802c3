package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminal translates tcell events into Snapshot updates
// Only the input goroutine calls it; the Snapshot is the sole shared state
type Terminal struct {
	snap  *Snapshot
	table *KeyTable
	hold  time.Duration
	scale float64
	now   func() time.Time

	mouseX, mouseY int
	tracking       bool
	blockHeld      bool
}

// NewTerminal creates an adapter; hold is how long a key press counts as held
// without auto-repeat, lookScale converts cell motion to look delta units
func NewTerminal(snap *Snapshot, table *KeyTable, hold time.Duration, lookScale float64, now func() time.Time) *Terminal {
	if table == nil {
		table = DefaultKeyTable()
	}
	if now == nil {
		now = time.Now
	}
	return &Terminal{
		snap:  snap,
		table: table,
		hold:  hold,
		scale: lookScale,
		now:   now,
	}
}

// Handle processes one terminal event, returns true when the user asked to quit
func (t *Terminal) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.Key(ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.Mouse(x, y, ev.Buttons())
	case *tcell.EventFocus:
		if !ev.Focused {
			t.snap.Release()
			t.tracking = false
			t.blockHeld = false
		}
	}
	return false
}

// Key applies a key press
func (t *Terminal) Key(key tcell.Key, r rune, mod tcell.ModMask) bool {
	var (
		b  Binding
		ok bool
	)
	switch key {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		if r == 'q' {
			return true
		}
		b, ok = t.table.Runes[r]
	default:
		b, ok = t.table.Keys[key]
	}
	if !ok || b.Action == ActionNone {
		return false
	}

	if !b.Action.Held() {
		t.snap.Press(b.Action)
		return false
	}

	until := t.now().Add(t.hold)
	t.snap.HoldUntil(b.Action, until)
	if b.Sprint || mod&tcell.ModShift != 0 {
		t.snap.HoldUntil(ActionSprint, until)
	}
	return false
}

// Mouse applies pointer motion and button state
// Secondary button is a level signal, the terminal reports its release
func (t *Terminal) Mouse(x, y int, buttons tcell.ButtonMask) {
	if t.tracking {
		dx, dy := x-t.mouseX, y-t.mouseY
		if dx != 0 || dy != 0 {
			t.snap.Look(float64(dx)*t.scale, float64(dy)*t.scale)
		}
	}
	t.mouseX, t.mouseY, t.tracking = x, y, true

	blocking := buttons&tcell.Button2 != 0
	if blocking != t.blockHeld {
		t.snap.Set(ActionBlock, blocking)
		t.blockHeld = blocking
	}
}
