package audio

import (
	"fmt"

	"github.com/lixenwraith/swordfall/component"
	"github.com/lixenwraith/swordfall/event"
)

// Cue identifies a synthesized sound
type Cue int

const (
	CueHit Cue = iota
	CueBlock
	CueClash
	CueKick
	CueJump
	CueStart
	CueVictory
	CueDefeat
	cueCount
)

var cueNames = [cueCount]string{"hit", "block", "clash", "kick", "jump", "start", "victory", "defeat"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return fmt.Sprintf("cue(%d)", int(c))
	}
	return cueNames[c]
}

// CueFor maps a game event to its cue
// Whiffed kicks and resets are silent
func CueFor(ev event.GameEvent) (Cue, bool) {
	switch ev.Type {
	case event.EventHit:
		if p, ok := ev.Payload.(*event.HitPayload); ok && p.Blocked {
			return CueBlock, true
		}
		return CueHit, true
	case event.EventClash:
		return CueClash, true
	case event.EventKick:
		if p, ok := ev.Payload.(*event.KickPayload); ok && p.Connected {
			return CueKick, true
		}
	case event.EventJump:
		return CueJump, true
	case event.EventMatchStart:
		return CueStart, true
	case event.EventMatchEnd:
		if p, ok := ev.Payload.(*event.MatchEndPayload); ok && p.Victor == component.ModePlayer {
			return CueVictory, true
		}
		return CueDefeat, true
	}
	return 0, false
}
