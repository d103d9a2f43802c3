package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Binding is what a key produces
// Sprint marks shifted variants, terminals report Shift+W as 'W' with no key-up
type Binding struct {
	Action Action
	Sprint bool
}

// KeyTable maps terminal keys to bindings
type KeyTable struct {
	// Printable runes, including space
	Runes map[rune]Binding
	// Special keys (arrows, Enter)
	Keys map[tcell.Key]Binding
}

// specialKeyNames resolves non-rune key names accepted in binding config
var specialKeyNames = map[string]tcell.Key{
	"up":    tcell.KeyUp,
	"down":  tcell.KeyDown,
	"left":  tcell.KeyLeft,
	"right": tcell.KeyRight,
	"enter": tcell.KeyEnter,
	"tab":   tcell.KeyTab,
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		Runes: map[rune]Binding{
			' ': {Action: ActionJump},
			'f': {Action: ActionKick},
			'b': {Action: ActionBlock},
		},
		Keys: map[tcell.Key]Binding{
			tcell.KeyUp:    {Action: ActionMoveForward},
			tcell.KeyDown:  {Action: ActionMoveBack},
			tcell.KeyLeft:  {Action: ActionMoveLeft},
			tcell.KeyRight: {Action: ActionMoveRight},
			tcell.KeyEnter: {Action: ActionConfirm},
		},
	}
	kt.bindMovement('w', ActionMoveForward)
	kt.bindMovement('s', ActionMoveBack)
	kt.bindMovement('a', ActionMoveLeft)
	kt.bindMovement('d', ActionMoveRight)
	return kt
}

// bindMovement binds a lowercase rune and its uppercase sprint variant
func (kt *KeyTable) bindMovement(r rune, a Action) {
	kt.Runes[r] = Binding{Action: a}
	if upper := unicode.ToUpper(r); upper != r {
		kt.Runes[upper] = Binding{Action: a, Sprint: true}
	}
}

// Rebind applies action-name to key-name overrides
// Previous plain bindings of each overridden action are removed
// Key names: a single character, "space", or one of up/down/left/right/enter/tab
func (kt *KeyTable) Rebind(overrides map[string]string) error {
	for actionName, keyName := range overrides {
		a, err := ParseAction(actionName)
		if err != nil {
			return fmt.Errorf("key binding: %w", err)
		}

		r, key, isRune, err := resolveKey(keyName)
		if err != nil {
			return fmt.Errorf("key binding for %s: %w", actionName, err)
		}

		kt.unbind(a)
		if isRune {
			if a.Held() && a <= ActionMoveRight {
				kt.bindMovement(r, a)
			} else {
				kt.Runes[r] = Binding{Action: a}
			}
		} else {
			kt.Keys[key] = Binding{Action: a}
		}
	}
	return nil
}

func (kt *KeyTable) unbind(a Action) {
	for r, b := range kt.Runes {
		if b.Action == a {
			delete(kt.Runes, r)
		}
	}
	for k, b := range kt.Keys {
		if b.Action == a {
			delete(kt.Keys, k)
		}
	}
}

func resolveKey(name string) (r rune, key tcell.Key, isRune bool, err error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "space" {
		return ' ', 0, true, nil
	}
	if k, ok := specialKeyNames[lower]; ok {
		return 0, k, false, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ = utf8.DecodeRuneInString(name)
		return unicode.ToLower(r), 0, true, nil
	}
	return 0, 0, false, fmt.Errorf("unknown key %q", name)
}
