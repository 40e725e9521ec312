package graphics

import (
	"fmt"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"pbj/internal/controls"
)

// keyCodes maps key names usable in bindings to raylib key codes.
var keyCodes = func() map[string]int32 {
	m := map[string]int32{
		"UP":    rl.KeyUp,
		"DOWN":  rl.KeyDown,
		"LEFT":  rl.KeyLeft,
		"RIGHT": rl.KeyRight,
		"SPACE": rl.KeySpace,
	}
	for c := 'A'; c <= 'Z'; c++ {
		m[string(c)] = int32(rl.KeyA) + (c - 'A')
	}
	for c := '0'; c <= '9'; c++ {
		m[string(c)] = int32(rl.KeyZero) + (c - '0')
	}
	return m
}()

type boundKey struct {
	name string
	code int32
}

// Keyboard polls the bound keys once per frame and turns edges into controls.Events.
type Keyboard struct {
	keys []boundKey
}

// NewKeyboard resolves every key in bindings. Unknown key names are an error.
func NewKeyboard(bindings controls.Bindings) (*Keyboard, error) {
	names := bindings.Keys()
	sort.Strings(names)
	k := &Keyboard{keys: make([]boundKey, 0, len(names))}
	for _, name := range names {
		code, ok := keyCodes[strings.ToUpper(name)]
		if !ok {
			return nil, fmt.Errorf("graphics: unknown key %q", name)
		}
		k.keys = append(k.keys, boundKey{name: name, code: code})
	}
	return k, nil
}

// Poll emits this frame's presses, auto-repeats and releases for the bound keys.
func (k *Keyboard) Poll(emit func(controls.Event) bool) {
	for _, key := range k.keys {
		switch {
		case rl.IsKeyPressed(key.code):
			emit(controls.Event{Type: controls.KeyDown, Key: key.name})
		case rl.IsKeyPressedRepeat(key.code):
			emit(controls.Event{Type: controls.KeyDown, Key: key.name, Repeat: true})
		}
		if rl.IsKeyReleased(key.code) {
			emit(controls.Event{Type: controls.KeyUp, Key: key.name})
		}
	}
}
