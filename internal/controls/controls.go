// Package controls tracks the four directional movement flags driven by key events.
package controls

import (
	"fmt"
	"strings"
)

// Direction is one of the four movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// EventType distinguishes key presses from releases.
type EventType int

const (
	KeyDown EventType = iota
	KeyUp
)

// Event is a platform key event. Key is the bound key name (e.g. "W"); Repeat marks a
// key-down generated by the platform's auto-repeat.
type Event struct {
	Type   EventType
	Key    string
	Repeat bool
}

// Bindings maps key names to directions.
type Bindings map[string]Direction

// DefaultBindings is WSAD.
func DefaultBindings() Bindings {
	return Bindings{"W": Up, "S": Down, "A": Left, "D": Right}
}

// ParseBindings builds Bindings from direction names to key names, e.g. {"up": "W"}.
// Key names are upper-cased.
func ParseBindings(keys map[string]string) (Bindings, error) {
	b := make(Bindings, len(keys))
	for dir, key := range keys {
		d, err := parseDirection(dir)
		if err != nil {
			return nil, err
		}
		key = strings.ToUpper(strings.TrimSpace(key))
		if key == "" {
			return nil, fmt.Errorf("controls: empty key for %s", d)
		}
		if prev, dup := b[key]; dup {
			return nil, fmt.Errorf("controls: key %s bound to both %s and %s", key, prev, d)
		}
		b[key] = d
	}
	return b, nil
}

func parseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("controls: unknown direction %q", s)
}

// Keys returns the bound key names. Order is unspecified.
func (b Bindings) Keys() []string {
	out := make([]string, 0, len(b))
	for k := range b {
		out = append(out, k)
	}
	return out
}

// State is the set of held directions.
type State struct {
	Up, Down, Left, Right bool
}

// Held reports whether d is held.
func (s State) Held(d Direction) bool {
	switch d {
	case Up:
		return s.Up
	case Down:
		return s.Down
	case Left:
		return s.Left
	case Right:
		return s.Right
	}
	return false
}

// String lists the held directions, e.g. "up+left", or "none".
func (s State) String() string {
	var held []string
	for _, d := range []Direction{Up, Down, Left, Right} {
		if s.Held(d) {
			held = append(held, d.String())
		}
	}
	if len(held) == 0 {
		return "none"
	}
	return strings.Join(held, "+")
}

func (s *State) set(d Direction, held bool) {
	switch d {
	case Up:
		s.Up = held
	case Down:
		s.Down = held
	case Left:
		s.Left = held
	case Right:
		s.Right = held
	}
}

// Controls applies key events to a State through a set of Bindings.
type Controls struct {
	bindings Bindings
	state    State
}

// New returns Controls with nothing held. A nil bindings map uses DefaultBindings.
func New(bindings Bindings) *Controls {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Controls{bindings: bindings}
}

// Handle applies ev and reports whether it was consumed. Auto-repeat presses and keys
// without a binding are not consumed and leave the state unchanged.
func (c *Controls) Handle(ev Event) bool {
	if ev.Type == KeyDown && ev.Repeat {
		return false
	}
	if ev.Type != KeyDown && ev.Type != KeyUp {
		return false
	}
	d, ok := c.bindings[strings.ToUpper(ev.Key)]
	if !ok {
		return false
	}
	c.state.set(d, ev.Type == KeyDown)
	return true
}

// State returns the current held directions.
func (c *Controls) State() State {
	return c.state
}

// Bindings returns the active key bindings.
func (c *Controls) Bindings() Bindings {
	return c.bindings
}

// Reset releases every direction.
func (c *Controls) Reset() {
	c.state = State{}
}
