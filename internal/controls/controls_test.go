package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlePressRelease(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name     string
		ev       Event
		consumed bool
		want     State
	}{
		{"press W", Event{Type: KeyDown, Key: "W"}, true, State{Up: true}},
		{"press D", Event{Type: KeyDown, Key: "D"}, true, State{Up: true, Right: true}},
		{"release W", Event{Type: KeyUp, Key: "W"}, true, State{Right: true}},
		{"lower case a", Event{Type: KeyDown, Key: "a"}, true, State{Right: true, Left: true}},
		{"unbound key", Event{Type: KeyDown, Key: "Q"}, false, State{Right: true, Left: true}},
		{"release S while up", Event{Type: KeyUp, Key: "S"}, true, State{Right: true, Left: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.consumed, c.Handle(tc.ev))
			assert.Equal(t, tc.want, c.State())
		})
	}
}

func TestRepeatIgnored(t *testing.T) {
	c := New(nil)
	require.True(t, c.Handle(Event{Type: KeyDown, Key: "S"}))
	require.True(t, c.Handle(Event{Type: KeyUp, Key: "S"}))

	// A late auto-repeat must not re-press the key.
	assert.False(t, c.Handle(Event{Type: KeyDown, Key: "S", Repeat: true}))
	assert.Equal(t, State{}, c.State())
}

func TestReset(t *testing.T) {
	c := New(nil)
	c.Handle(Event{Type: KeyDown, Key: "W"})
	c.Handle(Event{Type: KeyDown, Key: "A"})
	c.Reset()
	assert.Equal(t, State{}, c.State())
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings(map[string]string{"up": "up", "down": "down", "left": "left", "right": "right"})
	require.NoError(t, err)
	assert.Equal(t, Bindings{"UP": Up, "DOWN": Down, "LEFT": Left, "RIGHT": Right}, b)

	c := New(b)
	assert.True(t, c.Handle(Event{Type: KeyDown, Key: "Left"}))
	assert.True(t, c.State().Held(Left))
	assert.False(t, c.Handle(Event{Type: KeyDown, Key: "A"}))

	_, err = ParseBindings(map[string]string{"up": "W", "down": "w"})
	assert.Error(t, err)
	_, err = ParseBindings(map[string]string{"sideways": "X"})
	assert.Error(t, err)
	_, err = ParseBindings(map[string]string{"up": " "})
	assert.Error(t, err)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "none", State{}.String())
	assert.Equal(t, "up+left", State{Up: true, Left: true}.String())
	assert.Equal(t, "up+down+left+right", State{true, true, true, true}.String())
}
