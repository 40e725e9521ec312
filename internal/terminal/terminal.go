// Package terminal is the in-game console: a line editor at the bottom of the window with the
// recent log above it. ESC shows and hides it. Lines starting with "/" run through the command
// registry; anything else is echoed to the log.
package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"pbj/internal/commands"
	"pbj/internal/graphics"
	"pbj/internal/logger"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Log lines drawn above the input bar.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
)

var (
	barColor    = rl.NewColor(40, 40, 40, 255)
	edgeColor   = rl.NewColor(80, 80, 80, 255)
	historyFill = rl.NewColor(24, 24, 24, 240)
)

// Terminal is closed at start. While open it owns the keyboard; OnToggle, if set, is called
// with the new state whenever ESC flips it.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	input    string
	open     bool
	text     graphics.Text
	OnToggle func(open bool)
}

// New returns a closed console that echoes to log and runs commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetText sets the font used for the bar and the history.
func (t *Terminal) SetText(text graphics.Text) {
	t.text = text
}

// Toggle shows or hides the console.
func (t *Terminal) Toggle() {
	t.open = !t.open
	if t.OnToggle != nil {
		t.OnToggle(t.open)
	}
}

// Update handles ESC and, while open, typing, paste, backspace and enter. Call once per frame
// before the game polls the keyboard.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.Toggle()
	}
	if !t.open {
		return
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		t.input += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.input += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		t.input = backspace(t.input)
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		line := t.input
		t.input = ""
		t.Submit(line)
	}
}

// Submit echoes line and runs it if it is a command. Empty lines are ignored.
func (t *Terminal) Submit(line string) {
	if line == "" {
		return
	}
	t.log.Echo(prompt + line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Error(err.Error())
	}
}

func backspace(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// clip shortens long lines for display.
func clip(line string) string {
	if len(line) <= maxLineLen {
		return line
	}
	cut := maxLineLen - 3
	for cut > 0 && !utf8.RuneStart(line[cut]) {
		cut--
	}
	return line[:cut] + "..."
}

// Draw draws the input bar at the bottom and the recent log lines above it.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	historyH := int32(maxLinesOnScreen * lineHeight)
	historyY := barY - historyH
	if historyY < 0 {
		historyH = barY
		historyY = 0
	}
	if historyH > 0 {
		rl.DrawRectangle(0, historyY, screenW, historyH, historyFill)
	}
	lines := t.log.Lines()
	if len(lines) > maxLinesOnScreen {
		lines = lines[len(lines)-maxLinesOnScreen:]
	}
	for i, line := range lines {
		y := historyY + int32(i*lineHeight) + padding
		t.text.Draw(clip(line), padding, y, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, edgeColor)
	t.text.Draw(prompt+t.input+"|", padding, barY+padding, fontSize, rl.White)
}
