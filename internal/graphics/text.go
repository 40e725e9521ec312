package graphics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Text draws overlay text with a loaded font, or raylib's built-in font for the zero value.
type Text struct {
	font   rl.Font
	loaded bool
}

// LoadText loads a TTF or OTF font. Call after OpenWindow; pair with Unload.
func LoadText(path string) (Text, error) {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 || f.Texture.ID == rl.GetFontDefault().Texture.ID {
		return Text{}, fmt.Errorf("graphics: load font %s failed", path)
	}
	return Text{font: f, loaded: true}, nil
}

// Draw draws s with its top-left corner at (x, y).
func (t Text) Draw(s string, x, y, size int32, c rl.Color) {
	if !t.loaded {
		rl.DrawText(s, x, y, size, c)
		return
	}
	rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
}

// Measure returns the width of s in pixels.
func (t Text) Measure(s string, size int32) int32 {
	if !t.loaded {
		return rl.MeasureText(s, size)
	}
	return int32(rl.MeasureTextEx(t.font, s, float32(size), 1).X)
}

// Unload frees the font. The zero Text needs no unloading.
func (t Text) Unload() {
	if t.loaded {
		rl.UnloadFont(t.font)
	}
}
