// Package graphics is the raylib side of the game: the window and frame loop, keyboard
// polling, and the lit-mesh pipeline that executes render frames.
package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"pbj/internal/config"
)

// Game is driven by Run once per frame, strictly in the order Poll, Update, Draw.
type Game interface {
	Poll()
	Update(elapsed float32)
	Draw(width, height int)
}

var clearColor = rl.NewColor(30, 30, 36, 255)

// OpenWindow creates the window and GL context. GPU resources may only be created after it
// returns; pair with CloseWindow.
func OpenWindow(w config.Window) {
	var flags uint32 = rl.FlagWindowResizable
	if w.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	rl.SetExitKey(rl.KeyNull) // ESC toggles the console; close via the window button
	if w.FPS > 0 {
		rl.SetTargetFPS(int32(w.FPS))
	}
}

// CloseWindow destroys the window and GL context.
func CloseWindow() {
	rl.CloseWindow()
}

// Run drives g until the window is closed. Draw receives the drawable size in pixels.
func Run(g Game) {
	for !rl.WindowShouldClose() {
		g.Poll()
		g.Update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(clearColor)
		g.Draw(rl.GetRenderWidth(), rl.GetRenderHeight())
		rl.EndDrawing()
	}
}
