package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData is the per-frame snapshot the HUD renders.
type HUDData struct {
	Tick           int64
	Asteroids      int
	Bullets        int
	Debris         int
	Players        int
	FPS            int32
	Paused         bool
	StepsPerUpdate int
}

// Action reports which HUD controls were clicked this frame.
type Action struct {
	TogglePause bool
	Reset       bool
}

// HUD draws the stats overlay and the control buttons.
type HUD struct {
	textColor rl.Color
}

func NewHUD() *HUD {
	return &HUD{textColor: rl.Gray}
}

// Draw renders the HUD and returns any actions the user triggered.
func (h *HUD) Draw(data HUDData) Action {
	lines := []string{
		fmt.Sprintf("tick %d", data.Tick),
		fmt.Sprintf("fps %d  x%d", data.FPS, data.StepsPerUpdate),
		fmt.Sprintf("asteroids %d", data.Asteroids),
		fmt.Sprintf("bullets %d", data.Bullets),
		fmt.Sprintf("debris %d", data.Debris),
		fmt.Sprintf("players %d", data.Players),
	}
	y := int32(10)
	for _, line := range lines {
		rl.DrawText(line, 10, y, 10, h.textColor)
		y += 14
	}

	if data.Paused {
		rl.DrawText("PAUSED", 10, y+6, 20, rl.Yellow)
	}

	var action Action
	pauseLabel := "Pause"
	if data.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.NewRectangle(10, float32(y)+34, 70, 24), pauseLabel) {
		action.TogglePause = true
	}
	if gui.Button(rl.NewRectangle(88, float32(y)+34, 70, 24), "Reset") {
		action.Reset = true
	}
	return action
}
