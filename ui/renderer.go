package ui

import (
	"fmt"

	"snake-classic/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontLarge  = 60
	fontMedium = 40
	fontSmall  = 28
	hudPadding = 10
)

var (
	colorHead      = rl.Color{R: 0, G: 255, B: 0, A: 255}
	colorBody      = rl.Color{R: 0, G: 180, B: 0, A: 255}
	colorFood      = rl.Color{R: 255, G: 0, B: 0, A: 255}
	colorHighlight = rl.Color{R: 255, G: 255, B: 0, A: 255}
	colorGrid      = rl.Color{R: 128, G: 128, B: 128, A: 255}
	colorOverlay   = rl.Color{R: 0, G: 0, B: 0, A: 200}
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
}

// NewRenderer sizes the window area to the grid; the window itself is opened by the caller
func NewRenderer(gridWidth, gridHeight, cellSize int) *Renderer {
	return &Renderer{
		cellSize:     int32(cellSize),
		screenWidth:  int32(gridWidth * cellSize),
		screenHeight: int32(gridHeight * cellSize),
	}
}

func (r *Renderer) ScreenWidth() int32 {
	return r.screenWidth
}

func (r *Renderer) ScreenHeight() int32 {
	return r.screenHeight
}

func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	switch snap.State {
	case game.StateMenu:
		r.drawMenu(snap)
	case game.StateDifficultySelect:
		r.drawDifficultySelect(snap)
	case game.StatePlaying:
		r.drawBoard(snap)
	case game.StateGameOver:
		r.drawGameOver(snap)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawMenu(snap game.Snapshot) {
	midY := r.screenHeight / 2
	r.drawCentered("SNAKE", midY-100, fontLarge, colorHead)
	r.drawCentered("Press S to Start", midY, fontSmall, rl.White)
	r.drawCentered("Press Q to Quit", midY+80, fontSmall, rl.White)
	r.drawCentered(fmt.Sprintf("High Score: %d", snap.HighScore), r.screenHeight-50, fontSmall, colorHighlight)
}

func (r *Renderer) drawDifficultySelect(snap game.Snapshot) {
	midY := r.screenHeight / 2
	r.drawCentered("SELECT DIFFICULTY", midY-120, fontMedium, colorHead)

	y := midY - 20
	for i, d := range snap.Difficulties {
		label := fmt.Sprintf("%d - %s", i+1, difficultyLabel(d))
		r.drawCentered(label, y, fontSmall, rl.White)
		y += 60
	}

	r.drawCentered("ESC - Back to Menu", r.screenHeight-50, fontSmall, colorGrid)
}

func (r *Renderer) drawBoard(snap game.Snapshot) {
	// Grid lines
	for x := 0; x < snap.Grid.Width; x++ {
		for y := 0; y < snap.Grid.Height; y++ {
			rl.DrawRectangleLines(
				int32(x)*r.cellSize,
				int32(y)*r.cellSize,
				r.cellSize, r.cellSize, colorGrid)
		}
	}

	// Snake, head first
	for i, p := range snap.Snake {
		color := colorBody
		if i == 0 {
			color = colorHead
		}
		r.drawCell(int32(p.X), int32(p.Y), color, rl.White)
	}

	if !snap.Won {
		r.drawCell(int32(snap.Food.X), int32(snap.Food.Y), colorFood, colorHighlight)
	}

	// Score HUD
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), hudPadding, hudPadding, fontSmall, rl.White)
	highText := fmt.Sprintf("High Score: %d", snap.HighScore)
	highWidth := rl.MeasureText(highText, fontSmall)
	rl.DrawText(highText, r.screenWidth-highWidth-hudPadding, hudPadding, fontSmall, colorHighlight)
}

func (r *Renderer) drawGameOver(snap game.Snapshot) {
	r.drawBoard(snap)
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, colorOverlay)

	midY := r.screenHeight / 2
	title, titleColor := "GAME OVER", colorFood
	if snap.Won {
		title, titleColor = "YOU WIN", colorHead
	}
	r.drawCentered(title, midY-100, fontLarge, titleColor)
	r.drawCentered(fmt.Sprintf("Score: %d", snap.Score), midY-20, fontMedium, rl.White)
	r.drawCentered(fmt.Sprintf("High Score: %d", snap.HighScore), midY+30, fontMedium, colorHighlight)
	r.drawCentered(fmt.Sprintf("Games: %d  Avg: %.1f", snap.GamesPlayed, snap.AverageScore), midY+85, fontSmall, colorGrid)
	r.drawCentered("Press R to Restart", midY+140, fontSmall, rl.White)
	r.drawCentered("Press Q or ESC to Quit", midY+190, fontSmall, rl.White)
}

// drawCell fills a grid cell and outlines it
func (r *Renderer) drawCell(x, y int32, fill, border rl.Color) {
	rect := rl.Rectangle{
		X:      float32(x * r.cellSize),
		Y:      float32(y * r.cellSize),
		Width:  float32(r.cellSize),
		Height: float32(r.cellSize),
	}
	rl.DrawRectangleRec(rect, fill)
	rl.DrawRectangleLinesEx(rect, 2, border)
}

func (r *Renderer) drawCentered(text string, y, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-width)/2, y-fontSize/2, fontSize, color)
}

func difficultyLabel(d game.Difficulty) string {
	switch d {
	case game.Easy:
		return "Easy"
	case game.Medium:
		return "Medium"
	case game.Hard:
		return "Hard"
	default:
		return fmt.Sprintf("%d moves/s", d.MovesPerSecond())
	}
}
