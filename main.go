package main

import (
	"log"
	"time"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/game/types"
	"snake-classic/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg := config.Load()

	if logFile := setupLogging(cfg.LogFile); logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	store := manager.NewFileScoreStore(cfg.HighScoreFile)
	stats := manager.NewStatsManager(cfg.StatsFile)
	g := game.NewGame(store, stats, seed)

	renderer := ui.NewRenderer(g.Grid.Width, g.Grid.Height, cfg.CellSize)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(renderer.ScreenWidth(), renderer.ScreenHeight(), "Snake Game")
	defer rl.CloseWindow()

	// Escape is a game key, not a window close request
	rl.SetExitKey(0)
	rl.SetTargetFPS(types.FPS)

	log.Printf("Starting with high score %d from %s", g.HighScore(), store.Path())

	running := true
	for running && !rl.WindowShouldClose() {
		for _, key := range ui.PollKeys() {
			if !g.HandleKey(key) {
				running = false
				break
			}
		}
		if !running {
			break
		}

		g.Update()
		renderer.Draw(g.Snapshot())
	}
}
