package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/shape"
	"github.com/plus3/cubefall/termview"
)

func main() {
	def := game.DefaultConfig()

	width := flag.Int("width", def.Width, "Board width in cells.")
	depth := flag.Int("depth", def.Depth, "Board depth in cells.")
	height := flag.Int("height", def.Height, "Board height in cells.")
	gravity := flag.Duration("gravity", def.Gravity, "Time between gravity steps.")
	reveal := flag.Duration("reveal", def.RevealStep, "Time per cell when redrawing the board after a clear. 0 disables the redraw.")
	seed := flag.Uint64("seed", 0, "Shape selection seed. 0 picks one at random.")
	policy := flag.String("policy", def.Rotation.String(), "Rotation policy when a turn is blocked: revert or cycle.")
	perRow := flag.Int("per-row", 5, "Layer slices per row.")
	logPath := flag.String("log", "", "Append session events to this file.")
	flag.Parse()

	cfg := def.WithSize(*width, *depth, *height)
	cfg.Gravity = *gravity
	cfg.RevealStep = *reveal
	cfg.Seed = *seed
	rotation, err := game.ParseRotationPolicy(*policy)
	if err != nil {
		log.Fatalf("Invalid -policy: %v", err)
	}
	cfg.Rotation = rotation

	session, err := game.New(cfg, shape.Default())
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "cubefall")
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		session.OnEvent(func(e game.Event) {
			log.Printf("event: %s", e)
		})
	}

	view := termview.New(os.Stdout)
	view.PerRow = *perRow

	program := tea.NewProgram(NewModel(session, view), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("Program error: %v", err)
	}
}
