package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/cubefall/debugui"
	debugui_ebiten "github.com/plus3/cubefall/debugui/ebiten"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/loop"
	"github.com/plus3/cubefall/shape"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 720
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
	dropCommits := flag.Bool("drop-commits", false, "Freeze the piece as part of a hard drop.")
	withDebugUI := flag.Bool("debugui", false, "Show the ImGui inspector windows.")
	verbose := flag.Bool("verbose", false, "Log every session event.")
	dump := flag.Bool("dump", false, "Print the board to stdout when a game ends.")
	flag.Parse()

	cfg, err := buildConfig(def.WithSize(*width, *depth, *height), *gravity, *reveal, *seed, *policy, *dropCommits)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	session, err := game.New(cfg, shape.Default())
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	input := NewKeyInput(session)
	scheduler, _ := loop.NewGameScheduler(session, input)

	g := NewGame(session, scheduler, *verbose)
	g.Renderer = NewRenderer()
	g.Dump = *dump

	if *withDebugUI {
		g.Imgui = debugui_ebiten.NewImguiBackend("cubefall", ScreenWidth, ScreenHeight)
		ui := debugui.New(scheduler)
		input.Capture = &ui.Input
		scheduler.Register(ui)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("cubefall")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("Starting %dx%dx%d board, rotation policy %s", cfg.Width, cfg.Depth, cfg.Height, cfg.Rotation)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}

func buildConfig(cfg game.Config, gravity, reveal time.Duration, seed uint64, policy string, dropCommits bool) (game.Config, error) {
	rotation, err := game.ParseRotationPolicy(policy)
	if err != nil {
		return cfg, fmt.Errorf("-policy: %w", err)
	}

	cfg.Gravity = gravity
	cfg.RevealStep = reveal
	cfg.Seed = seed
	cfg.Rotation = rotation
	cfg.DropCommits = dropCommits

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("board: %w", err)
	}
	return cfg, nil
}
