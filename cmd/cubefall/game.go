package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	debugui_ebiten "github.com/plus3/cubefall/debugui/ebiten"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/loop"
	"github.com/plus3/cubefall/termview"
)

// Game implements ebiten.Game over one session.
type Game struct {
	Session   *game.Session
	Scheduler *loop.Scheduler
	Renderer  *Renderer

	// Imgui is nil unless the inspector windows are enabled.
	Imgui *debugui_ebiten.ImguiBackend

	// Dump prints the final board to stdout at game over.
	Dump bool

	over bool
}

// NewGame watches session for game over, including a session that
// started over because the first piece did not fit. With verbose every
// event is logged.
func NewGame(session *game.Session, scheduler *loop.Scheduler, verbose bool) *Game {
	g := &Game{
		Session:   session,
		Scheduler: scheduler,
		over:      session.GameOver(),
	}
	session.OnEvent(func(e game.Event) {
		if verbose {
			log.Printf("event: %s", e)
		}
		if e.Kind == game.EventGameOver {
			g.over = true
		}
	})
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.over = false
		g.Session.Restart()
	}

	if g.Imgui != nil {
		g.Imgui.BeginFrame()
	}
	g.Scheduler.Once(1.0 / 60.0)
	if g.Imgui != nil {
		g.Imgui.EndFrame()
	}

	if g.over && g.Dump {
		fmt.Fprintln(os.Stdout, termview.New(os.Stdout).Session(g.Session))
		g.Dump = false
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, g.Session)

	status := termview.Status(g.Session)
	switch {
	case g.Session.GameOver():
		status += "\nGAME OVER - press R to restart"
	case g.Session.Revealing():
		status += "\nredrawing... press any game key to skip"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)

	if g.Imgui != nil {
		g.Imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
