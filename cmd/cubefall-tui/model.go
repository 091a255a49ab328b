package main

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/loop"
	"github.com/plus3/cubefall/termview"
)

const frameInterval = time.Second / 30

const help = "arrows/1-9 move  5/v rotate  b rotate back  space/0 drop  p pause  r restart  q quit"

// keymap mirrors the window frontend. Terminals do not tell the keypad
// apart from the number row, so the digits cover both.
var keymap = map[string]game.Command{
	"left":  game.Translate{DX: -1},
	"up":    game.Translate{DZ: -1},
	"right": game.Translate{DX: 1},
	"down":  game.Translate{DZ: 1},

	"1": game.Translate{DX: -1, DZ: 1},
	"2": game.Translate{DZ: 1},
	"3": game.Translate{DX: 1, DZ: 1},
	"4": game.Translate{DX: -1},
	"6": game.Translate{DX: 1},
	"7": game.Translate{DX: -1, DZ: -1},
	"8": game.Translate{DZ: -1},
	"9": game.Translate{DX: 1, DZ: -1},

	" ": game.HardDrop{},
	"0": game.HardDrop{},

	"5": game.RotateNext{Dir: 1},
	"v": game.RotateNext{Dir: 1},
	"b": game.RotateNext{Dir: -1},

	"p": game.PauseToggle{},
}

type frameMsg time.Time

// Model drives a session from bubbletea frame ticks and key messages.
type Model struct {
	session   *game.Session
	scheduler *loop.Scheduler
	input     *loop.Queue
	view      *termview.View

	last time.Time
}

func NewModel(session *game.Session, view *termview.View) Model {
	input := &loop.Queue{}
	scheduler, _ := loop.NewGameScheduler(session, input)
	return Model{
		session:   session,
		scheduler: scheduler,
		input:     input,
		view:      view,
	}
}

func (m Model) Init() tea.Cmd {
	return frameCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)
		dt := frameInterval.Seconds()
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		m.scheduler.Once(dt)
		return m, frameCmd()
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.session.Restart()
		default:
			if cmd, ok := keymap[key]; ok {
				m.input.Push(cmd)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.view.Session(m.session))
	sb.WriteByte('\n')
	switch {
	case m.session.GameOver():
		sb.WriteString("GAME OVER - press r to restart\n")
	case m.session.Revealing():
		sb.WriteString("redrawing... press any game key to skip\n")
	}
	sb.WriteString(help)
	return sb.String()
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}
