package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/cubefall/debugui"
	"github.com/plus3/cubefall/game"
)

// bindings maps keys to commands. Arrows and the number row or keypad move
// the piece across the x/z plane, with 1, 3, 7 and 9 moving diagonally.
var bindings = map[ebiten.Key]game.Command{
	ebiten.KeyArrowLeft:  game.Translate{DX: -1},
	ebiten.KeyArrowUp:    game.Translate{DZ: -1},
	ebiten.KeyArrowRight: game.Translate{DX: 1},
	ebiten.KeyArrowDown:  game.Translate{DZ: 1},

	ebiten.KeyDigit1: game.Translate{DX: -1, DZ: 1},
	ebiten.KeyDigit2: game.Translate{DZ: 1},
	ebiten.KeyDigit3: game.Translate{DX: 1, DZ: 1},
	ebiten.KeyDigit4: game.Translate{DX: -1},
	ebiten.KeyDigit6: game.Translate{DX: 1},
	ebiten.KeyDigit7: game.Translate{DX: -1, DZ: -1},
	ebiten.KeyDigit8: game.Translate{DZ: -1},
	ebiten.KeyDigit9: game.Translate{DX: 1, DZ: -1},

	ebiten.KeyNumpad1: game.Translate{DX: -1, DZ: 1},
	ebiten.KeyNumpad2: game.Translate{DZ: 1},
	ebiten.KeyNumpad3: game.Translate{DX: 1, DZ: 1},
	ebiten.KeyNumpad4: game.Translate{DX: -1},
	ebiten.KeyNumpad6: game.Translate{DX: 1},
	ebiten.KeyNumpad7: game.Translate{DX: -1, DZ: -1},
	ebiten.KeyNumpad8: game.Translate{DZ: -1},
	ebiten.KeyNumpad9: game.Translate{DX: 1, DZ: -1},

	ebiten.KeySpace:   game.HardDrop{},
	ebiten.KeyDigit0:  game.HardDrop{},
	ebiten.KeyNumpad0: game.HardDrop{},

	ebiten.KeyDigit5:  game.RotateNext{Dir: 1},
	ebiten.KeyNumpad5: game.RotateNext{Dir: 1},
	ebiten.KeyV:       game.RotateNext{Dir: 1},
	ebiten.KeyB:       game.RotateNext{Dir: -1},

	ebiten.KeyP: game.PauseToggle{},
}

// KeyInput is a loop.Source reading key presses since the last frame.
type KeyInput struct {
	session *game.Session
	keys    []ebiten.Key

	// Capture, when set, suppresses input while ImGui owns the keyboard.
	Capture *debugui.ImguiInputState
}

func NewKeyInput(session *game.Session) *KeyInput {
	return &KeyInput{session: session}
}

func (k *KeyInput) Poll() []game.Command {
	if k.Capture != nil && k.Capture.WantCaptureKeyboard {
		return nil
	}

	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	return decode(k.keys, k.session.Revealing())
}

// decode translates pressed keys into commands. During a reveal only the
// first bound key is passed on, since it does nothing but end the reveal.
func decode(keys []ebiten.Key, revealing bool) []game.Command {
	var cmds []game.Command
	for _, key := range keys {
		cmd, ok := bindings[key]
		if !ok {
			continue
		}
		cmds = append(cmds, cmd)
		if revealing {
			break
		}
	}
	return cmds
}
