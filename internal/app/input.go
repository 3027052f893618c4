package app

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/loopcarousel/internal/config"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"return":    ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"escape":    ebiten.KeyEscape,
	"esc":       ebiten.KeyEscape,
	"backspace": ebiten.KeyBackspace,
	"home":      ebiten.KeyHome,
	"end":       ebiten.KeyEnd,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"f1":        ebiten.KeyF1,
	"f2":        ebiten.KeyF2,
	"f11":       ebiten.KeyF11,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(name)]
	return k, ok
}

// Keys holds the resolved keybinds.
type Keys struct {
	StepLeft   ebiten.Key
	StepRight  ebiten.Key
	Reset      ebiten.Key
	Fullscreen ebiten.Key
	Quit       ebiten.Key
	Help       ebiten.Key
}

// ResolveKeys converts the configured key names, failing on the first unknown name.
func ResolveKeys(kb config.KeybindConfig) (Keys, error) {
	keys := Keys{Help: ebiten.KeyH}
	for _, b := range []struct {
		field string
		name  string
		dst   *ebiten.Key
	}{
		{"step_left", kb.StepLeft, &keys.StepLeft},
		{"step_right", kb.StepRight, &keys.StepRight},
		{"reset", kb.Reset, &keys.Reset},
		{"fullscreen", kb.Fullscreen, &keys.Fullscreen},
		{"quit", kb.Quit, &keys.Quit},
	} {
		k, ok := parseKey(b.name)
		if !ok {
			return Keys{}, fmt.Errorf("keybinds.%s: unknown key %q", b.field, b.name)
		}
		*b.dst = k
	}
	return keys, nil
}

// HelpLines describes the keybinds for the help overlay.
func (k Keys) HelpLines() []string {
	return []string{
		"Drag          scroll the carousel",
		fmt.Sprintf("%-13s step one cell", k.StepLeft.String()+"/"+k.StepRight.String()),
		fmt.Sprintf("%-13s reset to start", k.Reset.String()),
		fmt.Sprintf("%-13s toggle fullscreen", k.Fullscreen.String()),
		"F12           debug overlay",
		fmt.Sprintf("%-13s quit", k.Quit.String()),
	}
}

// keyJustPressed checks if the key was just pressed without a modifier held.
func keyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k) &&
		!ebiten.IsKeyPressed(ebiten.KeyControl) &&
		!ebiten.IsKeyPressed(ebiten.KeyAlt)
}
