package views

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/krotovic/stardrift/internal/geom"
	"github.com/krotovic/stardrift/internal/phi"
)

const (
	menuFontSize     = 32
	menuFirstLabelY  = 32.0
	menuLabelSpacing = 48.0
)

var (
	menuIdleColor  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	menuHoverColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// menuAction is the closed set of things a menu entry can do. Entries
// dispatch through a switch rather than storing callbacks.
type menuAction int

const (
	menuStartGame menuAction = iota
	menuQuit
)

// menuEntry is one selectable label with its pre-rendered idle and hover
// sprites.
type menuEntry struct {
	action menuAction
	idle   phi.Sprite
	hover  phi.Sprite
}

// MainMenuView is the title menu.
type MainMenuView struct {
	phi.BaseView

	entries     []menuEntry
	selected    int
	backgrounds Backgrounds
}

// NewMainMenuView builds the menu with a fresh background bundle.
func NewMainMenuView(p *phi.Phi) (*MainMenuView, error) {
	bg, err := NewBackgrounds(p)
	if err != nil {
		return nil, err
	}
	return NewMainMenuViewWithBackgrounds(p, bg)
}

// NewMainMenuViewWithBackgrounds builds the menu over an existing background
// bundle, keeping its scroll positions.
func NewMainMenuViewWithBackgrounds(p *phi.Phi, backgrounds Backgrounds) (*MainMenuView, error) {
	entries := []struct {
		label  string
		action menuAction
	}{
		{"New Game", menuStartGame},
		{"Quit", menuQuit},
	}

	view := &MainMenuView{backgrounds: backgrounds}
	fontPath := cfg.Assets.Path(cfg.Assets.Font)

	for _, e := range entries {
		idle, err := p.TextSprite(e.label, fontPath, menuFontSize, menuIdleColor)
		if err != nil {
			return nil, fmt.Errorf("failed to build menu label %q: %w", e.label, err)
		}
		hover, err := p.TextSprite(e.label, fontPath, menuFontSize, menuHoverColor)
		if err != nil {
			return nil, fmt.Errorf("failed to build menu label %q: %w", e.label, err)
		}
		view.entries = append(view.entries, menuEntry{action: e.action, idle: idle, hover: hover})
	}

	return view, nil
}

// Render handles menu navigation and draws the labels over the backdrop.
func (v *MainMenuView) Render(p *phi.Phi, elapsed float64) phi.ViewAction {
	if p.Events.Now.Quit || p.Events.Now.Pressed(phi.KeyEscape) {
		return phi.Quit()
	}

	// Execute the currently selected entry.
	if p.Events.Now.Pressed(phi.KeySpace) {
		switch v.entries[v.selected].action {
		case menuStartGame:
			game, err := NewShipViewWithBackgrounds(p, v.backgrounds)
			if err != nil {
				log.Error("failed to start game", "err", err)
				return phi.Quit()
			}
			return phi.ChangeView(game)
		case menuQuit:
			return phi.Quit()
		}
	}

	// Move the selection, wrapping around at both ends.
	if p.Events.Now.Pressed(phi.KeyUp) {
		v.selected--
		if v.selected < 0 {
			v.selected = len(v.entries) - 1
		}
	}
	if p.Events.Now.Pressed(phi.KeyDown) {
		v.selected++
		if v.selected >= len(v.entries) {
			v.selected = 0
		}
	}

	p.Renderer.Clear(clearColor)

	v.backgrounds.Back.Render(p.Renderer, elapsed)
	v.backgrounds.Middle.Render(p.Renderer, elapsed)
	v.backgrounds.Front.Render(p.Renderer, elapsed)

	winW, _ := p.OutputSize()

	for i, entry := range v.entries {
		sprite := entry.idle
		if i == v.selected {
			sprite = entry.hover
		}

		w, h := sprite.Size()
		sprite.Render(p.Renderer, geom.NewRect(
			(winW-w)/2,
			menuFirstLabelY+menuLabelSpacing*float64(i),
			w,
			h,
		))
	}

	return phi.Continue()
}
