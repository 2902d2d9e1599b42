package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type slider struct {
	label string

	min, max, step float64
	val            float64

	x, y, w, h int

	dragging bool
}

func (s *slider) valueAt(cursorX int) float64 {
	ratio := float64(cursorX-s.x) / float64(s.w)
	if ratio < 0 {
		ratio = 0
	}

	if ratio > 1 {
		ratio = 1
	}

	v := s.min + ratio*(s.max-s.min)

	if s.step > 0 {
		v = math.Round(v/s.step) * s.step
	}

	return v
}

// update handles mouse dragging; returns true when the value changed
// this tick.
func (s *slider) update() bool {
	cx, cy := ebiten.CursorPosition()

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.dragging = false

		return false
	}

	if !s.dragging {
		hit := cx >= s.x && cx <= s.x+s.w && cy >= s.y && cy <= s.y+s.h

		if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || !hit {
			return false
		}

		s.dragging = true
	}

	v := s.valueAt(cx)
	if v == s.val {
		return false
	}

	s.val = v

	return true
}

func (s *slider) draw(screen *ebiten.Image) {
	midY := float32(s.y) + float32(s.h)/2

	vector.StrokeLine(screen, float32(s.x), midY, float32(s.x+s.w), midY, 2,
		color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}, true)

	ratio := (s.val - s.min) / (s.max - s.min)
	knobX := float32(s.x) + float32(ratio)*float32(s.w)

	vector.DrawFilledCircle(screen, knobX, midY, 6,
		color.RGBA{R: 0xfa, G: 0xfa, B: 0xd2, A: 0xff}, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %.2f", s.label, s.val), s.x+s.w+12, s.y)
}
