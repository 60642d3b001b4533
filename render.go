package main

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
)

var background = color.RGBA{R: 0x16, G: 0x16, B: 0x20, A: 0xff}

var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

type drawItem struct {
	e      ecs.Entity
	sprite *component.Sprite
	t      *component.Transform
}

// drawWorld renders every sprite as a flat rect, back layer first.
// Drawbridge planks are the one rotated case; they swing around the
// transform point.
func drawWorld(screen *ebiten.Image, w *ecs.World) {
	screen.Fill(background)
	if w == nil {
		return
	}

	var items []drawItem
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.Sprite, t *component.Transform) {
		items = append(items, drawItem{e: e, sprite: s, t: t})
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].sprite.Layer < items[j].sprite.Layer
	})

	for _, it := range items {
		if br, ok := ecs.Get(w, it.e, component.DrawbridgeComponent.Kind()); ok {
			drawPlank(screen, it.sprite, it.t, br)
			continue
		}
		vector.FillRect(screen, float32(it.t.X), float32(it.t.Y), float32(it.sprite.Width), float32(it.sprite.Height), it.sprite.Color, false)
	}
}

func drawPlank(screen *ebiten.Image, s *component.Sprite, t *component.Transform, br *component.Drawbridge) {
	deg := br.Angle
	if br.ClosedAngle < 0 {
		// left-hanging planks extend away from +X
		deg = 180 + br.Angle
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.Width, s.Height)
	op.GeoM.Translate(0, -s.Height/2)
	op.GeoM.Rotate(deg * math.Pi / 180)
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleWithColor(s.Color)
	screen.DrawImage(whiteImage, op)
}
