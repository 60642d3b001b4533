package component

import "image/color"

// Sprite is a colored rectangle; the shell draws puzzle state directly so
// the core carries no textures.
type Sprite struct {
	Width  float64
	Height float64
	Color  color.RGBA
	Layer  int
}

var SpriteComponent = NewComponent[Sprite]()
