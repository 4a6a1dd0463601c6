package component

import "image/color"

// HitFlash tints a sprite for Seconds, then restores Original.
type HitFlash struct {
	Seconds  float64
	Original color.Color
}

var HitFlashComponent = NewComponent[HitFlash]()
