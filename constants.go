package main

import "image/color"

// Window layout. 9:16 portrait, sized for video capture.
const (
	screenWidth  = 720
	screenHeight = 1280

	// uiAreaHeight is the compact scoreboard strip at the top of the
	// window; the arena is centered in the space below it
	uiAreaHeight = 200
)

// Rendering constants
const (
	arenaStrokeWidth       = 2.0
	lineStrokeWidth        = 1.0
	blinkStrokeWidth       = 2.0
	outlineStrokeWidth     = 2.0
	velocityIndicatorMin   = 10.0 // px/s per axis before the arrow shows
	velocityIndicatorScale = 0.3
	powerReducedShrink     = 0.8
	freeTargetRadius       = 2.0
	swatchSize             = 15.0
	scoreRowHeight         = 28
	blinkFlashIntervalMs   = 100
)

// Color constants
var (
	colorBackground = color.NRGBA{R: 15, G: 15, B: 30, A: 255}
	colorArena      = color.NRGBA{R: 80, G: 80, B: 120, A: 255}
	colorFreeTarget = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	colorText       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorBlink      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorWeakRing   = color.NRGBA{R: 255, G: 100, B: 100, A: 255}
	colorUIPanel    = color.NRGBA{R: 20, G: 20, B: 40, A: 255}
)
