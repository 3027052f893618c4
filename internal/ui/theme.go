package ui

import "image/color"

// Colors — dark theme
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorSurfaceCenter = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorAccent        = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF}
	ColorMarker        = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0x50}
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
)

// Layout constants, in carousel-local units unless noted.
const (
	CellMargin = 4
	CellHeight = 520

	// MarkerWidth is the width of the side marker band in screen pixels.
	MarkerWidth = 12

	FontSizeLabel   = 160
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13

	HelpPanelWidth = 420
)
