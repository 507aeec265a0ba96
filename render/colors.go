package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(86, 95, 137)   // Slate blue
	RgbPickup     = tcell.NewRGBColor(224, 175, 104) // Cookie brown-gold
	RgbPlayer     = tcell.NewRGBColor(255, 158, 100) // Tako orange
	RgbEnemy      = tcell.NewRGBColor(187, 154, 247) // Mumei lavender
	RgbStatusBar  = tcell.NewRGBColor(192, 202, 245) // Pale text
	RgbStatusDim  = tcell.NewRGBColor(120, 124, 153) // Hints

	RgbWinBg  = tcell.NewRGBColor(30, 90, 50)
	RgbLoseBg = tcell.NewRGBColor(110, 25, 35)
	RgbBanner = tcell.NewRGBColor(255, 255, 255)

	// Menu highlight per difficulty
	RgbPlayable  = tcell.NewRGBColor(158, 206, 106)
	RgbHard      = tcell.NewRGBColor(224, 175, 104)
	RgbTakodachi = tcell.NewRGBColor(247, 118, 142)
)
