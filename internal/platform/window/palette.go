package window

import (
	"image/color"

	"github.com/vovakirdan/balloon-drive/internal/core"
)

// Scene colors that are not configurable.
var (
	backgroundColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	carBodyColor    = rgba(core.ColorBlue)
	carWindowColor  = rgba(core.ColorBrightBlue)
	wheelColor      = rgba(core.ColorBlack)
	spokeColor      = rgba(core.ColorWhite)
	trunkColor      = rgba(core.ColorBrown)
	leafColor       = rgba(core.ColorGreen)
	stringColor     = rgba(core.ColorBlack)
	textColor       = rgba(core.ColorBlack)
)

// cssColors holds the CSS named colors the game's palette is drawn from.
var cssColors = map[core.Color]color.RGBA{
	core.ColorDefault:       {0x00, 0x00, 0x00, 0xff},
	core.ColorRed:           {0xff, 0x00, 0x00, 0xff},
	core.ColorGreen:         {0x00, 0x80, 0x00, 0xff},
	core.ColorYellow:        {0xff, 0xff, 0x00, 0xff},
	core.ColorBlue:          {0x00, 0x00, 0xff, 0xff},
	core.ColorMagenta:       {0xff, 0x00, 0xff, 0xff},
	core.ColorCyan:          {0x00, 0xff, 0xff, 0xff},
	core.ColorWhite:         {0xff, 0xff, 0xff, 0xff},
	core.ColorBrightRed:     {0xff, 0x63, 0x47, 0xff}, // tomato
	core.ColorBrightGreen:   {0x90, 0xee, 0x90, 0xff}, // lightgreen
	core.ColorBrightYellow:  {0xff, 0xff, 0xe0, 0xff}, // lightyellow
	core.ColorBrightBlue:    {0xad, 0xd8, 0xe6, 0xff}, // lightblue
	core.ColorBrightMagenta: {0xee, 0x82, 0xee, 0xff}, // violet
	core.ColorBrightCyan:    {0xe0, 0xff, 0xff, 0xff}, // lightcyan
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0xa5, 0x00, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x80, 0xff},
	core.ColorBrown:         {0xa5, 0x2a, 0x2a, 0xff},
	core.ColorBlack:         {0x00, 0x00, 0x00, 0xff},
}

// rgba maps c to its window color, black if unknown.
func rgba(c core.Color) color.RGBA {
	if v, ok := cssColors[c]; ok {
		return v
	}
	return cssColors[core.ColorDefault]
}
