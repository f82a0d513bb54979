package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Map palette, as hex strings so they can live next to the JSON data.
const (
	ColorWallVisible  = "#8A7F70"
	ColorWallExplored = "#3A3530"
	ColorFloorVisible = "#C8B88A"
	ColorFloorHidden  = "#2A2620"
	ColorPlayer       = "#FFFFFF"
	ColorCorpse       = "#8B0000"
	ColorStairs       = "#E0E0E0"
	ColorPortalClosed = "#6A5ACD"
	ColorPortalOpen   = "#00FFFF"
	ColorTargetPath   = "#FFFF00"
	ColorTargetArea   = "#FF8C00"
)

// ParseHexColor converts a hex color string ("#FF0000", "FF0000" or the
// short "#F00") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// ColorOr parses hex, returning fallback if it is empty or invalid.
func ColorOr(hex string, fallback tcell.Color) tcell.Color {
	if hex == "" {
		return fallback
	}
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}
