// Package light defines the closed set of light colors the player can unlock
// and equip, plus a fixed-size map keyed by color.
package light

import (
	"fmt"
	"strings"
)

// Color is one of the light beam colors.
type Color uint8

const (
	Blue Color = iota
	Green
	Purple
	White
	ColorCount // Must be last - used for array sizing
)

// Colors lists every color in declaration order.
var Colors = [ColorCount]Color{Blue, Green, Purple, White}

var colorNames = [ColorCount]string{"blue", "green", "purple", "white"}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// Valid reports whether c is one of the declared colors.
func (c Color) Valid() bool {
	return c < ColorCount
}

// ParseColor parses a color name as written in level files ("blue", "Green").
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown light color %q", s)
}

// ColorMap holds one bool per color.
type ColorMap [ColorCount]bool

// ParseColorList parses a comma separated list of color names into a map.
// An empty string yields an empty map.
func ParseColorList(s string) (ColorMap, error) {
	var m ColorMap
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseColor(part)
		if err != nil {
			return ColorMap{}, err
		}
		m[c] = true
	}
	return m, nil
}

// Any reports whether at least one color is set.
func (m ColorMap) Any() bool {
	for _, v := range m {
		if v {
			return true
		}
	}
	return false
}

// Set returns the colors that are set, in declaration order.
func (m ColorMap) Set() []Color {
	var out []Color
	for _, c := range Colors {
		if m[c] {
			out = append(out, c)
		}
	}
	return out
}

func (m ColorMap) String() string {
	names := make([]string, 0, ColorCount)
	for _, c := range m.Set() {
		names = append(names, c.String())
	}
	return "[" + strings.Join(names, ",") + "]"
}
