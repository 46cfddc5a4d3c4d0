package svgdraw

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgturtle/internal/logging"
	"github.com/benoitkugler/svgturtle/svgicon"
	"golang.org/x/image/colornames"
)

// None is the transparent color returned for the "none" keyword.
var None = color.NRGBA{}

// ParseColor supports the named colors, the hex forms #rgb and #rrggbb,
// the functional form rgb(r, g, b) and the keyword none.
func ParseColor(c svgicon.Color) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(string(c)))
	switch {
	case s == "none" || s == "transparent":
		return None, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGB(s[4 : len(s)-1])
	}
	if nc, ok := colornames.Map[s]; ok {
		return color.NRGBA{nc.R, nc.G, nc.B, nc.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unsupported color %q", string(c))
}

// ResolveColor is ParseColor, falling back to opaque black
// on invalid input.
func ResolveColor(c svgicon.Color) color.NRGBA {
	out, err := ParseColor(c)
	if err != nil {
		logging.Logger().Warn("using black instead of invalid color", "error", err)
		return color.NRGBA{A: 0xff}
	}
	return out
}

func parseHex(x string) (color.NRGBA, error) {
	if len(x) != 3 && len(x) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color #%s", x)
	}
	v, err := strconv.ParseUint(x, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color #%s", x)
	}
	if len(x) == 3 {
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return color.NRGBA{r | r<<4, g | g<<4, b | b<<4, 0xff}, nil
	}
	return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}

func parseRGB(args string) (color.NRGBA, error) {
	fields := strings.Split(args, ",")
	if len(fields) != 3 {
		return color.NRGBA{}, fmt.Errorf("invalid rgb color (%s)", args)
	}
	var comps [3]uint8
	for i, f := range fields {
		f = strings.TrimSpace(f)
		var v float64
		if pct, ok := strings.CutSuffix(f, "%"); ok {
			p, err := strconv.ParseFloat(pct, 64)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("invalid rgb color (%s)", args)
			}
			v = p * 255 / 100
		} else {
			n, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("invalid rgb color (%s)", args)
			}
			v = n
		}
		comps[i] = uint8(min(max(v, 0), 255) + 0.5)
	}
	return color.NRGBA{comps[0], comps[1], comps[2], 0xff}, nil
}
