package svgpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrBadPath is wrapped by the errors returned when parsing
// invalid path data.
var ErrBadPath = errors.New("bad path")

// number of arguments expected by each command
var cmdLens = [...]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'Z', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A':
		return true
	}
	return false
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t' || path[i] == '\f') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// pathCursor holds the state needed to resolve
// relative and shorthand commands
type pathCursor struct {
	path      Path
	start     Point // start of the current sub-path
	current   Point
	lastCubic Point // second control point of the previous C or S
	lastQuad  Point // control point of the previous Q or T
	prevCmd   byte  // upper case
}

func (c *pathCursor) add(seg Segment) {
	if seg != nil {
		c.path = append(c.path, seg)
	}
}

// ParsePath decomposes the path data `d` into an ordered list of segments.
// Move commands start a new sub-path without adding a segment; a close
// command adds a closing Line when the current point is not already
// the start of the sub-path.
func ParsePath(d string) (Path, error) {
	path := []byte(strings.TrimSpace(d))
	if len(path) == 0 {
		return nil, nil
	}
	if c := path[0] &^ 0x20; c != 'M' {
		return nil, fmt.Errorf("%w: path should start with a move command, got '%c'", ErrBadPath, path[0])
	}

	var (
		c    pathCursor
		f    [7]float64
		cmd  byte
		i    int
		args int
	)
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		if !isNumberStart(path[i]) {
			cmd = path[i]
			if !isCommand(cmd &^ 0x20) {
				return nil, fmt.Errorf("%w: unknown command '%c' at position %d", ErrBadPath, cmd, i+1)
			}
			i++
			i += skipCommaWhitespace(path[i:])
		} else if cmd == 0 || cmd&^0x20 == 'Z' {
			return nil, fmt.Errorf("%w: unexpected number at position %d", ErrBadPath, i+1)
		}

		CMD := cmd &^ 0x20 // upper case
		args = cmdLens[CMD]
		for j := 0; j < args; j++ {
			if CMD == 'A' && (j == 3 || j == 4) {
				// parse largeArc and sweep booleans for A command
				if i < len(path) && (path[i] == '0' || path[i] == '1') {
					f[j] = float64(path[i] - '0')
				} else {
					return nil, fmt.Errorf("%w: arc flags should be 0 or 1 in command '%c' at position %d", ErrBadPath, cmd, i+1)
				}
				i++
			} else {
				num, n := strconv.ParseFloat(path[i:])
				if n == 0 {
					return nil, fmt.Errorf("%w: sets of %d numbers should follow command '%c' at position %d", ErrBadPath, args, cmd, i+1)
				}
				f[j] = num
				i += n
			}
			i += skipCommaWhitespace(path[i:])
		}

		c.apply(cmd, f)

		// implicit repetitions of a move are lines
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
	return c.path, nil
}

// apply resolves one command, with its arguments
func (c *pathCursor) apply(cmd byte, f [7]float64) {
	relative := cmd >= 'a'
	var origin Point
	if relative {
		origin = c.current
	}
	CMD := cmd &^ 0x20
	p0 := c.current
	switch CMD {
	case 'M':
		c.current = Point{f[0], f[1]}.Add(origin)
		c.start = c.current
	case 'Z':
		if c.current != c.start {
			c.add(Line{c.current, c.start})
		}
		c.current = c.start
	case 'L':
		c.current = Point{f[0], f[1]}.Add(origin)
		c.add(Line{p0, c.current})
	case 'H':
		c.current.X = f[0] + origin.X
		c.add(Line{p0, c.current})
	case 'V':
		c.current.Y = f[0] + origin.Y
		c.add(Line{p0, c.current})
	case 'C':
		cp1 := Point{f[0], f[1]}.Add(origin)
		cp2 := Point{f[2], f[3]}.Add(origin)
		c.current = Point{f[4], f[5]}.Add(origin)
		c.add(CubicBezier{p0, cp1, cp2, c.current})
		c.lastCubic = cp2
	case 'S':
		cp1 := p0
		if c.prevCmd == 'C' || c.prevCmd == 'S' {
			cp1 = p0.Mul(2).Sub(c.lastCubic)
		}
		cp2 := Point{f[0], f[1]}.Add(origin)
		c.current = Point{f[2], f[3]}.Add(origin)
		c.add(CubicBezier{p0, cp1, cp2, c.current})
		c.lastCubic = cp2
	case 'Q':
		cp := Point{f[0], f[1]}.Add(origin)
		c.current = Point{f[2], f[3]}.Add(origin)
		c.add(QuadBezier{p0, cp, c.current})
		c.lastQuad = cp
	case 'T':
		cp := p0
		if c.prevCmd == 'Q' || c.prevCmd == 'T' {
			cp = p0.Mul(2).Sub(c.lastQuad)
		}
		c.current = Point{f[0], f[1]}.Add(origin)
		c.add(QuadBezier{p0, cp, c.current})
		c.lastQuad = cp
	case 'A':
		c.current = Point{f[5], f[6]}.Add(origin)
		c.add(NewArc(p0, f[0], f[1], f[2], f[3] == 1, f[4] == 1, c.current))
	}
	c.prevCmd = CMD
}

// ParseNumber parses a single coordinate, with an optional
// 'px' unit suffix.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}
