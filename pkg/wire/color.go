package wire

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// ErrInvalidColor indicates an unparseable color string or hex length.
var ErrInvalidColor = errors.New("invalid color")

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// FromPacked constructs a Color from a packed 32-bit ARGB integer, the form
// native toolkits hand around as a plain int.
func FromPacked(v int64) Color {
	return Color(uint32(v))
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Hex returns the CSS hex form: #rrggbb when fully opaque, #rrggbbaa otherwise.
func (c Color) Hex() string {
	r := uint8(c >> 16)
	g := uint8(c >> 8)
	b := uint8(c)
	a := uint8(c >> 24)
	if a == 0xFF {
		return "#" + hexByte(r) + hexByte(g) + hexByte(b)
	}
	return "#" + hexByte(r) + hexByte(g) + hexByte(b) + hexByte(a)
}

// RGBAString returns the renderer-facing representation, e.g. "rgba(255, 0, 0, 1)".
func (c Color) RGBAString() string {
	r := uint8(c >> 16)
	g := uint8(c >> 8)
	b := uint8(c)
	a := c.Alpha()
	var sb strings.Builder
	sb.WriteString("rgba(")
	sb.WriteString(strconv.Itoa(int(r)))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(int(g)))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(int(b)))
	sb.WriteString(", ")
	sb.WriteString(strconv.FormatFloat(round2(a), 'g', -1, 64))
	sb.WriteString(")")
	return sb.String()
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func hexByte(b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0x0F]})
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF008000)
	ColorBlue        = Color(0xFF0000FF)
)

// DefaultColor is the documented fallback for unparseable color input when a
// caller asks for a value rather than an error.
const DefaultColor = ColorBlack

// namedColor pairs a CSS color name with its value. Kept as an ordered
// slice so nearest-name lookup is deterministic.
type namedColor struct {
	name  string
	color Color
}

// namedColors is the fixed CSS-like color dictionary. Module-level constant
// table, loaded once and never mutated.
var namedColors = []namedColor{
	{"black", 0xFF000000},
	{"white", 0xFFFFFFFF},
	{"red", 0xFFFF0000},
	{"lime", 0xFF00FF00},
	{"green", 0xFF008000},
	{"blue", 0xFF0000FF},
	{"yellow", 0xFFFFFF00},
	{"cyan", 0xFF00FFFF},
	{"magenta", 0xFFFF00FF},
	{"silver", 0xFFC0C0C0},
	{"gray", 0xFF808080},
	{"maroon", 0xFF800000},
	{"olive", 0xFF808000},
	{"purple", 0xFF800080},
	{"teal", 0xFF008080},
	{"navy", 0xFF000080},
	{"orange", 0xFFFFA500},
	{"pink", 0xFFFFC0CB},
	{"brown", 0xFFA52A2A},
	{"gold", 0xFFFFD700},
	{"indigo", 0xFF4B0082},
	{"violet", 0xFFEE82EE},
	{"coral", 0xFFFF7F50},
	{"salmon", 0xFFFA8072},
	{"khaki", 0xFFF0E68C},
	{"crimson", 0xFFDC143C},
	{"turquoise", 0xFF40E0D0},
	{"beige", 0xFFF5F5DC},
	{"ivory", 0xFFFFFFF0},
	{"lavender", 0xFFE6E6FA},
}

var namedColorIndex = func() map[string]Color {
	m := make(map[string]Color, len(namedColors))
	for _, nc := range namedColors {
		m[nc.name] = nc.color
	}
	return m
}()

// closestNameThreshold is the maximum Euclidean RGB distance (over
// unit-interval components) at which a color is still reported as "close
// enough" to a dictionary name. Fixed design constant, not configurable.
const closestNameThreshold = 0.15

// ParseColor parses a named color or a hex string (#RGB, #RGBA, #RRGGBB,
// #RRGGBBAA, leading # optional). Unparseable input returns ErrInvalidColor.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultColor, ErrInvalidColor
	}
	if c, ok := namedColorIndex[strings.ToLower(s)]; ok {
		return c, nil
	}
	return ParseHex(s)
}

// ParseColorOrDefault parses like ParseColor but resolves failures to
// DefaultColor (black) instead of an error.
func ParseColorOrDefault(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		return DefaultColor
	}
	return c
}

// ParseHex parses a CSS hex color. Short 3/4-digit forms expand to
// 6/8-digit forms by doubling each digit; any other length is invalid.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3, 4:
		expanded := make([]byte, 0, 8)
		for i := 0; i < len(s); i++ {
			expanded = append(expanded, s[i], s[i])
		}
		s = string(expanded)
	case 6, 8:
	default:
		return DefaultColor, ErrInvalidColor
	}

	parse := func(hi, lo int) (uint8, bool) {
		v, err := strconv.ParseUint(s[hi:lo], 16, 8)
		if err != nil {
			return 0, false
		}
		return uint8(v), true
	}

	r, okR := parse(0, 2)
	g, okG := parse(2, 4)
	b, okB := parse(4, 6)
	if !okR || !okG || !okB {
		return DefaultColor, ErrInvalidColor
	}
	a := uint8(0xFF)
	if len(s) == 8 {
		av, ok := parse(6, 8)
		if !ok {
			return DefaultColor, ErrInvalidColor
		}
		a = av
	}
	return RGBA8(r, g, b, a), nil
}

// ClosestColorName returns the dictionary name nearest to c by Euclidean
// distance in unit RGB space, if that distance is below the fixed 0.15
// threshold. Alpha is ignored.
func ClosestColorName(c Color) (string, bool) {
	r, g, b, _ := c.RGBAF()
	bestName := ""
	bestDist := math.Inf(1)
	for _, nc := range namedColors {
		nr, ng, nb, _ := nc.color.RGBAF()
		d := math.Sqrt((r-nr)*(r-nr) + (g-ng)*(g-ng) + (b-nb)*(b-nb))
		if d < bestDist {
			bestDist = d
			bestName = nc.name
		}
	}
	if bestDist < closestNameThreshold {
		return bestName, true
	}
	return "", false
}
