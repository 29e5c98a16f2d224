package format

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/clothesline"
)

// Role is the part of an interval label a color is applied to.
type Role int

// Roles for coloring interval labels.
const (
	IncludedBracket Role = iota
	ExcludedBracket
	Infinity
)

// Console is a type for outputting interval sets to a console with a fixed
// width font.
type Console struct {
	colors map[Role]*color.Color
}

// NewConsole creates a new console formatter.
//
// colors is a map from roles to colors. It may contain just a subset of
// roles; parts without a color are printed plain. If colors is nil, a
// default palette is used.
func NewConsole(colors map[Role]*color.Color) *Console {
	c := &Console{colors: colors}
	if colors == nil {
		c.colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[Role]*color.Color {
	return map[Role]*color.Color{
		IncludedBracket: color.New(color.FgGreen),
		ExcludedBracket: color.New(color.FgYellow),
		Infinity:        color.New(color.FgCyan),
	}
}

// Listing outputs the intervals of a set one per line, aligned at the comma
// separating begin and end:
//
//	(-inf, 0]
//	  [10, 13)
//	  (13, 14]
//
// The empty set is printed as "∅".
func (c *Console) Listing(rows []Row, w io.Writer, config *Config) error {
	if len(rows) == 0 {
		_, err := io.WriteString(w, "∅\n")
		return err
	}
	context := config.context()
	colored := config != nil && config.Color
	beginWidth := 0
	for _, r := range rows {
		beginWidth = max(beginWidth, width(r.Begin, context))
	}
	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(pad(beginWidth - width(r.Begin, context)))
		c.writeRow(&sb, r, colored)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Inline outputs the intervals of a set joined by '∪', wrapping lines at
// config.Width. Lines are broken after a '∪' only, never within an interval.
func (c *Console) Inline(rows []Row, w io.Writer, config *Config) error {
	if len(rows) == 0 {
		_, err := io.WriteString(w, "∅\n")
		return err
	}
	context := config.context()
	colored := config != nil && config.Color
	linewidth := 0
	if config != nil {
		linewidth = config.Width
	}
	sepwidth := width(" ∪", context)
	var sb strings.Builder
	col := 0
	for i, r := range rows {
		piecewidth := width(r.String(), context)
		if i < len(rows)-1 {
			piecewidth += sepwidth
		}
		if col > 0 {
			if linewidth > 0 && col+1+piecewidth > linewidth {
				sb.WriteByte('\n')
				col = 0
			} else {
				sb.WriteByte(' ')
				col++
			}
		}
		c.writeRow(&sb, r, colored)
		if i < len(rows)-1 {
			sb.WriteString(" ∪")
		}
		col += piecewidth
	}
	sb.WriteByte('\n')
	tracer().Debugf("console: %d intervals formatted inline", len(rows))
	_, err := io.WriteString(w, sb.String())
	return err
}

func (c *Console) writeRow(sb *strings.Builder, r Row, colored bool) {
	bracketRole := func(included bool) Role {
		if included {
			return IncludedBracket
		}
		return ExcludedBracket
	}
	valueRole := func(inf bool) Role {
		if inf {
			return Infinity
		}
		return -1
	}
	c.write(sb, r.LeftBracket(), bracketRole(r.BeginIncluded), colored)
	c.write(sb, r.Begin, valueRole(r.BeginInf), colored)
	sb.WriteString(", ")
	c.write(sb, r.End, valueRole(r.EndInf), colored)
	c.write(sb, r.RightBracket(), bracketRole(r.EndIncluded), colored)
}

func (c *Console) write(sb *strings.Builder, s string, role Role, colored bool) {
	if colored {
		if col, ok := c.colors[role]; ok {
			sb.WriteString(col.Sprint(s))
			return
		}
	}
	sb.WriteString(s)
}

// Print outputs a set to stdout, wrapped at the terminal's width.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties.
func Print[T any](s clothesline.Set[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return NewConsole(nil).Inline(Rows(s), os.Stdout, config)
}
