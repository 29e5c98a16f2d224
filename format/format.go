/*
Package format renders interval sets for diagnostics, either to a console or
as HTML fragments.

Sets are first flattened into rows of pre-formatted labels (see Rows), which
the formatters then lay out. Column alignment respects the display width of
labels, including wide East Asian characters in string domains.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package format

import (
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/clothesline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Row holds the pre-formatted labels of one interval.
type Row struct {
	Begin, End                 string // labels of the boundary values
	BeginIncluded, EndIncluded bool
	BeginInf, EndInf           bool // boundary is an infinity
	Point                      bool // degenerate interval [a, a]
}

// Rows flattens the intervals of a set, left to right.
func Rows[T any](s clothesline.Set[T]) []Row {
	rows := make([]Row, 0, s.Len())
	for iv := range s.Intervals() {
		begin, end := iv.Pegs()
		rows = append(rows, Row{
			Begin:         s.Domain().FormatValue(begin.Value),
			End:           s.Domain().FormatValue(end.Value),
			BeginIncluded: begin.Included,
			EndIncluded:   end.Included,
			BeginInf:      begin.Value.IsInf(),
			EndInf:        end.Value.IsInf(),
			Point:         iv.IsPoint(),
		})
	}
	return rows
}

// LeftBracket returns "[" for an included begin, "(" otherwise.
func (r Row) LeftBracket() string {
	if r.BeginIncluded {
		return "["
	}
	return "("
}

// RightBracket returns "]" for an included end, ")" otherwise.
func (r Row) RightBracket() string {
	if r.EndIncluded {
		return "]"
	}
	return ")"
}

// String renders a row in bracket notation.
func (r Row) String() string {
	return r.LeftBracket() + r.Begin + ", " + r.End + r.RightBracket()
}

// --- Configuration ---------------------------------------------------------

// Config represents a set of configuration parameters for formatting.
type Config struct {
	Width   int            // line width in en; 0 for unlimited
	Color   bool           // use colors for brackets and infinities
	Context *uax11.Context // context for display width of labels
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and enables colors.
func ConfigFromTerminal() *Config {
	config := &Config{
		Width:   65,
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 20 {
				config.Width = w - 5
			} else {
				config.Width = 20
			}
		}
	}
	tracer().P("format", "console").Infof("setting line width to %d en", config.Width)
	return config
}

func (config *Config) context() *uax11.Context {
	if config == nil || config.Context == nil {
		return uax11.LatinContext
	}
	return config.Context
}

var setupGraphemes sync.Once

// width returns the display width of a label in fixed-width positions.
// ASCII labels are always one position per byte.
func width(s string, context *uax11.Context) int {
	if isASCII(s) {
		return len(s)
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
