/*
Package format presents the contents of containers on consoles and in HTML.

Output is meant for debugging and demonstration. Text output wraps lines by
display width, measured in fixed-width positions (“en”s) according to
Unicode UAX#11, thus wide East Asian characters and emojis do not break the
layout.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package format

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"sync"

	"github.com/npillmayer/dsc"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Container is the read-only view on a container which Dump and HTML need.
// list.List, ring.Buffer, queue.Queue and stack.Stack implement it.
type Container[T any] interface {
	Name() string
	Len() int
	Cap() int
	All() iter.Seq2[int, T]
}

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int
	Context   *uax11.Context
}

// DefaultLineWidth is used when no terminal width is available.
const DefaultLineWidth = 65

var setupGraphemes sync.Once

// Width returns the display width of s in en.
func Width(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// Dump writes a header line with the name, length and capacity of c, followed
// by its elements in iteration order, rendered by toString. If toString is
// nil, elements are rendered with fmt's %v verb. If config is nil, a
// configuration is derived from the terminal.
//
// Elements are wrapped to lines of at most config.LineWidth en; an element
// wider than a line gets a line of its own.
func Dump[T any](w io.Writer, c Container[T], toString func(T) string, config *Config) error {
	if w == nil || c == nil {
		return dsc.Errorf(dsc.InvalidParameter, "format.Dump", "writer and container must not be nil")
	}
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if toString == nil {
		toString = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s - length: %d, capacity: %d\n", c.Name(), c.Len(), c.Cap())
	const open, indent = "Contents: [ ", "  "
	b.WriteString(open)
	col := Width(open, config.Context)
	if c.Len() == 0 {
		b.WriteString("empty")
		col += 5
	}
	first := true
	for _, v := range c.All() {
		item := toString(v)
		if !first {
			item = ", " + item
		}
		width := Width(item, config.Context)
		if !first && col+width+2 > config.LineWidth { // keep room for separator or bracket
			b.WriteString(",\n")
			item = strings.TrimPrefix(item, ", ")
			b.WriteString(indent)
			col = Width(indent, config.Context)
			width = Width(item, config.Context)
		}
		b.WriteString(item)
		col += width
		first = false
	}
	if col+2 > config.LineWidth {
		b.WriteString("\n")
	}
	b.WriteString(" ]\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: DefaultLineWidth}
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
			config.LineWidth = lineWidthFor(w)
		}
	}
	dsc.T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

func lineWidthFor(terminalWidth int) int {
	switch {
	case terminalWidth > 65:
		return terminalWidth - 10
	case terminalWidth > 30:
		return terminalWidth - 5
	case terminalWidth > 10:
		return terminalWidth
	}
	return 10
}
