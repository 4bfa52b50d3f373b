package bstmap

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DumpConfig configures the console rendering of Dump.
//
// Line widths are measured in fixed-width positions according to UAX#11
// (East Asian Width), with lines cut on grapheme boundaries. Context may be
// nil, in which case uax11.LatinContext is used.
type DumpConfig struct {
	Width   int            // maximum line width in fixed-width positions; 0 means unlimited
	Colors  bool           // colorize entries and sentinels
	Context *uax11.Context // language context for width measurement
}

func (config *DumpConfig) context() *uax11.Context {
	if config.Context == nil {
		return uax11.LatinContext
	}
	return config.Context
}

var graphemeSetup sync.Once

// Palette of Dump.
var (
	EntryColor    = color.New(color.FgBlue)
	SentinelColor = color.New(color.FgRed)
)

// Dump writes the tree of m to w, rotated by 90 degrees: the root is at the
// left margin, larger keys are printed above and smaller keys below their
// parent. Each level is indented by four positions. Sentinels are printed as
// [end] and [rend].
//
// If config is nil, a configuration is derived from the terminal attached to
// stdout (see ConfigFromTerminal).
func Dump[K, V any](m *Map[K, V], w io.Writer, config *DumpConfig) {
	if config == nil {
		config = ConfigFromTerminal()
	}
	graphemeSetup.Do(func() { grapheme.SetupGraphemeClasses() })
	if m.root == nil {
		dumpLine(w, 0, "[end]", SentinelColor, config)
		dumpLine(w, 1, "[rend]", SentinelColor, config)
		return
	}
	dumpNode(m, m.root, 0, w, config)
}

// dumpNode prints the subtree at n in reverse in-order.
func dumpNode[K, V any](m *Map[K, V], n *node[K, V], depth int, w io.Writer, config *DumpConfig) {
	if n == nil {
		return
	}
	switch n {
	case m.end:
		dumpLine(w, depth, "[end]", SentinelColor, config)
		return
	case m.rend:
		dumpLine(w, depth, "[rend]", SentinelColor, config)
		return
	}
	dumpNode(m, n.right, depth+1, w, config)
	dumpLine(w, depth, n.entry().String(), EntryColor, config)
	dumpNode(m, n.left, depth+1, w, config)
}

// dumpLine prints label indented by depth levels. The indentation is never
// colorized. Colors are enabled on a copy of c, leaving the package palette
// to the global color settings.
func dumpLine(w io.Writer, depth int, label string, c *color.Color, config *DumpConfig) {
	line := clip(strings.Repeat("    ", depth)+label, config)
	indent := len(line) - len(strings.TrimLeft(line, " "))
	if indent > 4*depth {
		indent = 4 * depth
	}
	io.WriteString(w, line[:indent])
	if config.Colors {
		cc := *c
		cc.EnableColor()
		cc.Fprint(w, line[indent:])
	} else {
		io.WriteString(w, line[indent:])
	}
	io.WriteString(w, "\n")
}

const ellipsis = "…"

// clip cuts line to at most config.Width positions. A clipped line ends in an
// ellipsis and is cut between grapheme clusters.
func clip(line string, config *DumpConfig) string {
	if config.Width <= 0 {
		return line
	}
	ctx := config.context()
	gstr := grapheme.StringFromString(line)
	if uax11.StringWidth(gstr, ctx) <= config.Width {
		return line
	}
	room := config.Width - uax11.StringWidth(grapheme.StringFromString(ellipsis), ctx)
	var b strings.Builder
	for i, used := 0, 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		used += uax11.StringWidth(grapheme.StringFromString(g), ctx)
		if used > room {
			break
		}
		b.WriteString(g)
	}
	b.WriteString(ellipsis)
	return b.String()
}

// ConfigFromTerminal is a simple helper for creating a dump configuration.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and enables colors. The width context is derived from the user's
// environment (locale settings).
func ConfigFromTerminal() *DumpConfig {
	config := &DumpConfig{Width: 80, Context: uax11.ContextFromEnvironment()}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = true
		if w, _, err := term.GetSize(fd); err == nil {
			switch {
			case w > 30:
				config.Width = w - 5
			case w > 10:
				config.Width = w
			default:
				config.Width = 10
			}
		}
	}
	tracer().Debugf("bstmap: dump width is %d", config.Width)
	return config
}
