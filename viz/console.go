package viz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/aatree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ColorMode controls coloring of console output.
type ColorMode int

// Color modes for Dump. ColorAuto colors output written to a terminal.
const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ConsoleConfig configures Dump.
type ConsoleConfig[K, V any] struct {
	// Width is the maximum line width in display cells. 0 means the width of
	// the terminal, or 80 if output does not go to a terminal.
	Width int
	// Color selects whether nodes are colored by level.
	Color ColorMode
	// Label creates node labels; nil shows keys.
	Label LabelFunc[K, V]
	// Context is used to measure the display width of labels. nil means
	// uax11.LatinContext.
	Context *uax11.Context
}

const (
	defaultWidth = 80
	indentWidth  = 4
)

var setupGraphemes sync.Once

func (cfg ConsoleConfig[K, V]) normalized(w io.Writer) ConsoleConfig[K, V] {
	fd, isTerm := terminal(w)
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
		if isTerm {
			if tw, _, err := term.GetSize(fd); err == nil && tw > 0 {
				cfg.Width = tw
			}
		}
	}
	if cfg.Color == ColorAuto {
		cfg.Color = ColorNever
		if isTerm {
			cfg.Color = ColorAlways
		}
	}
	cfg.Label = labelOrDefault(cfg.Label)
	if cfg.Context == nil {
		cfg.Context = uax11.LatinContext
	}
	return cfg
}

func terminal(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// Dump writes a tree to w, rotated counter-clockwise: the root is at the
// left margin, right subtrees are printed above and left subtrees below their
// parent. Each node shows its label and its level in brackets; horizontal
// links are drawn with a double line. Empty subtrees are shown as "·" if
// their sibling is not empty.
//
// cfg may be nil.
func Dump[K, V any](w io.Writer, tree *aatree.Tree[K, V], cfg *ConsoleConfig[K, V]) error {
	if tree == nil {
		return fmt.Errorf("%w: tree is nil", aatree.ErrInvalidConfig)
	}
	if cfg == nil {
		cfg = &ConsoleConfig[K, V]{}
	}
	c := cfg.normalized(w)
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	palette := makeDefaultPalette(c.Color == ColorAlways)
	bw := bufio.NewWriter(w)
	var dump func(n aatree.Node[K, V], depth int, link string)
	dump = func(n aatree.Node[K, V], depth int, link string) {
		indent := strings.Repeat(" ", depth*indentWidth)
		if n.IsEmpty() {
			fmt.Fprintf(bw, "%s%s·\n", indent, link)
			return
		}
		leaf := n.Left().IsEmpty() && n.Right().IsEmpty()
		if !leaf {
			rlink := "┌─ "
			if n.Right().Level() == n.Level() {
				rlink = "╔═ "
			}
			dump(n.Right(), depth+1, rlink)
		}
		level := fmt.Sprintf(" [%d]", n.Level())
		room := c.Width - depth*indentWidth - displayWidth(link, c.Context) - len(level)
		text := fit(c.Label(n.Key(), n.Value()), room, c.Context)
		col := palette[min(n.Level(), len(palette)-1)]
		fmt.Fprintf(bw, "%s%s%s%s\n", indent, link, col.Sprint(text), level)
		if !leaf {
			dump(n.Left(), depth+1, "└─ ")
		}
	}
	if tree.IsEmpty() {
		io.WriteString(bw, "·\n")
	} else {
		dump(tree.Root(), 0, "")
	}
	if err := bw.Flush(); err != nil {
		tracer().Errorf("tree dump: %s", err.Error())
		return err
	}
	return nil
}

func makeDefaultPalette(enabled bool) []*color.Color {
	palette := []*color.Color{
		color.New(color.FgWhite),
		color.New(color.FgBlue),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
		color.New(color.FgMagenta),
		color.New(color.FgRed),
		color.New(color.FgCyan, color.Bold),
	}
	for _, c := range palette {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return palette
}

func displayWidth(s string, context *uax11.Context) int {
	if s == "" { // grapheme strings must not be empty
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// fit shortens s to at most limit display cells, marking truncation with an
// ellipsis.
func fit(s string, limit int, context *uax11.Context) string {
	if s == "" {
		return s
	}
	if displayWidth(s, context) <= limit {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		t := string(runes[:n]) + "…"
		if displayWidth(t, context) <= limit {
			return t
		}
	}
	return "…"
}
