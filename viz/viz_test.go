package viz

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/aatree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/require"
)

func upTo(n int) *aatree.Tree[int, string] {
	tree := aatree.NewOrdered[int, string]()
	for i := 1; i <= n; i++ {
		tree = tree.Select(i).Set(strings.Repeat("*", i))
	}
	return tree
}

func TestDotOutput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var buf bytes.Buffer
	err := ToDot(upTo(4), &buf, nil)
	require.NoError(t, err)
	out := buf.String()
	t.Logf("\n%s", out)
	require.True(t, strings.HasPrefix(out, "strict digraph {"))
	require.Contains(t, out, `[label="2" ,style=filled,shape=circle`)
	require.Contains(t, out, `[label="4" ,style=filled,shape=box`)
	require.Contains(t, out, "style=dashed", "horizontal link 3→4 should be dashed")
	require.Contains(t, out, "shape=point", "empty subtrees should be drawn as points")
	require.Contains(t, out, `"v0" -> "1"`)
	require.True(t, strings.HasSuffix(out, "}\n"))
}

func TestVersionsToDotSharesSubtrees(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	t1 := upTo(20)
	t2 := t1.Select(20).Set("changed")
	var buf bytes.Buffer
	err := VersionsToDot(&buf, EntryLabel[int, string], t1, t2)
	require.NoError(t, err)
	out := buf.String()
	drawn := strings.Count(out, "style=filled")
	require.GreaterOrEqual(t, drawn, 21)
	require.Less(t, drawn, 40, "shared subtrees must be drawn once")
	require.Contains(t, out, `"v1" ->`)
	require.Contains(t, out, `20: changed`)
}

func TestVersionsToDotRejectsNilTree(t *testing.T) {
	var buf bytes.Buffer
	err := VersionsToDot[int, string](&buf, nil, upTo(2), nil)
	require.True(t, errors.Is(err, aatree.ErrInvalidConfig))
}

func TestDumpPlain(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var buf bytes.Buffer
	err := Dump(&buf, upTo(3), &ConsoleConfig[int, string]{Width: 80, Color: ColorNever})
	require.NoError(t, err)
	require.Equal(t, "    ┌─ 3 [1]\n2 [2]\n    └─ 1 [1]\n", buf.String())
}

func TestDumpMarksHorizontalLinks(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var buf bytes.Buffer
	err := Dump(&buf, upTo(4), nil)
	require.NoError(t, err)
	t.Logf("\n%s", buf.String())
	require.Contains(t, buf.String(), "╔═ 4 [1]")
	require.Contains(t, buf.String(), "·")
	require.NotContains(t, buf.String(), "\x1b[", "no color codes when not writing to a terminal")
}

func TestDumpEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	err := Dump(&buf, aatree.NewOrdered[int, string](), nil)
	require.NoError(t, err)
	require.Equal(t, "·\n", buf.String())
}

func TestDumpSingleNodes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var buf bytes.Buffer
	cfg := &ConsoleConfig[int, string]{Width: 80, Color: ColorNever}
	err := Dump(&buf, aatree.NewOrdered[int, string]().Insert(aatree.P(1, "x")), cfg)
	require.NoError(t, err)
	require.Equal(t, "1 [1]\n", buf.String())
	//
	buf.Reset()
	blank := aatree.NewOrdered[string, int]().Insert(aatree.P("", 0))
	err = Dump(&buf, blank, &ConsoleConfig[string, int]{Width: 80, Color: ColorNever})
	require.NoError(t, err)
	require.Equal(t, " [1]\n", buf.String())
	//
	buf.Reset()
	err = Dump(&buf, blank.Insert(aatree.P("a", 1)), &ConsoleConfig[string, int]{Width: 80, Color: ColorNever})
	require.NoError(t, err)
	require.Equal(t, "    ╔═ a [1]\n [1]\n    └─ ·\n", buf.String())
}

func TestFitTruncatesLabels(t *testing.T) {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	ctx := uax11.LatinContext
	require.Equal(t, "short", fit("short", 10, ctx))
	require.Equal(t, "abc…", fit("abcdefghij", 4, ctx))
	require.Equal(t, "…", fit("abcdefghij", 0, ctx))
	require.Equal(t, "", fit("", 10, ctx))
	require.Equal(t, 0, displayWidth("", ctx))
}

func TestHTMLOutline(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var buf bytes.Buffer
	err := HTML(&buf, upTo(3), nil)
	require.NoError(t, err)
	want := `<ul class="aatree"><li data-level="2"><span class="node">2</span><ul>` +
		`<li data-level="1"><span class="node">1</span></li>` +
		`<li data-level="1"><span class="node">3</span></li></ul></li></ul>`
	require.Equal(t, want, buf.String())
}

func TestHTMLEscapesLabels(t *testing.T) {
	var buf bytes.Buffer
	tree := aatree.NewOrdered[string, int]().Insert(aatree.P("<b>", 1))
	err := HTML(&buf, tree, nil)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "&lt;b&gt;")
	empty := OutlineNode(aatree.NewOrdered[string, int](), nil)
	require.Nil(t, empty.FirstChild)
}
