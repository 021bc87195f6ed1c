package nodelink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/mikado/pkg/graph"
)

// Default colors, matching the classic Mikado notation.
const (
	DefaultDoneColor = "green"
	DefaultTodoColor = "black"
	DefaultRankDir   = "TB"
)

// Options configures node-link diagram rendering.
type Options struct {
	DoneColor string // Color of completed tasks and fully completed edges
	TodoColor string // Color of everything else
	RankDir   string // Graphviz rankdir: TB, BT, LR or RL
}

// DefaultOptions returns green-on-black options laid out top to bottom.
func DefaultOptions() Options {
	return Options{
		DoneColor: DefaultDoneColor,
		TodoColor: DefaultTodoColor,
		RankDir:   DefaultRankDir,
	}
}

func (o Options) withDefaults() Options {
	if o.DoneColor == "" {
		o.DoneColor = DefaultDoneColor
	}
	if o.TodoColor == "" {
		o.TodoColor = DefaultTodoColor
	}
	if o.RankDir == "" {
		o.RankDir = DefaultRankDir
	}
	return o
}

// ToDOT converts a graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [Render].
//
// Goals are drawn with two peripheries. Node and edge colors follow the done
// flags. Empty option fields fall back to the defaults.
func ToDOT(g *graph.Graph, opts Options) string {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	buf.WriteString("strict digraph mikado {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", strings.ToUpper(opts.RankDir))
	buf.WriteString("  node [shape=box, style=rounded, fontname=\"Helvetica\"];\n")
	buf.WriteString("  edge [arrowsize=0.8];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %s [%s];\n", quote(n.ID), strings.Join(nodeAttrs(*n, opts), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %s -> %s [color=%s];\n", quote(e.From), quote(e.To), quote(pick(e.Done, opts)))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n graph.Node, opts Options) []string {
	color := quote(pick(n.Done, opts))
	peripheries := 1
	if n.Goal {
		peripheries = 2
	}
	return []string{
		"color=" + color,
		"fontcolor=" + color,
		fmt.Sprintf("peripheries=%d", peripheries),
	}
}

func pick(done bool, opts Options) string {
	if done {
		return opts.DoneColor
	}
	return opts.TodoColor
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", "")

// quote renders s as a DOT double-quoted ID.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
