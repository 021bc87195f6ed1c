package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/mikado/pkg/graph"
)

func buildGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, n := range []graph.Node{
		{ID: "goal", Goal: true},
		{ID: "done", Done: true},
		{ID: "open"},
	} {
		if err := g.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s): %v", n.ID, err)
		}
	}
	for _, e := range []graph.Edge{
		{From: "goal", To: "done"},
		{From: "goal", To: "open"},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%s->%s): %v", e.From, e.To, err)
		}
	}
	return g
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(buildGraph(t), DefaultOptions())

	if !strings.HasPrefix(dot, "strict digraph") {
		t.Error("ToDOT() output is not a strict digraph")
	}
	if !strings.Contains(dot, "rankdir=TB;") {
		t.Error("ToDOT() output missing rankdir")
	}
	if !strings.Contains(dot, `"goal" -> "done"`) {
		t.Error("ToDOT() output missing edge goal -> done")
	}
	if !strings.Contains(dot, `"goal" -> "open"`) {
		t.Error("ToDOT() output missing edge goal -> open")
	}
}

func TestToDOT_NodeStyles(t *testing.T) {
	dot := ToDOT(buildGraph(t), DefaultOptions())

	tests := []struct {
		node string
		want string
	}{
		{"goal", `"goal" [color="black", fontcolor="black", peripheries=2];`},
		{"done", `"done" [color="green", fontcolor="green", peripheries=1];`},
		{"open", `"open" [color="black", fontcolor="black", peripheries=1];`},
	}
	for _, tt := range tests {
		if !strings.Contains(dot, tt.want) {
			t.Errorf("ToDOT() node %s: missing %q in\n%s", tt.node, tt.want, dot)
		}
	}
}

func TestToDOT_EdgeColors(t *testing.T) {
	g := graph.New()
	_ = g.AddNode(graph.Node{ID: "a", Done: true, Goal: true})
	_ = g.AddNode(graph.Node{ID: "b", Done: true})
	_ = g.AddEdge(graph.Edge{From: "a", To: "b", Done: true})

	dot := ToDOT(g, Options{DoneColor: "#00aa00", TodoColor: "gray40", RankDir: "lr"})

	if !strings.Contains(dot, `"a" -> "b" [color="#00aa00"];`) {
		t.Errorf("ToDOT() done edge not colored:\n%s", dot)
	}
	if !strings.Contains(dot, "rankdir=LR;") {
		t.Errorf("ToDOT() rankdir not upper-cased:\n%s", dot)
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	g := buildGraph(t)
	first := ToDOT(g, DefaultOptions())
	for i := 0; i < 20; i++ {
		if got := ToDOT(g, DefaultOptions()); got != first {
			t.Fatalf("ToDOT() output changed between calls:\n%s\nvs\n%s", first, got)
		}
	}
}

func TestToDOT_EmptyGraph(t *testing.T) {
	dot := ToDOT(graph.New(), Options{})
	if !strings.HasPrefix(dot, "strict digraph mikado {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT() empty graph malformed:\n%s", dot)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`C:\path`, `"C:\\path"`},
		{"two\nlines", `"two\nlines"`},
		{"", `""`},
	}
	for _, tt := range tests {
		if got := quote(tt.in); got != tt.want {
			t.Errorf("quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
