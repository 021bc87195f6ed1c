package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/mikado/pkg/graph"
	"github.com/matzehuels/mikado/pkg/pipeline"
)

func TestStatsLine(t *testing.T) {
	tests := []struct {
		name   string
		stats  graph.Stats
		cached bool
		want   []string
		absent []string
	}{
		{
			name:   "single goal",
			stats:  graph.Stats{Tasks: 4, Done: 2, Edges: 3, Goals: 1},
			want:   []string{"4 tasks", "2 done", "3 edges", "fresh"},
			absent: []string{"goals", "cached"},
		},
		{
			name:   "several goals from cache",
			stats:  graph.Stats{Tasks: 5, Done: 0, Edges: 3, Goals: 2},
			cached: true,
			want:   []string{"5 tasks", "2 goals", "cached"},
			absent: []string{"fresh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := statsLine(pipeline.Stats{Stats: tt.stats}, tt.cached)
			for _, w := range tt.want {
				if !strings.Contains(line, w) {
					t.Errorf("statsLine() = %q, missing %q", line, w)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(line, a) {
					t.Errorf("statsLine() = %q, should not contain %q", line, a)
				}
			}
		})
	}
}

func TestPrintHelpersWriteToStatusOut(t *testing.T) {
	status := quietStatus(t)

	printSuccess("Rendered %s", "plan.mikado")
	printFile("plan.svg")
	printKeyValue("format", "svg")

	out := status.String()
	for _, want := range []string{"Rendered plan.mikado", "plan.svg", "format", "svg"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output %q missing %q", out, want)
		}
	}
}
