package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/mikado/pkg/errors"
	"github.com/matzehuels/mikado/pkg/pipeline"
)

func renderSample(t *testing.T, text string) renderMsg {
	t.Helper()
	runner := pipeline.NewRunner(nil, log.New(io.Discard))
	result, err := runner.Execute(context.Background(), text, pipeline.Options{Format: pipeline.FormatDOT})
	return renderMsg{result: result, output: "plan.dot", err: err, at: time.Now()}
}

func TestWatchModel_InitialView(t *testing.T) {
	m := newWatchModel("plan.mikado")
	view := m.View()

	if !strings.Contains(view, "plan.mikado") {
		t.Error("view should name the watched file")
	}
	if !strings.Contains(view, "rendering") {
		t.Error("view should show that the first render is pending")
	}
}

func TestWatchModel_RenderSuccess(t *testing.T) {
	var model tea.Model = newWatchModel("plan.mikado")
	model, _ = model.Update(renderSample(t, sampleOutline))
	m := model.(watchModel)

	if m.renders != 1 || m.lastErr != nil {
		t.Fatalf("renders=%d lastErr=%v", m.renders, m.lastErr)
	}

	view := m.View()
	for _, want := range []string{"Tasks", "plan.dot", "next up", "Pass config to worker"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestWatchModel_ErrorKeepsLastRender(t *testing.T) {
	var model tea.Model = newWatchModel("plan.mikado")
	model, _ = model.Update(renderSample(t, sampleOutline))
	model, _ = model.Update(changedMsg{})
	model, _ = model.Update(renderSample(t, "o Goal\n            o Too deep\n"))
	m := model.(watchModel)

	if !errors.Is(m.lastErr, errors.ErrCodeMalformedIndentation) {
		t.Fatalf("lastErr = %v, want MALFORMED_INDENTATION", m.lastErr)
	}
	if m.last.result == nil {
		t.Fatal("last good render should be kept")
	}

	view := m.View()
	if !strings.Contains(view, "MALFORMED_INDENTATION") {
		t.Errorf("view should show the outline error:\n%s", view)
	}
	if !strings.Contains(view, "Tasks") {
		t.Errorf("view should still show the last stats:\n%s", view)
	}

	model, _ = model.Update(renderSample(t, sampleOutline))
	if model.(watchModel).lastErr != nil {
		t.Error("a successful render should clear the error")
	}
}

func TestWatchModel_AllDone(t *testing.T) {
	var model tea.Model = newWatchModel("plan.mikado")
	model, _ = model.Update(renderSample(t, "x Goal\n    x Step\n"))

	if view := model.View(); !strings.Contains(view, "all tasks done") {
		t.Errorf("view should report completion:\n%s", view)
	}
}

func TestWatchModel_Quit(t *testing.T) {
	m := newWatchModel("plan.mikado")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
