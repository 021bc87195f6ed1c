package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/mikado/pkg/errors"
)

func TestRender_SVG(t *testing.T) {
	dot := ToDOT(buildGraph(t), DefaultOptions())

	svg, err := Render(context.Background(), dot, FormatSVG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Fatal("Render() output is not SVG")
	}
	if !bytes.Contains(svg, []byte(`viewBox="0 0 `)) {
		t.Error("Render() SVG viewBox not normalized")
	}
	if !bytes.Contains(svg, []byte("goal")) {
		t.Error("Render() SVG missing node label")
	}
}

func TestRender_PNG(t *testing.T) {
	png, err := Render(context.Background(), ToDOT(buildGraph(t), DefaultOptions()), FormatPNG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("Render() output is not PNG")
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(context.Background(), "digraph {}", Format("pdf"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render() error = %v, want INVALID_FORMAT", err)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 62.00 116.00"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if !strings.Contains(out, `width="62" height="116"`) {
		t.Errorf("normalizeViewBox() size not set: %s", out)
	}
}

func TestNormalizeViewBox_NoViewBox(t *testing.T) {
	in := []byte(`<svg><g/></svg>`)
	if out := normalizeViewBox(in); !bytes.Equal(in, out) {
		t.Errorf("normalizeViewBox() changed input without viewBox: %s", out)
	}
}
