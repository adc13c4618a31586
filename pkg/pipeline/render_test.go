package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/synsetree/pkg/errors"
	"github.com/matzehuels/synsetree/pkg/tree"
)

func exploreDog(t *testing.T) (*Runner, *View) {
	t.Helper()
	r := builtRunner(t)
	view, err := r.Explore(context.Background(), Options{Root: "animal.n.01"})
	if err != nil {
		t.Fatal(err)
	}
	return r, view
}

func TestRender_JSON(t *testing.T) {
	r, view := exploreDog(t)
	data, err := r.Render(context.Background(), view, RenderOptions{Format: FormatJSON})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var got tree.Node
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SynsetKey != "animal.n.01" || got.Name != "animal.n.01.animal,beast" {
		t.Errorf("root = %q %q", got.SynsetKey, got.Name)
	}
	if len(got.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(got.Children))
	}
	// Leaves carry an empty array, not null.
	if !bytes.Contains(data, []byte(`"children": []`)) {
		t.Errorf("leaf children not encoded as []: %s", data)
	}
}

func TestRender_DOT(t *testing.T) {
	r, view := exploreDog(t)
	data, err := r.Render(context.Background(), view, RenderOptions{Format: FormatDOT, Detailed: true})
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	if !strings.Contains(dot, "layout=twopi") {
		t.Error("DOT missing radial layout")
	}
	if !strings.Contains(dot, `ELEMENT`) || !strings.Contains(dot, `ITEM`) {
		t.Errorf("DOT missing classification labels: %s", dot)
	}
}

func TestRender_SVG(t *testing.T) {
	r, view := exploreDog(t)
	data, err := r.Render(context.Background(), view, RenderOptions{})
	if err != nil {
		t.Fatalf("Render(svg) error = %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("Render() default format is not SVG")
	}
}

func TestRender_InvalidFormat(t *testing.T) {
	r, view := exploreDog(t)
	_, err := r.Render(context.Background(), view, RenderOptions{Format: "gif"})
	if !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("Render(gif) error = %v, want INVALID_FORMAT", err)
	}
}

func TestView_Report(t *testing.T) {
	r := builtRunner(t)
	view, err := r.Explore(context.Background(), Options{Root: "entity.n.01", Limit: 5})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"ELEMENT entity.n.01.entity: that which is perceived to exist",
		"entity.n.01.entity has total 6 (items/elements)",
		"trim to 5.",
		"there are 1 items and 4 elements in entity.n.01.entity.",
	}
	got := view.Report()
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("Report() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}

	leaf, err := r.Explore(context.Background(), Options{Root: "cat.n.01"})
	if err != nil {
		t.Fatal(err)
	}
	if leaf.TrimLine() != "" {
		t.Errorf("TrimLine() = %q, want empty", leaf.TrimLine())
	}
	if leaf.Header() != "ITEM cat.n.01.cat" {
		t.Errorf("Header() = %q", leaf.Header())
	}
}
