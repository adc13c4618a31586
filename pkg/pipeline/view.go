package pipeline

import (
	"fmt"

	"github.com/matzehuels/synsetree/pkg/classify"
	"github.com/matzehuels/synsetree/pkg/extract"
	"github.com/matzehuels/synsetree/pkg/snapshot"
)

// View is an explored subtree together with what front ends display
// around it.
type View struct {
	*extract.Result
	Name       string        `json:"name"`
	Definition string        `json:"definition,omitempty"`
	Kind       classify.Kind `json:"kind"`
	Language   string        `json:"language"`

	snap *snapshot.Snapshot
}

// Snapshot returns the snapshot the view was extracted from.
func (v *View) Snapshot() *snapshot.Snapshot { return v.snap }

// Header returns the title line, e.g.
// "ELEMENT dog.n.01.dog,domestic_dog: a domesticated canid".
func (v *View) Header() string {
	if v.Definition == "" {
		return fmt.Sprintf("%s %s", v.Kind.Label(), v.Name)
	}
	return fmt.Sprintf("%s %s: %s", v.Kind.Label(), v.Name, v.Definition)
}

// TotalLine reports the full subtree size of the root.
func (v *View) TotalLine() string {
	return fmt.Sprintf("%s has total %d (items/elements)", v.Name, v.Size)
}

// TrimLine returns "trim to N." when the subtree was cut at the limit,
// and "" otherwise.
func (v *View) TrimLine() string {
	if !v.Trimmed {
		return ""
	}
	return fmt.Sprintf("trim to %d.", v.Limit)
}

// CountLine reports items and elements among the selected senses.
func (v *View) CountLine() string {
	return fmt.Sprintf("there are %d items and %d elements in %s.", v.Counts.Terminal, v.Counts.Internal, v.Name)
}

// Report returns the header and summary lines in display order, skipping
// an empty trim notice.
func (v *View) Report() []string {
	lines := []string{v.Header(), v.TotalLine()}
	if trim := v.TrimLine(); trim != "" {
		lines = append(lines, trim)
	}
	return append(lines, v.CountLine())
}
