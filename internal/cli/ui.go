package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/synsetree/pkg/classify"
	"github.com/matzehuels/synsetree/pkg/pipeline"
	"github.com/matzehuels/synsetree/pkg/tree"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleElement = lipgloss.NewStyle().Foreground(colorCyan)
	styleItem    = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented dim line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output file.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Views
// =============================================================================

// kindLabel renders the ELEMENT/ITEM marker.
func kindLabel(k classify.Kind) string {
	if k == classify.Internal {
		return styleElement.Render(k.Label())
	}
	return styleItem.Render(k.Label())
}

// writeReport writes the view's header and summary lines.
func writeReport(w io.Writer, v *pipeline.View) {
	lines := v.Report()
	fmt.Fprintln(w, StyleTitle.Render(lines[0]))
	for _, line := range lines[1:] {
		fmt.Fprintln(w, StyleDim.Render(line))
	}
}

// writeTree draws root as an indented outline with box-drawing guides,
// each line marked with the sense's classification.
func writeTree(w io.Writer, root *tree.Node, kind func(string) classify.Kind) {
	fmt.Fprintf(w, "%s %s\n", kindLabel(kind(root.SynsetKey)), root.Name)
	writeChildren(w, root.Children, "", kind)
}

func writeChildren(w io.Writer, children []*tree.Node, prefix string, kind func(string) classify.Kind) {
	for i, child := range children {
		branch, next := "├── ", "│   "
		if i == len(children)-1 {
			branch, next = "└── ", "    "
		}
		fmt.Fprintf(w, "%s%s %s\n", StyleDim.Render(prefix+branch), kindLabel(kind(child.SynsetKey)), child.Name)
		writeChildren(w, child.Children, prefix+next, kind)
	}
}

// formatPath joins one hypernym path, root first.
func formatPath(path []pipeline.PathStep) string {
	names := make([]string, len(path))
	for i, step := range path {
		names[i] = step.Name
	}
	return strings.Join(names, " "+iconArrow+" ")
}
