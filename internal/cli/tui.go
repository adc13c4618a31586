package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/synsetree/pkg/classify"
	apperrors "github.com/matzehuels/synsetree/pkg/errors"
	"github.com/matzehuels/synsetree/pkg/pipeline"
	"github.com/matzehuels/synsetree/pkg/session"
	"github.com/matzehuels/synsetree/pkg/tree"
)

const limitStep = 50

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// browseRow is one line of the flattened tree.
type browseRow struct {
	key   string
	name  string
	depth int
	kind  classify.Kind
}

// BrowseModel is the bubbletea model for drilling down the hypernym tree.
// Enter re-roots the tree at the highlighted sense; backspace returns to
// the previous root. A failed selection leaves the current tree in place.
type BrowseModel struct {
	ctx    context.Context
	runner *pipeline.Runner

	Session *session.Session
	Tree    *pipeline.View
	Rows    []browseRow
	Cursor  int
	Offset  int
	Height  int
	Status  string
}

// NewBrowseModel explores the session's current root.
func NewBrowseModel(ctx context.Context, runner *pipeline.Runner, sess *session.Session) (BrowseModel, error) {
	m := BrowseModel{ctx: ctx, runner: runner, Session: sess, Height: 15}
	view, err := m.explore(sess.Current(), sess.Limit)
	if err != nil {
		return m, err
	}
	m.show(view)
	return m, nil
}

func (m BrowseModel) explore(root string, limit int) (*pipeline.View, error) {
	return m.runner.Explore(m.ctx, pipeline.Options{
		Root:     root,
		Limit:    limit,
		Language: m.Session.Language,
	})
}

// show replaces the displayed tree and resets the cursor.
func (m *BrowseModel) show(view *pipeline.View) {
	m.Tree = view
	m.Rows = nil
	view.Tree.Walk(func(n *tree.Node, depth int) bool {
		m.Rows = append(m.Rows, browseRow{
			key:   n.SynsetKey,
			name:  n.Name,
			depth: depth,
			kind:  view.Snapshot().Kind(n.SynsetKey),
		})
		return true
	})
	m.Cursor, m.Offset = 0, 0
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.Height)
		case "pgdown":
			m.move(m.Height)
		case "enter", "right", "l":
			m.selectRow()
		case "backspace", "left", "h":
			m.back()
		case "+":
			m.setLimit(m.Session.Limit + limitStep)
		case "-":
			m.setLimit(max(pipeline.MinLimit, m.Session.Limit-limitStep))
		}
	case tea.WindowSizeMsg:
		m.Height = max(5, msg.Height-10)
	}
	return m, nil
}

func (m *BrowseModel) move(delta int) {
	if len(m.Rows) == 0 {
		return
	}
	m.Cursor = min(max(0, m.Cursor+delta), len(m.Rows)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m *BrowseModel) selectRow() {
	if len(m.Rows) == 0 {
		return
	}
	key := m.Rows[m.Cursor].key
	if key == m.Session.Current() {
		return
	}
	view, err := m.explore(key, m.Session.Limit)
	if err != nil {
		m.Status = apperrors.UserMessage(pipeline.Classify(err))
		return
	}
	m.Session.Push(key)
	m.Status = ""
	m.show(view)
}

func (m *BrowseModel) back() {
	if len(m.Session.History) < 2 {
		m.Status = "already at the first root"
		return
	}
	prev := m.Session.History[len(m.Session.History)-2]
	view, err := m.explore(prev, m.Session.Limit)
	if err != nil {
		m.Status = apperrors.UserMessage(pipeline.Classify(err))
		return
	}
	m.Session.Back()
	m.Status = ""
	m.show(view)
}

func (m *BrowseModel) setLimit(limit int) {
	if limit == m.Session.Limit {
		return
	}
	view, err := m.explore(m.Session.Current(), limit)
	if err != nil {
		m.Status = apperrors.UserMessage(pipeline.Classify(err))
		return
	}
	m.Session.Limit = limit
	m.Status = ""
	m.show(view)
}

func (m BrowseModel) View() string {
	var b strings.Builder

	writeReport(&b, m.Tree)
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ drill down  ⌫ back  +/- limit  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Rows))
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := cursor + strings.Repeat("  ", r.depth) + r.name
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if r.kind == classify.Terminal {
			b.WriteString(listDimStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString(" " + kindLabel(r.kind) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  depth %d  limit %d",
		m.Cursor+1, len(m.Rows), len(m.Session.History), m.Session.Limit)))
	if m.Status != "" {
		b.WriteString("\n" + listErrorStyle.Render("  "+m.Status))
	}
	return b.String()
}
