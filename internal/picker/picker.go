// internal/picker/picker.go
//
// Interactive worker-pool selection. A small bubbletea list: space toggles
// a pool, enter confirms the selection, esc cancels. The picker implements
// match.CandidateSource so the registry can treat interactive and explicit
// candidate sets identically.

package picker

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/gridctl/internal/platform"
)

// PoolLister is the slice of the platform client the picker needs.
type PoolLister interface {
	ListWorkerPools(ctx context.Context) ([]platform.WorkerPool, error)
}

// Source lists all worker pools and lets the user pick a subset.
type Source struct {
	Client PoolLister

	// run launches the bubbletea program; tests replace it to drive the
	// model directly.
	run func(model) (model, error)
}

// NewSource builds an interactive candidate source over the given client.
func NewSource(client PoolLister) *Source {
	return &Source{Client: client, run: runProgram}
}

// Candidates fetches the pool listing and blocks on the interactive
// selection. Cancelling the picker yields an empty candidate set, which the
// registry treats as a populate failure.
func (s *Source) Candidates(ctx context.Context) ([]platform.WorkerPool, error) {
	pools, err := s.Client.ListWorkerPools(ctx)
	if err != nil {
		return nil, err
	}
	if len(pools) == 0 {
		return nil, fmt.Errorf("picker: no worker pools exist")
	}
	m, err := s.run(newModel(pools))
	if err != nil {
		return nil, fmt.Errorf("picker: %w", err)
	}
	if m.cancelled {
		return nil, nil
	}
	return m.Selected(), nil
}

func runProgram(m model) (model, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return m, err
	}
	return final.(model), nil
}

// poolItem implements list.Item for one worker pool row.
type poolItem struct {
	pool    platform.WorkerPool
	checked bool
}

func (i poolItem) Title() string {
	marker := "[ ]"
	if i.checked {
		marker = "[x]"
	}
	return fmt.Sprintf("%s %s", marker, i.pool.Name)
}

func (i poolItem) Description() string {
	desc := fmt.Sprintf("%s · %s", i.pool.ID, i.pool.Status)
	if i.pool.Namespace != "" {
		desc += " · " + i.pool.Namespace
	}
	return desc
}

func (i poolItem) FilterValue() string { return i.pool.Name }

type model struct {
	list      list.Model
	done      bool
	cancelled bool
}

func newModel(pools []platform.WorkerPool) model {
	items := make([]list.Item, len(pools))
	for i, p := range pools {
		items[i] = poolItem{pool: p}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select worker pools to compare"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return model{list: l}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-4)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			m.toggleCurrent()
			return m, nil
		case "enter":
			// Confirming with nothing checked selects the highlighted row.
			if len(m.Selected()) == 0 {
				m.toggleCurrent()
			}
			m.done = true
			return m, tea.Quit
		case "esc", "q", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.done || m.cancelled {
		return ""
	}
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		MarginTop(1).
		Render("Space → toggle    Enter → confirm    Esc → cancel")
	return m.list.View() + "\n" + hint
}

func (m *model) toggleCurrent() {
	idx := m.list.Index()
	item, ok := m.list.SelectedItem().(poolItem)
	if !ok {
		return
	}
	item.checked = !item.checked
	m.list.SetItem(idx, item)
}

// Selected returns the checked pools in listing order.
func (m model) Selected() []platform.WorkerPool {
	var pools []platform.WorkerPool
	for _, it := range m.list.Items() {
		if item, ok := it.(poolItem); ok && item.checked {
			pools = append(pools, item.pool)
		}
	}
	return pools
}
