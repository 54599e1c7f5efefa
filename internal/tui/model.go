// Path: internal/tui/model.go

// Package tui provides the Bubble Tea catalog browser.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pokedex/internal/catalog"
	"pokedex/internal/domain"
)

// CatalogService is what the browser needs from the service layer.
type CatalogService interface {
	Load(ctx context.Context) error
	NewSession(ctx context.Context) (*catalog.State, error)
	Detail(ctx context.Context, id int) (domain.PokemonDetail, error)
}

type screen int

const (
	screenLoading screen = iota
	screenFailed
	screenList
	screenDetail
)

type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputTypes
)

type loadedMsg struct {
	state *catalog.State
	err   error
}

type detailMsg struct {
	seq    int
	detail domain.PokemonDetail
	err    error
}

// Model implements the Bubble Tea browser. It owns the browsing state.
type Model struct {
	ctx     context.Context
	service CatalogService

	screen  screen
	spinner spinner.Model
	loadErr error

	state  *catalog.State
	cursor int

	input     inputMode
	textInput textinput.Model

	// detailSeq identifies the detail request in flight; replies carrying
	// another sequence number are stale and dropped.
	detailSeq     int
	detailFor     domain.Pokemon
	detail        *domain.PokemonDetail
	detailErr     error
	detailLoading bool

	width  int
	height int
}

// NewModel constructs a browser model. The catalog is loaded by Init.
func NewModel(ctx context.Context, svc CatalogService) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 32

	return &Model{
		ctx:       ctx,
		service:   svc,
		screen:    screenLoading,
		spinner:   sp,
		textInput: ti,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m *Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.service.Load(m.ctx); err != nil {
			return loadedMsg{err: err}
		}
		st, err := m.service.NewSession(m.ctx)
		return loadedMsg{state: st, err: err}
	}
}

func (m *Model) detailCmd(seq, id int) tea.Cmd {
	return func() tea.Msg {
		d, err := m.service.Detail(m.ctx, id)
		return detailMsg{seq: seq, detail: d, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		if m.screen != screenLoading && !m.detailLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadedMsg:
		if msg.err != nil {
			m.screen = screenFailed
			m.loadErr = msg.err
			return m, nil
		}
		m.state = msg.state
		m.screen = screenList
		return m, nil
	case detailMsg:
		if m.screen != screenDetail || msg.seq != m.detailSeq {
			return m, nil
		}
		m.detailLoading = false
		if msg.err != nil {
			m.detailErr = msg.err
			return m, nil
		}
		m.detail = &msg.detail
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.input != inputNone {
			return m.updateInput(msg)
		}
		switch m.screen {
		case screenList:
			return m.updateList(msg)
		case screenDetail:
			return m.updateDetail(msg)
		default:
			if msg.String() == "q" {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		return m.startInput(inputSearch, m.state.Query().Text, "name or number")
	case "t":
		return m.startInput(inputTypes, strings.Join(m.state.Query().Types, ","), "fire,flying")
	case "g":
		m.applyQuery(func(q *catalog.Query) { q.Generation = nextGeneration(q.Generation) })
	case "s":
		m.applyQuery(func(q *catalog.Query) { q.Sort = nextSort(q.Sort) })
	case "r":
		m.state.Reset()
		m.cursor = 0
	case "left", "h":
		if m.state.Prev() {
			m.cursor = 0
		}
	case "right", "l":
		if m.state.Next() {
			m.cursor = 0
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.state.Current().Items)-1 {
			m.cursor++
		}
	case "enter":
		return m.openDetail()
	}
	return m, nil
}

func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.closeDetail()
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopInput()
		return m, nil
	case tea.KeyEnter:
		value := m.textInput.Value()
		switch m.input {
		case inputSearch:
			m.applyQuery(func(q *catalog.Query) { q.Text = strings.TrimSpace(value) })
		case inputTypes:
			m.applyQuery(func(q *catalog.Query) { q.Types = parseTypes(value) })
		}
		m.stopInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *Model) startInput(mode inputMode, value, placeholder string) (tea.Model, tea.Cmd) {
	m.input = mode
	m.textInput.SetValue(value)
	m.textInput.Placeholder = placeholder
	m.textInput.CursorEnd()
	return m, m.textInput.Focus()
}

func (m *Model) stopInput() {
	m.input = inputNone
	m.textInput.Blur()
	m.textInput.Reset()
}

// applyQuery rebuilds the working set from an edited copy of the query.
func (m *Model) applyQuery(edit func(q *catalog.Query)) {
	q := m.state.Query()
	q.Types = append([]string(nil), q.Types...)
	edit(&q)
	m.state.Apply(q)
	m.cursor = 0
}

func (m *Model) selected() (domain.Pokemon, bool) {
	items := m.state.Current().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return domain.Pokemon{}, false
	}
	return items[m.cursor], true
}

func (m *Model) openDetail() (tea.Model, tea.Cmd) {
	p, ok := m.selected()
	if !ok {
		return m, nil
	}
	m.detailSeq++
	m.detailFor = p
	m.detail = nil
	m.detailErr = nil
	m.detailLoading = true
	m.screen = screenDetail
	return m, tea.Batch(m.spinner.Tick, m.detailCmd(m.detailSeq, p.ID))
}

func (m *Model) closeDetail() {
	m.screen = screenList
	m.detail = nil
	m.detailErr = nil
	m.detailLoading = false
}

func nextGeneration(current string) string {
	tags := catalog.GenerationTags()
	if current == "" {
		return tags[0]
	}
	for i, tag := range tags {
		if tag == current && i+1 < len(tags) {
			return tags[i+1]
		}
	}
	return ""
}

func nextSort(current catalog.Sort) catalog.Sort {
	opts := catalog.SortOptions()
	for i, s := range opts {
		if s == current {
			return opts[(i+1)%len(opts)]
		}
	}
	return catalog.DefaultSort
}

func parseTypes(v string) []string {
	var types []string
	seen := make(map[string]bool)
	for _, t := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' }) {
		t = strings.ToLower(t)
		if seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	return types
}
