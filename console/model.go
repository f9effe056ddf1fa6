package console

import (
	"context"
	"errors"

	"astromarket/models"
	"astromarket/services/customer"

	tea "github.com/charmbracelet/bubbletea"
)

// statusCycle is the order the status filter moves through.
var statusCycle = []string{models.StatusFilterAll, models.CustomerStatusActive, models.CustomerStatusInactive}

type inputMode string

const (
	modeBrowse inputMode = "browse"
	modeSearch inputMode = "search"
)

// Model is the customers admin console.
type Model struct {
	ctx    context.Context
	source Source

	filter    models.CustomerFilter
	customers []models.CustomerData
	stats     models.CustomerStats
	cursor    int
	mode      inputMode

	// seq drops search replies that arrive after a newer query was issued.
	seq int

	detail *models.CustomerDetail
	status string
	err    error

	width  int
	height int
}

type searchResultMsg struct {
	seq    int
	result *customer.SearchResult
}

type detailMsg struct {
	detail *models.CustomerDetail
}

// searchErrMsg is a failed search, tagged like searchResultMsg.
type searchErrMsg struct {
	seq int
	err error
}

type errMsg struct{ error }

func New(ctx context.Context, source Source) Model {
	return Model{
		ctx:    ctx,
		source: source,
		filter: models.CustomerFilter{Status: models.StatusFilterAll},
		mode:   modeBrowse,
		width:  100,
		height: 30,
	}
}

func (m Model) Init() tea.Cmd {
	return m.search()
}

func (m Model) search() tea.Cmd {
	seq, filter := m.seq, m.filter
	return func() tea.Msg {
		res, err := m.source.Search(m.ctx, filter)
		if err != nil {
			return searchErrMsg{seq: seq, err: err}
		}
		return searchResultMsg{seq: seq, result: res}
	}
}

func (m Model) loadDetail(id string) tea.Cmd {
	return func() tea.Msg {
		d, err := m.source.GetCustomer(m.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return detailMsg{detail: d}
	}
}

// refilter issues a new search for the current filter.
func (m Model) refilter() (Model, tea.Cmd) {
	m.seq++
	m.cursor = 0
	return m, m.search()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case searchResultMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.customers = msg.result.Customers
		m.stats = msg.result.Stats
		m.err = nil
		if m.cursor >= len(m.customers) {
			m.cursor = max(0, len(m.customers)-1)
		}
		return m, nil
	case detailMsg:
		m.detail = msg.detail
		return m, nil
	case searchErrMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.err = msg.err
		return m, nil
	case errMsg:
		m.err = msg.error
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.detail != nil {
			return m.updateOverlay(msg)
		}
		if m.mode == modeSearch {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

// updateOverlay only closes the detail view; closing discards it.
func (m Model) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.detail = nil
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = modeBrowse
		return m, nil
	case tea.KeyEsc:
		m.mode = modeBrowse
		if m.filter.Term == "" {
			return m, nil
		}
		m.filter.Term = ""
		return m.refilter()
	case tea.KeyBackspace:
		r := []rune(m.filter.Term)
		if len(r) == 0 {
			return m, nil
		}
		m.filter.Term = string(r[:len(r)-1])
		return m.refilter()
	case tea.KeySpace:
		m.filter.Term += " "
		return m.refilter()
	case tea.KeyRunes:
		m.filter.Term += string(msg.Runes)
		return m.refilter()
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.mode = modeSearch
	case "s":
		m.filter.Status = nextStatus(m.filter.Status)
		return m.refilter()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.customers)-1 {
			m.cursor++
		}
	case "enter":
		if c, ok := m.selected(); ok {
			return m, m.loadDetail(c.ID)
		}
	case "e":
		m.status = "Export is not available yet"
	case "r":
		return m, m.search()
	}
	return m, nil
}

func (m Model) selected() (models.CustomerData, bool) {
	if m.cursor < 0 || m.cursor >= len(m.customers) {
		return models.CustomerData{}, false
	}
	return m.customers[m.cursor], true
}

func nextStatus(current string) string {
	for i, s := range statusCycle {
		if s == current {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return statusCycle[0]
}

// notFound reports whether err means the customer disappeared.
func notFound(err error) bool {
	return errors.Is(err, customer.ErrCustomerNotFound)
}
