package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pe51k/tagtally/internal/cli/formatter"
	"github.com/pe51k/tagtally/internal/domain"
	"github.com/pe51k/tagtally/internal/service"
)

// ── tabs ─────────────────────────────────────────────────────────────────────

type dashboardTab int

const (
	tabSummary dashboardTab = iota
	tabPeriods
	tabTags
)

var tabTitles = []string{"Summary", "Periods", "Tags"}

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg carries the three report views for the current filter.
type dashboardLoadedMsg struct {
	summary *service.Summary
	matrix  *service.PeriodMatrix
	tags    *service.SunburstView
	err     error
}

// ── key bindings ─────────────────────────────────────────────────────────────

type dashboardKeys struct {
	NextTab     key.Binding
	Granularity key.Binding
	DeeperTags  key.Binding
	FewerTags   key.Binding
	Refresh     key.Binding
	Quit        key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		NextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Granularity: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "granularity")),
		DeeperTags:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "deeper")),
		FewerTags:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shallower")),
		Refresh:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel is a tabbed read-only view over the report service. All
// data for the current filter loads in one command; granularity and depth
// changes trigger a reload, which the service memoizes per range.
type dashboardModel struct {
	app    *App
	filter service.RangeFilter
	keys   dashboardKeys

	tab         dashboardTab
	granularity domain.Granularity
	depth       int

	summary *service.Summary
	matrix  *service.PeriodMatrix
	tags    *service.SunburstView

	width   int
	loading bool
	err     error
}

func newDashboardModel(app *App, filter service.RangeFilter) *dashboardModel {
	depth := app.MaxTagDepth
	if depth < 1 {
		depth = 2
	}
	return &dashboardModel{
		app:         app,
		filter:      filter,
		keys:        newDashboardKeys(),
		granularity: app.DefaultGranularity,
		depth:       depth,
		loading:     true,
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *dashboardModel) loadData() tea.Cmd {
	app := m.app
	filter := m.filter
	g := m.granularity
	depth := m.depth

	return func() tea.Msg {
		ctx := context.Background()

		summary, err := app.Reports.Summary(ctx, filter)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		matrix, err := app.Reports.PeriodMatrix(ctx, filter, g)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		tags, err := app.Reports.Sunburst(ctx, filter, depth)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{summary: summary, matrix: matrix, tags: tags}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.summary = msg.summary
		m.matrix = msg.matrix
		m.tags = msg.tags
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % dashboardTab(len(tabTitles))
			return m, nil

		case key.Matches(msg, m.keys.Granularity):
			m.granularity = nextGranularity(m.granularity)
			m.loading = true
			return m, m.loadData()

		case key.Matches(msg, m.keys.DeeperTags):
			m.depth++
			m.loading = true
			return m, m.loadData()

		case key.Matches(msg, m.keys.FewerTags):
			if m.depth > 1 {
				m.depth--
				m.loading = true
				return m, m.loadData()
			}
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.app.Reports.Invalidate()
			m.loading = true
			return m, m.loadData()
		}

		switch msg.String() {
		case "1":
			m.tab = tabSummary
		case "2":
			m.tab = tabPeriods
		case "3":
			m.tab = tabTags
		}
		return m, nil
	}

	return m, nil
}

func nextGranularity(g domain.Granularity) domain.Granularity {
	switch g {
	case domain.GranularityDay:
		return domain.GranularityWeek
	case domain.GranularityWeek:
		return domain.GranularityMonth
	default:
		return domain.GranularityDay
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m *dashboardModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + m.renderTabs() + "\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + formatter.Dim("Loading..."))
	case m.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+m.err.Error()))
	default:
		b.WriteString(indent(m.renderTab(), "  "))
	}

	b.WriteString("\n\n  " + m.renderHelp() + "\n")
	return b.String()
}

func (m *dashboardModel) renderTabs() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if dashboardTab(i) == m.tab {
			parts[i] = formatter.StyleHeader.Render(label)
		} else {
			parts[i] = formatter.Dim(label)
		}
	}
	return strings.Join(parts, formatter.Dim("  │  "))
}

func (m *dashboardModel) renderTab() string {
	switch m.tab {
	case tabPeriods:
		return m.renderPeriods()
	case tabTags:
		return m.renderTags()
	default:
		return m.renderSummary()
	}
}

func (m *dashboardModel) renderSummary() string {
	if m.summary == nil {
		return formatter.Dim("no data")
	}
	s := m.summary

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %d\n", formatter.Dim("Records     "), s.RecordCount))
	b.WriteString(fmt.Sprintf("%s %s\n", formatter.Dim("Total time  "), formatter.Bold(formatter.FormatDuration(s.TotalDuration))))
	b.WriteString(fmt.Sprintf("%s %s\n", formatter.Dim("Avg record  "), formatter.FormatDuration(s.AvgDuration)))
	b.WriteString(fmt.Sprintf("%s %d\n", formatter.Dim("Unique tags "), s.UniqueTags))
	if s.FirstStart != nil && s.LastEnd != nil {
		b.WriteString(fmt.Sprintf("%s %s to %s\n", formatter.Dim("Range       "),
			formatter.HumanDate(s.FirstStart.In(m.app.Loc())),
			formatter.HumanDate(s.LastEnd.In(m.app.Loc()))))
	}
	if s.SkippedRecords > 0 {
		b.WriteString(formatter.Dim(fmt.Sprintf("%d record(s) missing endpoints skipped\n", s.SkippedRecords)))
	}
	return b.String()
}

func (m *dashboardModel) renderPeriods() string {
	if m.matrix == nil || len(m.matrix.Periods) == 0 {
		return formatter.Dim("no records in range")
	}
	header := formatter.Header(fmt.Sprintf("Time by %s", m.granularity))
	return header + "\n" + renderPeriodTable(m.matrix, m.granularity) + "\n" + renderPeriodChart(m.matrix, m.granularity)
}

func (m *dashboardModel) renderTags() string {
	if m.tags == nil {
		return formatter.Dim("no data")
	}
	header := formatter.Header(fmt.Sprintf("Tag hierarchy (depth %d)", m.depth))
	out := header + "\n" + formatter.RenderTagTree(m.tags.Rows, m.tags.Total)
	for _, issue := range m.tags.Issues {
		out += formatter.StyleRed.Render("! "+issue) + "\n"
	}
	return out
}

func (m *dashboardModel) renderHelp() string {
	bindings := []key.Binding{
		m.keys.NextTab,
		m.keys.Granularity,
		m.keys.DeeperTags,
		m.keys.FewerTags,
		m.keys.Refresh,
		m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, formatter.StyleGreen.Render(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim(" · "))
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

var _ tea.Model = (*dashboardModel)(nil)
