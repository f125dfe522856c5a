package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"debris-risk-economics/internal/catalog"
	"debris-risk-economics/internal/views"
)

type tab int

const (
	tabDashboard tab = iota
	tabConjunctions
	tabRiskScoring
	tabPrioritization
	tabAnalytics
)

var tabTitles = []string{"Dashboard", "Conjunctions", "Risk Scoring", "Prioritization", "Analytics"}

func (t tab) static() bool {
	return t == tabDashboard || t == tabPrioritization || t == tabAnalytics
}

var riskFilters = []string{
	views.FilterAll,
	string(catalog.RiskCritical),
	string(catalog.RiskHigh),
	string(catalog.RiskMedium),
	string(catalog.RiskLow),
}

const tableHeight = 8

// Model is the interactive dashboard. Tabs that do not depend on the filter
// or sort selection are rendered once, on first activation, and cached.
type Model struct {
	ds     *catalog.Dataset
	logger zerolog.Logger

	active    tab
	filterIdx int
	sortIdx   int

	cache map[tab]string

	conjunctions table.Model
	debris       table.Model
}

// New builds the dashboard model over ds with the Dashboard tab active.
func New(ds *catalog.Dataset, logger zerolog.Logger) Model {
	m := Model{
		ds:     ds,
		logger: logger.With().Str("component", "tui").Logger(),
		cache:  make(map[tab]string),
		conjunctions: table.New(
			table.WithColumns([]table.Column{
				{Title: "ID", Width: 8},
				{Title: "Satellite", Width: 16},
				{Title: "Debris", Width: 20},
				{Title: "TCA", Width: 20},
				{Title: "Miss km", Width: 8},
				{Title: "Probability", Width: 11},
				{Title: "Risk", Width: 8},
			}),
			table.WithFocused(true),
			table.WithHeight(tableHeight),
		),
		debris: table.New(
			table.WithColumns([]table.Column{
				{Title: "Name", Width: 20},
				{Title: "NORAD", Width: 7},
				{Title: "Score", Width: 6},
				{Title: "Class", Width: 7},
				{Title: "Conj/yr", Width: 8},
				{Title: "Sats", Width: 6},
				{Title: "Impact", Width: 9},
			}),
			table.WithFocused(true),
			table.WithHeight(tableHeight),
		),
	}
	m.conjunctions.SetStyles(tableStyles())
	m.debris.SetStyles(tableStyles())

	m.refreshConjunctions()
	m.refreshDebris()
	m.activate(tabDashboard)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "right", "tab", "l":
			m.activate((m.active + 1) % tab(len(tabTitles)))
			return m, nil
		case "left", "shift+tab", "h":
			m.activate((m.active + tab(len(tabTitles)) - 1) % tab(len(tabTitles)))
			return m, nil
		case "1", "2", "3", "4", "5":
			m.activate(tab(key[0] - '1'))
			return m, nil
		case "f":
			m.filterIdx = (m.filterIdx + 1) % len(riskFilters)
			m.refreshConjunctions()
			return m, nil
		case "s":
			m.sortIdx = (m.sortIdx + 1) % len(views.SortKeys)
			m.refreshDebris()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.active {
	case tabConjunctions:
		m.conjunctions, cmd = m.conjunctions.Update(msg)
	case tabRiskScoring:
		m.debris, cmd = m.debris.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Space Debris Risk Economics"))
	b.WriteString("\n\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.active {
	case tabConjunctions:
		fmt.Fprintf(&b, "Risk filter: %s\n\n", riskFilters[m.filterIdx])
		b.WriteString(m.conjunctions.View())
	case tabRiskScoring:
		fmt.Fprintf(&b, "Sorted by: %s\n\n", views.SortKeys[m.sortIdx])
		b.WriteString(m.debris.View())
	default:
		b.WriteString(m.cache[m.active])
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("←/→ tab • 1-5 jump • f filter • s sort • ↑/↓ move • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) activate(t tab) {
	m.active = t
	if !t.static() {
		return
	}
	if _, ok := m.cache[t]; ok {
		return
	}

	var content string
	switch t {
	case tabDashboard:
		content = m.renderDashboard()
	case tabPrioritization:
		content = m.renderPrioritization()
	case tabAnalytics:
		content = m.renderAnalytics()
	}
	m.cache[t] = content
	m.logger.Debug().Str("tab", tabTitles[t]).Msg("tab rendered")
}

func (m Model) tabBar() string {
	rendered := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if tab(i) == m.active {
			rendered[i] = activeTabStyle.Render(label)
		} else {
			rendered[i] = inactiveTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) refreshConjunctions() {
	events := views.SelectConjunctions(m.ds.Conjunctions(), riskFilters[m.filterIdx])
	rows := make([]table.Row, 0, len(events))
	for _, ev := range events {
		rows = append(rows, table.Row{
			ev.ID,
			ev.Satellite,
			ev.Debris,
			views.TCA(ev.TCA),
			fmt.Sprintf("%.3f", ev.MissDistanceKm),
			views.ProbabilityPercent(ev.CollisionProbability),
			string(ev.RiskLevel),
		})
	}
	m.conjunctions.SetRows(rows)
	m.conjunctions.GotoTop()
}

func (m *Model) refreshDebris() {
	objects := views.SortDebris(m.ds.Debris(), views.SortKeys[m.sortIdx])
	rows := make([]table.Row, 0, len(objects))
	for _, obj := range objects {
		rows = append(rows, table.Row{
			obj.Name,
			obj.NoradID,
			fmt.Sprintf("%d", obj.EconomicRiskScore),
			string(views.ClassifyScore(obj.EconomicRiskScore)),
			views.Count(obj.AnnualConjunctions),
			views.Count(obj.ThreatenedSatellites),
			views.Millions(obj.EstimatedAnnualImpactMillion),
		})
	}
	m.debris.SetRows(rows)
	m.debris.GotoTop()
}
