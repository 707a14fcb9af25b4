package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/greenevent/internal/engine"
	"github.com/rshade/greenevent/internal/greenops"
	listview "github.com/rshade/greenevent/internal/tui/list"
)

// RecommendationSortField is the field the browser sorts by.
type RecommendationSortField int

const (
	// SortByRank keeps the ranker's order.
	SortByRank RecommendationSortField = iota
	// SortBySavings sorts by estimated savings, largest first.
	SortBySavings
	// SortByEffort sorts by effort, easiest first.
	SortByEffort
)

// String returns the label shown in the status line.
func (f RecommendationSortField) String() string {
	switch f {
	case SortByRank:
		return "rank"
	case SortBySavings:
		return "savings"
	case SortByEffort:
		return "effort"
	default:
		return "unknown"
	}
}

const (
	numRecommendationSortFields = 3
	recSummaryHeight            = 8

	recColWidthRank     = 4
	recColWidthCategory = 14
	recColWidthAction   = 30
	recColWidthSavings  = 14
	recColWidthEffort   = 6
)

// RecommendationsSummary aggregates a recommendation list.
type RecommendationsSummary struct {
	TotalCount        int
	TotalSavingsKg    float64
	SavingsByCategory map[engine.Category]float64
	Equivalencies     greenops.EquivalencyOutput
}

// NewRecommendationsSummary summarises recs.
func NewRecommendationsSummary(recs []engine.Recommendation) *RecommendationsSummary {
	s := &RecommendationsSummary{
		TotalCount:        len(recs),
		SavingsByCategory: make(map[engine.Category]float64),
	}
	for _, r := range recs {
		s.TotalSavingsKg += r.EstimatedSavingsKg
		s.SavingsByCategory[r.Category] += r.EstimatedSavingsKg
	}
	if eq, err := greenops.Calculate(greenops.CarbonInput{Value: s.TotalSavingsKg, Unit: "kg"}); err == nil {
		s.Equivalencies = eq
	}
	return s
}

func effortLabel(effort int) string {
	switch effort {
	case 1:
		return "low"
	case 2:
		return "medium"
	default:
		return "high"
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// renderRecommendation formats one list row.
func renderRecommendation(rec engine.Recommendation, selected bool) string {
	row := fmt.Sprintf("%*d  %-*s  %-*s  %*s  %-*s",
		recColWidthRank, rec.Rank,
		recColWidthCategory, truncate(string(rec.Category), recColWidthCategory),
		recColWidthAction, truncate(rec.Action, recColWidthAction),
		recColWidthSavings, greenops.FormatKg(rec.EstimatedSavingsKg, 1),
		recColWidthEffort, effortLabel(rec.Effort),
	)
	if selected {
		return SelectedStyle.Render(row)
	}
	return row
}

// RecommendationsViewModel is the Bubble Tea model for browsing recommendations.
type RecommendationsViewModel struct {
	state              ViewState
	allRecommendations []engine.Recommendation
	recommendations    []engine.Recommendation

	virtualList *listview.VirtualListModel[engine.Recommendation]
	textInput   textinput.Model

	width      int
	height     int
	sortBy     RecommendationSortField
	showFilter bool

	summary *RecommendationsSummary
}

// NewRecommendationsViewModel creates a browser over recs, in ranked order.
func NewRecommendationsViewModel(recs []engine.Recommendation) *RecommendationsViewModel {
	all := make([]engine.Recommendation, len(recs))
	copy(all, recs)
	m := &RecommendationsViewModel{
		state:              ViewStateList,
		allRecommendations: all,
		recommendations:    append([]engine.Recommendation(nil), all...),
		textInput:          newRecTextInput(),
		summary:            NewRecommendationsSummary(all),
		width:              defaultWidth,
		height:             defaultHeight,
	}
	m.applySort()
	m.rebuildList()
	return m
}

func newRecTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "category, action or text..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// Init implements tea.Model.
func (m *RecommendationsViewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *RecommendationsViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.rebuildList()
		return m, nil
	}

	if m.showFilter {
		return m.handleFilterInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	default:
		return m, nil
	}
}

func (m *RecommendationsViewModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showFilter = false
			m.textInput.Blur()
			m.applyFilter()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *RecommendationsViewModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEnter:
			if len(m.recommendations) > 0 {
				m.state = ViewStateDetail
			}
			return m, nil
		case keySlash, keyFilter:
			m.showFilter = true
			return m, m.textInput.Focus()
		case keySort:
			m.cycleSort()
			return m, nil
		case keyEsc:
			if m.textInput.Value() != "" {
				m.textInput.SetValue("")
				m.applyFilter()
			}
			return m, nil
		}
	}

	if m.virtualList != nil {
		updated, cmd := m.virtualList.Update(msg)
		if vl, ok := updated.(*listview.VirtualListModel[engine.Recommendation]); ok {
			m.virtualList = vl
		}
		return m, cmd
	}
	return m, nil
}

func (m *RecommendationsViewModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc:
			m.state = ViewStateList
		}
	}
	return m, nil
}

// applyFilter keeps recommendations whose category, action or description
// contains the filter text, case-insensitively.
func (m *RecommendationsViewModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.textInput.Value()))
	filtered := make([]engine.Recommendation, 0, len(m.allRecommendations))
	for _, r := range m.allRecommendations {
		if query == "" ||
			strings.Contains(strings.ToLower(string(r.Category)), query) ||
			strings.Contains(strings.ToLower(r.Action), query) ||
			strings.Contains(strings.ToLower(r.Description), query) {
			filtered = append(filtered, r)
		}
	}
	m.recommendations = filtered
	m.summary = NewRecommendationsSummary(filtered)
	m.applySort()
	m.rebuildList()
}

func (m *RecommendationsViewModel) cycleSort() {
	m.sortBy = (m.sortBy + 1) % numRecommendationSortFields
	m.applySort()
	m.rebuildList()
}

// applySort orders by the current field, falling back to rank for ties.
func (m *RecommendationsViewModel) applySort() {
	sort.SliceStable(m.recommendations, func(i, j int) bool {
		a, b := m.recommendations[i], m.recommendations[j]
		switch m.sortBy {
		case SortBySavings:
			if a.EstimatedSavingsKg != b.EstimatedSavingsKg {
				return a.EstimatedSavingsKg > b.EstimatedSavingsKg
			}
		case SortByEffort:
			if a.Effort != b.Effort {
				return a.Effort < b.Effort
			}
		case SortByRank:
		}
		return a.Rank < b.Rank
	})
}

func (m *RecommendationsViewModel) rebuildList() {
	available := m.height - recSummaryHeight - 1
	if available < minHeight {
		available = minHeight
	}
	m.virtualList = listview.NewVirtualListModel(m.recommendations, available, m.width, renderRecommendation)
}

// Visible returns the recommendations currently listed, in display order.
func (m *RecommendationsViewModel) Visible() []engine.Recommendation {
	return m.recommendations
}

// State returns the current view state.
func (m *RecommendationsViewModel) State() ViewState {
	return m.state
}

// SortField returns the current sort field.
func (m *RecommendationsViewModel) SortField() RecommendationSortField {
	return m.sortBy
}

// View implements tea.Model.
func (m *RecommendationsViewModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		if item := m.virtualList.GetSelectedItem(); item != nil {
			return RenderRecommendationDetail(*item)
		}
		return "No recommendation selected."
	default:
		return m.renderListView()
	}
}

func (m *RecommendationsViewModel) renderListView() string {
	header := HeaderStyle.Render(fmt.Sprintf("%*s  %-*s  %-*s  %*s  %-*s",
		recColWidthRank, "#",
		recColWidthCategory, "Category",
		recColWidthAction, "Action",
		recColWidthSavings, "Savings",
		recColWidthEffort, "Effort",
	))
	body := m.virtualList.View()
	if len(m.recommendations) == 0 {
		body = LabelStyle.Render("No recommendations match.")
	}

	status := LabelStyle.Render(fmt.Sprintf("\nsort: %s  [/] Filter  [s] Sort  [↑↓/jk] Navigate  [Enter] Details  [q] Quit",
		m.sortBy))
	parts := []string{RenderRecommendationsSummary(m.summary), header, body}
	if m.showFilter {
		parts = append(parts, "\nFilter: "+m.textInput.View())
	}
	parts = append(parts, status)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderRecommendationsSummary renders the aggregate header, categories in
// declaration order.
func RenderRecommendationsSummary(s *RecommendationsSummary) string {
	if s == nil || s.TotalCount == 0 {
		return "No recommendations: every category is already at zero."
	}
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("REDUCTION OPPORTUNITIES") + "\n")
	fmt.Fprintf(&sb, "%d recommendations, up to %s CO2e avoided\n", s.TotalCount,
		greenops.FormatKg(s.TotalSavingsKg, 1))
	for _, c := range engine.Categories() {
		if v, ok := s.SavingsByCategory[c]; ok {
			fmt.Fprintf(&sb, "  %-14s %s\n", c, greenops.FormatKg(v, 1))
		}
	}
	if !s.Equivalencies.IsEmpty {
		sb.WriteString(LabelStyle.Render(s.Equivalencies.DisplayText) + "\n")
	}
	return sb.String()
}

// RenderRecommendationDetail renders one recommendation in full.
func RenderRecommendationDetail(rec engine.Recommendation) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("#%d %s", rec.Rank, rec.Action)) + "\n\n")
	fmt.Fprintf(&sb, "Category:    %s\n", rec.Category)
	fmt.Fprintf(&sb, "Savings:     %s CO2e (%s of category)\n",
		greenops.FormatKg(rec.EstimatedSavingsKg, 2), greenops.FormatPercent(rec.PotentialFraction*100))
	fmt.Fprintf(&sb, "Effort:      %s\n", effortLabel(rec.Effort))
	fmt.Fprintf(&sb, "Priority:    %s\n", greenops.FormatFloat(rec.Priority, 2))
	fmt.Fprintf(&sb, "\n%s\n", rec.Description)
	sb.WriteString(LabelStyle.Render("\n[Esc] Back to list  [q] Quit"))
	return BoxStyle.Render(sb.String())
}
