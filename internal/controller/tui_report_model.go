package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Simple delegate for report list items.
type reportDelegate struct {
	offset int
}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var pathStyle, countStyle lipgloss.Style

	var displayPath string

	width := m.Width() - 8 // Subtract count width (6) + spacing (2)

	if isSelected {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		displayPath = animateScroll(file.path, width, d.offset)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		displayPath = truncateToWidth(file.path, width)
	}

	line := fmt.Sprintf("%s  %s",
		countStyle.Render(fmt.Sprintf("%d", file.count)),
		pathStyle.Render(displayPath),
	)
	_, _ = fmt.Fprint(w, line)
}

// reportModel shows the scanned files and, on demand, the folding ranges
// of the selected file.
type reportModel struct {
	files       list.Model
	delegate    reportDelegate
	showDetails bool
	width       int
	height      int
	quitting    bool
}

func newReportModel(items []list.Item, title string) reportModel {
	delegate := reportDelegate{}

	files := list.New(items, delegate, 0, 0)
	files.Title = title
	files.SetShowStatusBar(false)
	files.SetFilteringEnabled(true)

	return reportModel{files: files, delegate: delegate}
}

func (r reportModel) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (r reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if r.showDetails {
				r.showDetails = false
				return r, nil
			}

			r.quitting = true

			return r, tea.Quit

		case "enter":
			r.showDetails = !r.showDetails

			return r, nil
		}

	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.files.SetSize(msg.Width, msg.Height-2)

		return r, nil

	case tickMsg:
		r.delegate.offset++
		r.files.SetDelegate(r.delegate)

		return r, tickCmd()
	}

	var cmd tea.Cmd
	r.files, cmd = r.files.Update(msg)

	return r, cmd
}

func (r reportModel) View() string {
	if r.quitting {
		return ""
	}

	if r.showDetails {
		return r.detailView()
	}

	return r.files.View()
}

func (r reportModel) detailView() string {
	item, ok := r.files.SelectedItem().(fileItem)
	if !ok {
		return r.files.View()
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	rangeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	hintStyle := lipgloss.NewStyle().Faint(true)

	view := titleStyle.Render(item.path) + "\n"

	if len(item.ranges) == 0 {
		view += hintStyle.Render("no error-handling blocks detected") + "\n"
	}

	for _, r := range item.ranges {
		view += rangeStyle.Render("  "+r) + "\n"
	}

	view += hintStyle.Render("esc: back  q: quit")

	return view
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	if n == 0 {
		return ""
	}

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
