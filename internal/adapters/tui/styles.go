package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#61AFEF"))
	filterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C678DD"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5C6370")).Strikethrough(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#56B6C2"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5C6370"))
	bannerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#BE5046")).Padding(0, 1)
	undoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#282C34")).Background(lipgloss.Color("#98C379")).Padding(0, 1)
	formStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#61AFEF")).Padding(0, 1)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B"))
)
