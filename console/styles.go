package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	option  lipgloss.Style
	prompt  lipgloss.Style
	name    lipgloss.Style
	label   lipgloss.Style
	detail  lipgloss.Style
	warning lipgloss.Style
	empty   lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			title:   plain,
			option:  plain,
			prompt:  plain,
			name:    plain,
			label:   plain,
			detail:  plain,
			warning: plain,
			empty:   plain,
		}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		option:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("142")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
