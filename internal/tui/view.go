package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tesserakit/tessera/pkg/components"
	"github.com/tesserakit/tessera/pkg/dategrid"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.tooSmall {
		return components.ErrorAlert(fmt.Sprintf(
			"Terminal too small (%dx%d). Minimum size: %dx%d",
			m.width, m.height, minWidth, minHeight,
		)).View()
	}

	theme := components.GetTheme()

	var sections []string
	sections = append(sections, m.renderTabs(theme))
	sections = append(sections, m.renderSection(theme))
	sections = append(sections, m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs(theme components.Theme) string {
	active := components.StyleWith(theme, lipgloss.NewStyle(),
		components.Background(components.SlotPrimary),
		components.PaddingX(components.SpacingXs),
		components.Typography(components.TypographyEmphasis),
	)
	inactive := components.StyleWith(theme, lipgloss.NewStyle(),
		components.Typography(components.TypographySubtitle),
		components.PaddingX(components.SpacingXs),
	)

	var tabs []string
	for s := Section(0); s < sectionCount; s++ {
		if s == m.section {
			tabs = append(tabs, active.Render(s.Title()))
		} else {
			tabs = append(tabs, inactive.Render(s.Title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...) + "\n"
}

func (m Model) renderSection(theme components.Theme) string {
	switch m.section {
	case SectionCalendar:
		return m.renderCalendarSection(theme)
	case SectionPaginator:
		return m.renderPaginatorSection(theme)
	case SectionForms:
		return m.renderFormsSection()
	case SectionFeedback:
		return m.renderFeedbackSection()
	case SectionMarketing:
		return m.renderMarketingSection()
	default:
		return ""
	}
}

func (m Model) renderCalendarSection(theme components.Theme) string {
	caption := components.StyleWith(theme, lipgloss.NewStyle(),
		components.Typography(components.TypographyCaption),
	)

	status := "mode: single"
	if m.rangeMode {
		status = "mode: range"
	}
	if summary := selectionSummary(m.calendar.Selection()); summary != "" {
		status += " • " + summary
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.calendar.View(),
		"",
		caption.Render(status),
	)
}

func selectionSummary(sel dategrid.Selection) string {
	format := func(d dategrid.Date) string {
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}

	switch {
	case sel.Mode == dategrid.ModeSingle && sel.Picked != nil:
		return "picked " + format(*sel.Picked)
	case sel.RangeStart != nil && sel.RangeEnd != nil:
		return fmt.Sprintf("range %s → %s", format(*sel.RangeStart), format(*sel.RangeEnd))
	case sel.RangeStart != nil:
		return "picking end from " + format(*sel.RangeStart)
	default:
		return ""
	}
}

func (m Model) renderPaginatorSection(theme components.Theme) string {
	caption := components.StyleWith(theme, lipgloss.NewStyle(),
		components.Typography(components.TypographyCaption),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.paginator.View(),
		"",
		caption.Render(fmt.Sprintf("page %d of %d", m.paginator.Page(), m.paginator.Total())),
	)
}

func (m Model) renderFormsSection() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.field.View(),
		"",
		m.dialog.View(),
	)
}

func (m Model) renderFeedbackSection() string {
	badges := strings.Join([]string{
		components.SuccessBadge("stable").View(),
		components.InfoBadge("v1").View(),
		components.DangerBadge("breaking").View(),
	}, " ")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.accordion.View(),
		"",
		badges,
		"",
		m.loader.View(),
	)
}

func (m Model) renderMarketingSection() string {
	banner := components.NewBanner("Tessera").
		WithTagline("A theme-aware component kit for terminal applications").
		WithActions(
			components.SimpleButton("Get started"),
			components.NewButton("Browse themes", components.ButtonOptions{Variant: components.VariantGhost}),
		)

	card := components.NewCard("Every component is driven by the same palette, spacing scale, and typography presets.").
		WithTitle("One theme, every component").
		WithFooter("tessera themes: list the stock themes")

	return lipgloss.JoinVertical(lipgloss.Left, banner.View(), "", card.View())
}
