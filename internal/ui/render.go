package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fasguide/internal/scheme"
	"fasguide/internal/ui/textutil"
	"fasguide/internal/viewselect"
)

const (
	// pairedMinWidth is the narrowest width at which the two term tiers
	// render side by side.
	pairedMinWidth = 84
	// factsMinWidth is the narrowest width for the bridging facts in columns.
	factsMinWidth = 60
	pairGap       = 2
)

// renderProjection dispatches on the closed set of projections.
func renderProjection(p viewselect.Projection, width int) string {
	switch p := p.(type) {
	case viewselect.OverviewProjection:
		return renderOverview(p, width)
	case viewselect.ProcedureProjection:
		return renderProcedure(p, width)
	default:
		panic(fmt.Sprintf("ui: unhandled projection %T", p))
	}
}

func renderHeader(width int) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, Styles.Title.Render(scheme.Title)),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, Styles.Subtitle.Render(scheme.Subtitle)),
	)
}

func renderTabs(current viewselect.ViewMode, width int) string {
	bar := tabBar(current, viewselect.ViewMode.Title, 2)
	if lipgloss.Width(bar) > width {
		bar = tabBar(current, viewselect.ViewMode.String, 1)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}

func tabBar(current viewselect.ViewMode, label func(viewselect.ViewMode) string, pad int) string {
	modes := viewselect.Modes()
	tabs := make([]string, len(modes))
	for i, m := range modes {
		style := Styles.TabInactive
		if m == current {
			style = Styles.TabActive
		}
		tabs[i] = style.Padding(0, pad).Render(fmt.Sprintf("%d %s", i+1, label(m)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderFooter(width int) string {
	lines := scheme.FooterLines()
	rendered := make([]string, len(lines))
	for i, l := range lines {
		rendered[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, Styles.Footer.Render(textutil.Truncate(l, width)))
	}
	return strings.Join(rendered, "\n")
}

func renderOverview(p viewselect.OverviewProjection, width int) string {
	var pair string
	if width >= pairedMinWidth {
		cardWidth := (width - pairGap) / 2
		pair = lipgloss.JoinHorizontal(lipgloss.Top,
			renderTierCard(p.Paired[0], cardWidth),
			strings.Repeat(" ", pairGap),
			renderTierCard(p.Paired[1], cardWidth),
		)
	} else {
		pair = lipgloss.JoinVertical(lipgloss.Left,
			renderTierCard(p.Paired[0], width),
			renderTierCard(p.Paired[1], width),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		pair,
		renderBridging(p, width),
		renderNote(p.Note, width),
	)
}

func renderTierCard(t scheme.AssistanceTier, width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(categoryColor(t.Category))

	var b strings.Builder
	b.WriteString(title.Render(t.Name) + "\n")
	b.WriteString(Styles.Muted.Render(t.Purpose) + "\n\n")
	b.WriteString(Styles.Label.Render("ELIGIBILITY") + "\n")
	for _, cond := range t.Eligibility {
		b.WriteString("• " + cond + "\n")
	}
	b.WriteString("\n" + Styles.Label.Render("QUANTUM") + "\n")
	b.WriteString(Styles.Bold.Render(t.Payment) + "\n\n")
	b.WriteString(Styles.Label.Render("DURATION") + "\n")
	b.WriteString(t.Duration)

	return cardStyle(t.Category, width).Render(b.String())
}

func renderBridging(p viewselect.OverviewProjection, width int) string {
	t := p.Highlighted
	title := lipgloss.NewStyle().Bold(true).Foreground(categoryColor(t.Category))
	heading := title.Render(t.Name) + "\n" + Styles.Muted.Render(p.Subtitle)

	inner := width - 4 // border + padding
	var facts string
	if width >= factsMinWidth && len(p.Facts) > 0 {
		colWidth := inner / len(p.Facts)
		cols := make([]string, len(p.Facts))
		for i, f := range p.Facts {
			cols[i] = lipgloss.NewStyle().Width(colWidth).Render(
				Styles.Label.Render(strings.ToUpper(f.Label)) + "\n" + Styles.Bold.Render(f.Value),
			)
		}
		facts = lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	} else {
		labelWidth := 0
		for _, f := range p.Facts {
			labelWidth = max(labelWidth, textutil.VisualWidth(f.Label))
		}
		lines := make([]string, len(p.Facts))
		for i, f := range p.Facts {
			lines[i] = Styles.Label.Render(textutil.PadRightVisual(f.Label, labelWidth)) + "  " + Styles.Bold.Render(f.Value)
		}
		facts = strings.Join(lines, "\n")
	}

	return cardStyle(t.Category, width).Render(heading + "\n\n" + facts)
}

func renderNote(note string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1).
		Width(max(width-2, 1))
	return style.Render(Styles.Status.Render("ⓘ ") + Styles.Bold.Render("Note:") + " " + note)
}

func renderProcedure(p viewselect.ProcedureProjection, width int) string {
	const railWidth = 4 // badge + gap

	contentWidth := max(width-railWidth, 10)
	blocks := make([]string, 0, len(p.Steps)+1)
	for _, e := range p.Steps {
		body := lipgloss.NewStyle().Width(contentWidth).Render(
			Styles.Label.Render(strings.ToUpper(e.Label)) + "\n" +
				Styles.Bold.Render(textutil.Truncate(e.Step.Title, contentWidth)) + "\n" +
				e.Step.Description + "\n" +
				Styles.Muted.Render("by "+e.Step.Actor),
		)

		rail := Styles.Status.Render("●")
		if !e.Last {
			// connector runs to the next step, including the gap line
			rail += strings.Repeat("\n"+Styles.Muted.Render("│"), lipgloss.Height(body))
		}
		rail = lipgloss.NewStyle().Width(railWidth).Render(rail)

		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, rail, body))
	}
	blocks = append(blocks, renderCallToAction(p.CallToAction, width))

	return strings.Join(blocks, "\n")
}

func renderCallToAction(cta scheme.CallToAction, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		Padding(0, 1).
		MarginTop(1).
		Width(max(width-2, 1))

	prompt := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorSuccess)).Render("✔ " + cta.Prompt)
	action := Styles.Selected.Render("[a]") + " " + Styles.Bold.Render(cta.Label) + " " + Styles.Link.Render(cta.URL)
	return style.Render(prompt + "\n" + action)
}
