package ui

import (
	"fmt"
	"strings"

	"fasguide/internal/scheme"
	"fasguide/internal/viewselect"
)

// RenderMarkdown returns the projection as a Markdown section headed by its
// tab title.
func RenderMarkdown(p viewselect.Projection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", p.Mode().Title())

	switch p := p.(type) {
	case viewselect.OverviewProjection:
		writeOverviewMarkdown(&b, p)
	case viewselect.ProcedureProjection:
		writeProcedureMarkdown(&b, p)
	default:
		panic(fmt.Sprintf("ui: unhandled projection %T", p))
	}
	return b.String()
}

// MarkdownDocument renders a full page: title, each projection in order, and
// the footer.
func MarkdownDocument(projections ...viewselect.Projection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n_%s_\n\n", scheme.Title, scheme.Subtitle)
	for _, p := range projections {
		b.WriteString(RenderMarkdown(p))
		b.WriteString("\n")
	}
	b.WriteString("---\n\n")
	for _, l := range scheme.FooterLines() {
		b.WriteString(l + "  \n")
	}
	return b.String()
}

func writeOverviewMarkdown(b *strings.Builder, p viewselect.OverviewProjection) {
	for _, t := range p.Paired {
		fmt.Fprintf(b, "### %s\n\n_%s_\n\n", t.Name, t.Purpose)
		b.WriteString("**Eligibility**\n\n")
		for _, cond := range t.Eligibility {
			fmt.Fprintf(b, "- %s\n", cond)
		}
		fmt.Fprintf(b, "\n**Quantum:** %s  \n**Duration:** %s\n\n", t.Payment, t.Duration)
	}

	fmt.Fprintf(b, "### %s\n\n%s\n\n", p.Highlighted.Name, p.Subtitle)
	if len(p.Facts) > 0 {
		labels := make([]string, len(p.Facts))
		values := make([]string, len(p.Facts))
		seps := make([]string, len(p.Facts))
		for i, f := range p.Facts {
			labels[i], values[i], seps[i] = f.Label, f.Value, "---"
		}
		fmt.Fprintf(b, "| %s |\n| %s |\n| %s |\n\n",
			strings.Join(labels, " | "), strings.Join(seps, " | "), strings.Join(values, " | "))
	}
	fmt.Fprintf(b, "> **Note:** %s\n", p.Note)
}

func writeProcedureMarkdown(b *strings.Builder, p viewselect.ProcedureProjection) {
	for _, e := range p.Steps {
		fmt.Fprintf(b, "%d. **%s** (%s)  \n   %s\n", e.Step.Position, e.Step.Title, e.Step.Actor, e.Step.Description)
	}
	cta := p.CallToAction
	fmt.Fprintf(b, "\n**%s** [%s](%s)\n", cta.Prompt, cta.Label, cta.URL)
}
