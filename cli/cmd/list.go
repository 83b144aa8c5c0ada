package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// List prints the registered puzzles.
type List struct {
	Output Format `default:"text" enum:"text,json,yaml" help:"Output format" short:"o"`
}

// Listing describes one registered puzzle in the output of [List].
type Listing struct {
	Day   string `json:"day"   yaml:"day"`
	Title string `json:"title" yaml:"title"`
	Parts int    `json:"parts" yaml:"parts"`
}

type listings []Listing

// Run executes the list command.
func (l *List) Run(ctx context.Context) error {
	days := Days()

	out := make(listings, len(days))
	for i, d := range days {
		out[i] = Listing{Day: d.Name, Title: d.Title, Parts: len(d.Parts)}
	}

	return l.Output.write(ctx, stdout(ctx), out, out.text)
}

func (ls listings) text(st styles) string {
	width := 0
	for _, l := range ls {
		width = max(width, lipgloss.Width(l.Title))
	}

	var b strings.Builder

	for _, l := range ls {
		pad := strings.Repeat(" ", width-lipgloss.Width(l.Title))
		fmt.Fprintf(&b, "%s  %s%s  %s\n",
			st.name.Render(l.Day),
			st.title.Render(l.Title), pad,
			st.dim.Render(fmt.Sprintf("%d parts", l.Parts)),
		)
	}

	return b.String()
}
