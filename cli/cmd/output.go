package cmd

import (
	"context"
	"encoding/json"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
)

// Format selects how command results are printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// yamlIndent is the indentation width of YAML output.
const yamlIndent = 2

// styles used for text output. Colors are dropped when the destination is
// not a terminal.
type styles struct {
	name, title, label, value lipgloss.Style
	pass, fail, dim           lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return styles{
		name:  fg("6").Bold(true),
		title: r.NewStyle().Bold(true),
		label: fg("8"),
		value: fg("3"),
		pass:  fg("2").Bold(true),
		fail:  fg("1").Bold(true),
		dim:   fg("8"),
	}
}

// write prints v to w in format f. Text output is produced by text.
func (f Format) write(
	ctx context.Context,
	w io.Writer,
	v any,
	text func(styles) string,
) error {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		_, err = w.Write(append(data, '\n'))

		return err

	case FormatYAML:
		data, err := yaml.MarshalContext(ctx, v, yaml.Indent(yamlIndent))
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = w.Write(data)

		return err

	default:
		_, err := io.WriteString(w, text(newStyles(w)))

		return err
	}
}
