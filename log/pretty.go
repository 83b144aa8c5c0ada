package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by prettyTextHandler. Styles come from a
// renderer bound to the handler's writer, so color is dropped automatically
// when that writer is not a terminal.
type palette struct {
	key, str, num, other, msg lipgloss.Style
	yes, no                   lipgloss.Style
	trace, debug, info, warn  lipgloss.Style
	err                       lipgloss.Style
}

func newPalette(w io.Writer) *palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &palette{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		other: fg("5"),
		msg:   r.NewStyle().Bold(true),
		yes:   fg("2"),
		no:    fg("1"),
		trace: fg("8"),
		debug: fg("4"),
		info:  fg("2"),
		warn:  fg("3"),
		err:   fg("1").Bold(true),
	}
}

func (p *palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyTextHandler writes one colorized key=value line per record.
type prettyTextHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	style  *palette
	attrs  []byte // pre-rendered attributes from WithAttrs
	prefix string // group prefix from WithGroup
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts:  *opts,
		mu:    &sync.Mutex{},
		w:     w,
		style: newPalette(w),
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		if a := h.builtin(slog.Time(slog.TimeKey, r.Time)); a.Key != "" {
			buf.WriteString(h.style.key.Render(a.Value.String()))
		}
	}

	lvl := h.builtin(slog.Any(slog.LevelKey, r.Level))
	h.space(buf)
	buf.WriteString(h.style.level(r.Level).Render(fmt.Sprintf("%-5s", lvl.Value.String())))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.space(buf)
			buf.WriteString(h.style.key.Render(src.File + ":" + strconv.Itoa(src.Line)))
		}
	}

	h.space(buf)
	buf.WriteString(h.style.msg.Render(r.Message))

	buf.Write(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := bytes.NewBuffer(bytes.Clone(h.attrs))
	for _, a := range attrs {
		h.writeAttr(buf, h.prefix, a)
	}

	c := *h
	c.attrs = buf.Bytes()

	return &c
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyTextHandler) builtin(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr != nil {
		return h.opts.ReplaceAttr(nil, a)
	}

	return a
}

func (*prettyTextHandler) space(buf *bytes.Buffer) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}
}

// writeAttr renders a as key=value. Groups are flattened into dotted keys.
func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, g := range a.Value.Group() {
			h.writeAttr(buf, prefix, g)
		}

		return
	}

	buf.WriteByte(' ')
	buf.WriteString(h.style.key.Render(prefix + a.Key + "="))
	buf.WriteString(h.value(a.Value))
}

func (h *prettyTextHandler) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return h.style.str.Render(v.String())

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return h.style.num.Render(v.String())

	case slog.KindBool:
		if v.Bool() {
			return h.style.yes.Render("true")
		}

		return h.style.no.Render("false")

	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return h.style.no.Render(err.Error())
		}

		return h.style.str.Render(fmt.Sprint(v.Any()))

	default:
		return h.style.other.Render(v.String())
	}
}

// indentWriter re-indents each JSON record written to it.
type indentWriter struct {
	w io.Writer
}

func (iw *indentWriter) Write(p []byte) (int, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, p, "", "  "); err != nil {
		return iw.w.Write(p)
	}

	if _, err := iw.w.Write(buf.Bytes()); err != nil {
		return 0, err
	}

	return len(p), nil
}
