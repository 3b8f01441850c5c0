package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiCyan   = "\x1b[36m"
)

type consoleHandler struct {
	mu     sync.Mutex
	writer io.Writer
	level  *slog.LevelVar
	attrs  []slog.Attr
	groups []string
	color  bool
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar) slog.Handler {
	color := false
	if file, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}
	return &consoleHandler{writer: w, level: lvl, color: color}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	var buf bytes.Buffer
	buf.Grow(128)
	h.writeDim(&buf, timestamp.Format("15:04:05"))
	buf.WriteByte(' ')
	h.writeLevel(&buf, record.Level)
	buf.WriteByte(' ')
	buf.WriteString(strings.TrimSpace(record.Message))

	prefix := strings.Join(h.groups, ".")
	for _, attr := range h.attrs {
		h.writeAttr(&buf, prefix, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		h.writeAttr(&buf, prefix, attr)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &consoleHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  append(append([]slog.Attr(nil), h.attrs...), attrs...),
		groups: h.groups,
		color:  h.color,
	}
	return next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := &consoleHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  h.attrs,
		groups: append(append([]string(nil), h.groups...), name),
		color:  h.color,
	}
	return next
}

func (h *consoleHandler) writeAttr(buf *bytes.Buffer, prefix string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	buf.WriteByte(' ')
	h.writeDim(buf, key+"=")
	buf.WriteString(fmt.Sprintf("%v", attr.Value.Resolve().Any()))
}

func (h *consoleHandler) writeLevel(buf *bytes.Buffer, level slog.Level) {
	label := strings.ToUpper(level.String())
	if !h.color {
		buf.WriteString(label)
		return
	}
	switch {
	case level >= slog.LevelError:
		buf.WriteString(ansiRed + label + ansiReset)
	case level >= slog.LevelWarn:
		buf.WriteString(ansiYellow + label + ansiReset)
	case level < slog.LevelInfo:
		buf.WriteString(ansiCyan + label + ansiReset)
	default:
		buf.WriteString(label)
	}
}

func (h *consoleHandler) writeDim(buf *bytes.Buffer, text string) {
	if h.color {
		buf.WriteString(ansiDim + text + ansiReset)
		return
	}
	buf.WriteString(text)
}
