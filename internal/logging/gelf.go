package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Graylog2/go-gelf/gelf"
)

// Syslog severity values used by the GELF level field.
const (
	gelfLevelError   = 3
	gelfLevelWarning = 4
	gelfLevelInfo    = 6
	gelfLevelDebug   = 7
)

// GELFHandler ships slog records to a Graylog server. Record attributes
// become GELF additional fields, prefixed with an underscore per the spec.
type GELFHandler struct {
	writer *gelf.Writer
	level  slog.Level
	host   string
	prefix string
	attrs  map[string]any
}

// NewGELFHandler creates a handler writing to the given GELF writer.
func NewGELFHandler(writer *gelf.Writer, level slog.Level) *GELFHandler {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return &GELFHandler{
		writer: writer,
		level:  level,
		host:   host,
		attrs:  map[string]any{},
	}
}

// Enabled reports whether the handler accepts records at the given level.
func (h *GELFHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle converts the record to a GELF message and writes it.
func (h *GELFHandler) Handle(_ context.Context, r slog.Record) error {
	extra := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for k, v := range h.attrs {
		extra[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		extra["_"+h.prefix+a.Key] = a.Value.String()
		return true
	})

	msg := &gelf.Message{
		Version:  "1.1",
		Host:     h.host,
		Short:    r.Message,
		TimeUnix: float64(r.Time.UnixNano()) / 1e9,
		Level:    gelfLevel(r.Level),
		Extra:    extra,
	}
	return h.writer.WriteMessage(msg)
}

// WithAttrs returns a handler that includes the given attributes in every
// message.
func (h *GELFHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, a := range attrs {
		next.attrs["_"+next.prefix+a.Key] = a.Value.String()
	}
	return next
}

// WithGroup returns a handler that prefixes attribute keys with the group
// name.
func (h *GELFHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = fmt.Sprintf("%s%s_", next.prefix, name)
	return next
}

func (h *GELFHandler) clone() *GELFHandler {
	attrs := make(map[string]any, len(h.attrs))
	for k, v := range h.attrs {
		attrs[k] = v
	}
	return &GELFHandler{
		writer: h.writer,
		level:  h.level,
		host:   h.host,
		prefix: h.prefix,
		attrs:  attrs,
	}
}

func gelfLevel(level slog.Level) int32 {
	switch {
	case level >= slog.LevelError:
		return gelfLevelError
	case level >= slog.LevelWarn:
		return gelfLevelWarning
	case level >= slog.LevelInfo:
		return gelfLevelInfo
	default:
		return gelfLevelDebug
	}
}
