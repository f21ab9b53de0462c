package logging

import (
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

const jsonTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// newJSONHandler writes one object per line with short ts/level/msg keys.
// Float attributes that JSON cannot carry (NaN, ±Inf) are written as strings;
// blank string attributes are dropped.
func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   addSource,
		ReplaceAttr: jsonAttr,
	})
}

func jsonAttr(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 {
		switch attr.Key {
		case slog.TimeKey:
			if attr.Value.Kind() != slog.KindTime {
				return attr
			}
			return slog.String("ts", attr.Value.Time().UTC().Format(jsonTimeLayout))
		case slog.LevelKey:
			return slog.String("level", strings.ToLower(attr.Value.String()))
		case slog.MessageKey:
			return slog.Attr{Key: "msg", Value: attr.Value}
		case slog.SourceKey:
			if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
				return slog.String("source", filepath.Base(src.File)+":"+strconv.Itoa(src.Line))
			}
			return attr
		}
	}

	switch attr.Value.Kind() {
	case slog.KindFloat64:
		if v := attr.Value.Float64(); math.IsNaN(v) || math.IsInf(v, 0) {
			return slog.String(attr.Key, strconv.FormatFloat(v, 'g', -1, 64))
		}
	case slog.KindString:
		if strings.TrimSpace(attr.Value.String()) == "" {
			return slog.Attr{}
		}
	}
	return attr
}
