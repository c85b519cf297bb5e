package logger

import (
	"log/slog"
	"time"
)

// Helpers for the attribute keys shared across the service. Helpers taking a
// string or error return the zero Attr for empty input, and slog drops those.

func optional(key, value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String(key, value)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

func Component(name string) slog.Attr { return slog.String("component", name) }
func Event(name string) slog.Attr     { return slog.String("event", name) }

// Result is "success" or "failure".
func Result(result string) slog.Attr { return slog.String("result", result) }

func Count(key string, n int) slog.Attr { return slog.Int(key, n) }
func Version(v string) slog.Attr        { return slog.String("version", v) }

// HTTP request attributes.

func RequestID(id string) slog.Attr      { return optional("request_id", id) }
func ClientIP(ip string) slog.Attr       { return optional("client_ip", ip) }
func Method(method string) slog.Attr     { return slog.String("method", method) }
func Path(path string) slog.Attr         { return slog.String("path", path) }
func StatusCode(code int) slog.Attr      { return slog.Int("status_code", code) }
func BytesOut(n int64) slog.Attr         { return slog.Int64("bytes_out", n) }
func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }
