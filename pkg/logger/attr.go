package logger

import "log/slog"

// Error records a single error under the key "error"; nil yields an empty
// attribute the handlers skip.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Subdomain records the tenant slug under the key "subdomain".
func Subdomain(slug string) slog.Attr {
	return slog.String("subdomain", slug)
}

// Collection records the store collection under the key "collection".
func Collection(name string) slog.Attr {
	return slog.String("collection", name)
}
