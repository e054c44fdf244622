package logger

import (
	"log/slog"
	"strings"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Provider records the email provider under the key "provider".
func Provider(name string) slog.Attr {
	return slog.String("provider", name)
}

// EmailKind records which of the outbound messages a record is about.
func EmailKind(kind string) slog.Attr {
	return slog.String("email_kind", kind)
}

// EmailDomain records only the domain part of an address so logs carry
// enough to debug delivery without storing the visitor's full address.
func EmailDomain(address string) slog.Attr {
	at := strings.LastIndexByte(address, '@')
	if at < 0 || at == len(address)-1 {
		return slog.Attr{}
	}
	return slog.String("email_domain", strings.ToLower(address[at+1:]))
}
