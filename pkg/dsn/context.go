package dsn

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// ctxKeyDisableValidation is context key under which validation bypass flag lives.
type ctxKeyDisableValidation struct{}

// WithValidationDisabled returns copy of ctx under which ParseContext skips validation.
// Useful when harness needs to inspect components of connection string known to be malformed.
// It affects only parsing, never serialization or connectivity checks.
func WithValidationDisabled(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKeyDisableValidation{}, true)
}

// ValidationDisabled tells whether validation bypass is active in ctx.
func ValidationDisabled(ctx context.Context) bool {
	disabled, ok := ctx.Value(ctxKeyDisableValidation{}).(bool)

	return ok && disabled
}

// ParseContext works as Parse, unless validation is disabled in ctx.
// With validation disabled it decomposes raw connection string on best effort basis
// and never returns error - obtained DSN may be incomplete.
func ParseContext(ctx context.Context, raw string, backend Backend) (DSN, error) {
	if !ValidationDisabled(ctx) {
		return Parse(raw, backend)
	}

	d := DSN{Backend: backend}

	u, err := url.Parse(raw)
	if err != nil {
		return d, nil
	}

	d.Scheme = u.Scheme
	d.User = u.User.Username()
	d.Password, _ = u.User.Password()
	d.Host = u.Hostname()
	d.Database = strings.TrimPrefix(u.Path, "/")
	d.RawQuery = u.RawQuery

	if port, convErr := strconv.Atoi(u.Port()); convErr == nil {
		d.Port = port
	}

	return d, nil
}
