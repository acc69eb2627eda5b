// Package storage provides the durable key/value media behind profile.Store.
package storage

import (
	"context"
	"io"
	"strings"

	"lg/fitcalc-api/internal/profile"
)

// Backend is a profile.Store that owns a connection and must be closed.
type Backend interface {
	profile.Store
	io.Closer
}

var (
	_ Backend = (*SQLite)(nil)
	_ Backend = (*Postgres)(nil)
)

// Open picks a backend from the URL: postgres:// and postgresql:// connect to
// Postgres, anything else is treated as a SQLite file path.
func Open(ctx context.Context, url string) (Backend, error) {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return NewPostgres(ctx, url)
	}
	return NewSQLite(ctx, url)
}
