// Package dbctx holds utilities for confirming reachability of SQL databases described by DSN values.
package dbctx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pawelWritesCode/dsnutils/pkg/dsn"
)

// ErrConnectivity tells that backend behind valid DSN could not be reached.
var ErrConnectivity = errors.New("backend unreachable")

// DefaultCheckTimeout bounds single connectivity check when provided context carries no deadline.
const DefaultCheckTimeout = 5 * time.Second

// Checker describes ability to confirm that database behind DSN is reachable.
type Checker interface {
	// Check attempts to open and immediately release connection to database behind d.
	Check(ctx context.Context, d dsn.DSN) error
}

// OpenFunc matches signature of sql.Open.
type OpenFunc func(driverName, dataSourceName string) (*sql.DB, error)

// SQLChecker is entity that has ability to open and immediately release database connection.
// It does not retry and does not hold the connection beyond single check.
type SQLChecker struct {
	open OpenFunc

	// timeout bounds check when caller's context has no deadline.
	timeout time.Duration
}

// NewSQLChecker returns *SQLChecker backed by database/sql with default check timeout.
func NewSQLChecker() *SQLChecker {
	return NewCustomSQLChecker(sql.Open, DefaultCheckTimeout)
}

// NewCustomSQLChecker returns *SQLChecker with provided opener and timeout.
func NewCustomSQLChecker(open OpenFunc, timeout time.Duration) *SQLChecker {
	return &SQLChecker{open: open, timeout: timeout}
}

// Check opens connection to database behind d, pings it and closes it right away.
// Any failure wraps ErrConnectivity - DSN validity is caller's concern, handled during Parse.
func (c *SQLChecker) Check(ctx context.Context, d dsn.DSN) error {
	db, err := c.open(d.DriverName(), d.DriverSource())
	if err != nil {
		return fmt.Errorf("%w: %s", ErrConnectivity, err.Error())
	}

	defer db.Close()

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %s at %s:%d, err: %s", ErrConnectivity, d.Backend, d.Host, d.Port, err.Error())
	}

	return nil
}
