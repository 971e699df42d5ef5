// Package cache holds scenario-scoped storage where parsed DSN values
// and generated fixture data live under caller-chosen keys.
package cache

import (
	"errors"
)

// ErrMissingKey occurs when cache doesn't have any value under given key.
var ErrMissingKey = errors.New("missing key")
