package dbctx

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pawelWritesCode/dsnutils/pkg/dsn"
	"github.com/pawelWritesCode/dsnutils/pkg/osutils"
)

// Tests below run only when test harness exposes live databases through DSN environment variables.

func TestSQLCheckerAgainstLivePostgres(t *testing.T) {
	raw := os.Getenv(osutils.EnvPostgresDSN)
	if raw == "" {
		t.Skipf("%s is not set, skipping live connectivity check", osutils.EnvPostgresDSN)
	}

	d, err := dsn.Parse(raw, dsn.BackendPostgres)
	require.NoError(t, err, "harness provided malformed %s", osutils.EnvPostgresDSN)

	require.NoError(t, NewSQLChecker().Check(context.Background(), d))
}

func TestSQLCheckerAgainstLiveMySQL(t *testing.T) {
	raw := os.Getenv(osutils.EnvMySQLDSN)
	if raw == "" {
		t.Skipf("%s is not set, skipping live connectivity check", osutils.EnvMySQLDSN)
	}

	d, err := dsn.Parse(raw, dsn.BackendMySQL)
	require.NoError(t, err, "harness provided malformed %s", osutils.EnvMySQLDSN)

	require.NoError(t, NewSQLChecker().Check(context.Background(), d))
}
