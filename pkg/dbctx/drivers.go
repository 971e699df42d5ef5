package dbctx

import (
	// database/sql drivers matching dsn.DSN DriverName values.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)
