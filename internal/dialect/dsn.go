package dialect

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
)

// FromDSN detects the dialect of a connection string and returns the
// database it names. The DSN is only parsed; no connection is opened.
func FromDSN(dsn string) (Dialect, string, error) {
	if dsn == "" {
		return nil, "", fmt.Errorf("%w: empty dsn", ErrUnknownDialect)
	}

	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		if cfg, err := mysql.ParseDSN(dsn); err == nil {
			return MySQL, cfg.DBName, nil
		}
	}

	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, "", fmt.Errorf("%w: dsn is neither mysql nor postgres", ErrUnknownDialect)
	}
	return PostgreSQL, cfg.Database, nil
}
