package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

const unconfirmedMutationsTable = "unconfirmed_mutations"

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
}

// Enabled reports whether a database was configured at all.
func (c Config) Enabled() bool {
	return c.Host != ""
}

func (c Config) dsn() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.DBName, c.Password, c.SSLMode)
}

func NewPostgresDB(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.dsn())
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "ping postgres %s:%s", cfg.Host, cfg.Port)
	}
	return db, nil
}

var schema = fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	id         BIGSERIAL PRIMARY KEY,
	function   TEXT        NOT NULL,
	address    TEXT        NOT NULL,
	product_id TEXT        NOT NULL,
	amount     TEXT        NOT NULL,
	quantity   TEXT        NOT NULL,
	reason     TEXT        NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`, unconfirmedMutationsTable)

// Migrate creates the tables the gateway writes to.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return errors.Wrap(err, "create reconciliation schema")
}
