package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type DB struct {
	Host            string        `yaml:"host" envconfig:"DB_HOST" default:"localhost"`
	Port            string        `yaml:"port" envconfig:"DB_PORT" default:"5432"`
	Username        string        `yaml:"user" envconfig:"DB_USER" default:"postgres"`
	Password        string        `yaml:"password" envconfig:"DB_PASSWORD"`
	NameDB          string        `yaml:"dbname" envconfig:"DB_NAME" default:"books"`
	SSLMode         string        `yaml:"sslmode" envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenConns    int           `yaml:"maxOpenConns" envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime" envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

func (cfg *DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.NameDB,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

// NewPostgresDB connects through the pgx stdlib driver and applies the
// embedded goose migrations found at the root of migrations.
func NewPostgresDB(ctx context.Context, cfg *DB, migrations fs.FS) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return nil, errors.Wrapf(err, "connect %s", net.JoinHostPort(cfg.Host, cfg.Port))
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if migrations != nil {
		if err := migrate(db, migrations); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

func migrate(db *sqlx.DB, migrations fs.FS) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db.DB, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
