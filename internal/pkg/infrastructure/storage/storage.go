package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows      = errors.New("no rows in result set")
	ErrQueryRow    = errors.New("could not execute query")
	ErrStoreFailed = errors.New("could not store data")
	ErrNoID        = errors.New("data contains no id")
	ErrAlreadyRead = errors.New("alert already marked as read")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS vital_measurements (
			measurement_id	TEXT 	NOT NULL,
			patient_id		TEXT 	NOT NULL,
			vital_type		TEXT 	NOT NULL,
			value			DOUBLE PRECISION NOT NULL,
			secondary_value	DOUBLE PRECISION NULL,
			observed_at		timestamp with time zone NOT NULL,
			notes			TEXT	NOT NULL DEFAULT '',
			is_anomaly		BOOLEAN	NOT NULL DEFAULT FALSE,
			confidence		DOUBLE PRECISION NULL,
			tenant			TEXT	NOT NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_vital_measurements_unique PRIMARY KEY (measurement_id)
		);

		CREATE INDEX IF NOT EXISTS idx_vital_measurements_patient_type
			ON vital_measurements (patient_id, vital_type, observed_at DESC);

		CREATE TABLE IF NOT EXISTS vital_alerts (
			alert_id		TEXT 	NOT NULL,
			patient_id		TEXT 	NOT NULL,
			vital_type		TEXT 	NOT NULL,
			message			TEXT	NOT NULL,
			severity		INT		NOT NULL,
			observed_at		timestamp with time zone NOT NULL,
			is_read			BOOLEAN	NOT NULL DEFAULT FALSE,
			action_required	TEXT	NOT NULL DEFAULT '',
			tenant			TEXT	NOT NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_vital_alerts_unique PRIMARY KEY (alert_id)
		);

		CREATE INDEX IF NOT EXISTS idx_vital_alerts_patient
			ON vital_alerts (patient_id, observed_at DESC);
	`)
	if err != nil {
		return err
	}

	return nil
}
