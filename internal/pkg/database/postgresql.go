package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	*pgxpool.Pool
}

func NewPostgreSQLDB(dsn string) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	config.MaxConns = 25
	config.MinConns = 5

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return &DB{Pool: pool}, nil
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Pool.Begin(ctx)
}

type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Bootstrap creates the schema when it does not exist yet, so a fresh
// database is usable without a separate migration step.
func (db *DB) Bootstrap(ctx context.Context) error {
	_, err := db.Exec(ctx, schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	full_name TEXT NOT NULL,
	manager_email TEXT,
	onedrive_folder_url TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS leave_entitlements (
	id TEXT PRIMARY KEY,
	employee_id TEXT NOT NULL REFERENCES employees(id),
	year INTEGER NOT NULL,
	annual_allowance_days DOUBLE PRECISION NOT NULL DEFAULT 28.0,
	carryover_days DOUBLE PRECISION NOT NULL DEFAULT 0.0,
	UNIQUE (employee_id, year)
);

CREATE TABLE IF NOT EXISTS leave_requests (
	id TEXT PRIMARY KEY,
	employee_id TEXT NOT NULL REFERENCES employees(id),
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	start_half_day TEXT NOT NULL DEFAULT 'full',
	end_half_day TEXT NOT NULL DEFAULT 'full',
	days_requested DOUBLE PRECISION NOT NULL,
	reason TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'pending',
	manager_notes TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (status IN ('pending', 'approved', 'declined', 'cancelled'))
);

CREATE TABLE IF NOT EXISTS blocked_days (
	id TEXT PRIMARY KEY,
	blocked_date DATE NOT NULL UNIQUE,
	reason TEXT NOT NULL,
	created_by TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS agent_files (
	id TEXT PRIMARY KEY,
	employee_id TEXT NOT NULL REFERENCES employees(id),
	filename TEXT NOT NULL,
	file_description TEXT NOT NULL DEFAULT '',
	onedrive_file_url TEXT NOT NULL,
	file_size_bytes BIGINT NOT NULL DEFAULT 0,
	file_type TEXT NOT NULL DEFAULT '',
	uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_leave_requests_employee ON leave_requests(employee_id);
CREATE INDEX IF NOT EXISTS idx_leave_requests_status ON leave_requests(status);
CREATE INDEX IF NOT EXISTS idx_employees_manager ON employees(manager_email);
CREATE INDEX IF NOT EXISTS idx_agent_files_employee ON agent_files(employee_id);
`
