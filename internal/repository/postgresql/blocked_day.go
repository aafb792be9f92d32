package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/database"
)

type blockedDayRepositoryImpl struct {
	db *database.DB
}

func NewBlockedDayRepository(db *database.DB) leave.BlockedDayRepository {
	return &blockedDayRepositoryImpl{db: db}
}

func (r *blockedDayRepositoryImpl) List(ctx context.Context) ([]leave.BlockedDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, blocked_date, reason, created_by, created_at
		FROM blocked_days
		ORDER BY blocked_date ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []leave.BlockedDay
	for rows.Next() {
		var d leave.BlockedDay
		if err := rows.Scan(&d.ID, &d.Date, &d.Reason, &d.CreatedBy, &d.CreatedAt); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (r *blockedDayRepositoryImpl) ListInRange(ctx context.Context, start, end time.Time) ([]leave.BlockedDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, blocked_date, reason, created_by, created_at
		FROM blocked_days
		WHERE blocked_date BETWEEN $1 AND $2
		ORDER BY blocked_date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []leave.BlockedDay
	for rows.Next() {
		var d leave.BlockedDay
		if err := rows.Scan(&d.ID, &d.Date, &d.Reason, &d.CreatedBy, &d.CreatedAt); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (r *blockedDayRepositoryImpl) Create(ctx context.Context, day leave.BlockedDay) (leave.BlockedDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO blocked_days (id, blocked_date, reason, created_by, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, blocked_date, reason, created_by, created_at
	`

	var created leave.BlockedDay
	err := q.QueryRow(ctx, query, day.ID, day.Date, day.Reason, day.CreatedBy).Scan(
		&created.ID, &created.Date, &created.Reason, &created.CreatedBy, &created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 unique_violation on blocked_date
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.BlockedDay{}, leave.ErrBlockedDayExists
		}
		return leave.BlockedDay{}, err
	}
	return created, nil
}

func (r *blockedDayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM blocked_days WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrBlockedDayNotFound
	}
	return nil
}
