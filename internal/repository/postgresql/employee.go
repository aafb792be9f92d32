package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/employee"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, email, full_name, manager_email, onedrive_folder_url, created_at`

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.Email,
		&emp.FullName,
		&emp.ManagerEmail,
		&emp.OneDriveFolderURL,
		&emp.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE LOWER(email) = LOWER($1)
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, email).Scan(
		&emp.ID,
		&emp.Email,
		&emp.FullName,
		&emp.ManagerEmail,
		&emp.OneDriveFolderURL,
		&emp.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.Email,
			&emp.FullName,
			&emp.ManagerEmail,
			&emp.OneDriveFolderURL,
			&emp.CreatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Upsert inserts the employee or, when the email is already on the
// roster, updates the mutable fields while keeping the original id.
func (r *employeeRepositoryImpl) Upsert(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, email, full_name, manager_email, onedrive_folder_url, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (email) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			manager_email = EXCLUDED.manager_email,
			onedrive_folder_url = EXCLUDED.onedrive_folder_url
		RETURNING ` + employeeColumns + `
	`

	var saved employee.Employee
	err := q.QueryRow(ctx, query,
		emp.ID, emp.Email, emp.FullName, emp.ManagerEmail, emp.OneDriveFolderURL,
	).Scan(
		&saved.ID,
		&saved.Email,
		&saved.FullName,
		&saved.ManagerEmail,
		&saved.OneDriveFolderURL,
		&saved.CreatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return saved, nil
}
