package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// Upsert creates the employee or, when the email already exists,
	// updates the mutable fields in place.
	Upsert(ctx context.Context, emp Employee) (Employee, error)
}
