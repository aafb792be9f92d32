package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/employee"
)

// Service covers the HR admin employee roster. Employees are upserted
// by email and never hard-deleted.
type Service struct {
	employee.EmployeeRepository
}

func NewService(employeeRepository employee.EmployeeRepository) *Service {
	return &Service{EmployeeRepository: employeeRepository}
}

func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	return s.EmployeeRepository.List(ctx)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByEmail(ctx, email)
}

// Upsert creates or updates the roster entry for the request's email.
// Emails are stored lowercase so the manager back-reference and login
// matching stay case-insensitive.
func (s *Service) Upsert(ctx context.Context, req employee.UpsertEmployeeRequest) (employee.Employee, error) {
	emp := employee.Employee{
		ID:                uuid.NewString(),
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:          strings.TrimSpace(req.FullName),
		ManagerEmail:      normalizeOptionalEmail(req.ManagerEmail),
		OneDriveFolderURL: req.OneDriveFolderURL,
	}

	saved, err := s.EmployeeRepository.Upsert(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to upsert employee: %w", err)
	}

	return saved, nil
}

func normalizeOptionalEmail(email *string) *string {
	if email == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*email))
	if normalized == "" {
		return nil
	}
	return &normalized
}
