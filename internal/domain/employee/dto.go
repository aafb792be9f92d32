package employee

import (
	"time"

	"github.com/massimocristi1970/hr-dashboard/internal/pkg/validator"
)

type UpsertEmployeeRequest struct {
	Email             string  `json:"email"`
	FullName          string  `json:"full_name"`
	ManagerEmail      *string `json:"manager_email,omitempty"`
	OneDriveFolderURL *string `json:"onedrive_folder_url,omitempty"`
}

func (r *UpsertEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if r.ManagerEmail != nil && !validator.IsEmpty(*r.ManagerEmail) && !validator.IsValidEmail(*r.ManagerEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "manager_email",
			Message: "manager_email must be a valid email address",
		})
	}

	if r.OneDriveFolderURL != nil && !validator.IsEmpty(*r.OneDriveFolderURL) && !validator.IsValidURL(*r.OneDriveFolderURL) {
		errs = append(errs, validator.ValidationError{
			Field:   "onedrive_folder_url",
			Message: "onedrive_folder_url must be a valid URL",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	FullName          string    `json:"full_name"`
	ManagerEmail      *string   `json:"manager_email,omitempty"`
	OneDriveFolderURL *string   `json:"onedrive_folder_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                e.ID,
		Email:             e.Email,
		FullName:          e.FullName,
		ManagerEmail:      e.ManagerEmail,
		OneDriveFolderURL: e.OneDriveFolderURL,
		CreatedAt:         e.CreatedAt,
	}
}

func NewEmployeeResponses(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		out[i] = NewEmployeeResponse(e)
	}
	return out
}
