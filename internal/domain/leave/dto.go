package leave

import (
	"time"

	"github.com/massimocristi1970/hr-dashboard/internal/pkg/validator"
)

var halfDayValues = []string{string(HalfDayFull), string(HalfDayMorning), string(HalfDayAfternoon)}

type SubmitLeaveRequestRequest struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	StartHalfDay string `json:"start_half_day,omitempty"`
	EndHalfDay   string `json:"end_half_day,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

func (r *SubmitLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	// Missing half-day flags mean full days. The core never sees an
	// empty flag.
	if r.StartHalfDay == "" {
		r.StartHalfDay = string(HalfDayFull)
	}
	if r.EndHalfDay == "" {
		r.EndHalfDay = string(HalfDayFull)
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a date in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a date in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if !validator.IsInSlice(r.StartHalfDay, halfDayValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_half_day",
			Message: "start_half_day must be one of full, am, pm",
		})
	}

	if !validator.IsInSlice(r.EndHalfDay, halfDayValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_half_day",
			Message: "end_half_day must be one of full, am, pm",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed range. Only valid after Validate.
func (r *SubmitLeaveRequestRequest) Dates() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}

type DecisionRequest struct {
	Notes         string `json:"notes,omitempty"`
	AdminOverride bool   `json:"admin_override,omitempty"`
}

type SetEntitlementRequest struct {
	EmployeeID          string  `json:"employee_id"`
	Year                int     `json:"year"`
	AnnualAllowanceDays float64 `json:"annual_allowance_days"`
	CarryoverDays       float64 `json:"carryover_days"`
}

func (r *SetEntitlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}

	if r.AnnualAllowanceDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_allowance_days",
			Message: "annual_allowance_days must be positive",
		})
	}

	if r.CarryoverDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "carryover_days",
			Message: "carryover_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddBlockedDayRequest struct {
	BlockedDate string `json:"blocked_date"`
	Reason      string `json:"reason"`
}

func (r *AddBlockedDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.BlockedDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "blocked_date",
			Message: "blocked_date must be a date in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Date returns the parsed blocked date. Only valid after Validate.
func (r *AddBlockedDayRequest) Date() time.Time {
	d, _ := validator.IsValidDate(r.BlockedDate)
	return d
}

// Response DTOs. Dates go over the wire as YYYY-MM-DD strings; the
// field names are contract with the frontend.

type LeaveRequestResponse struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	StartHalfDay  string    `json:"start_half_day"`
	EndHalfDay    string    `json:"end_half_day"`
	DaysRequested float64   `json:"days_requested"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	ManagerNotes  string    `json:"manager_notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewLeaveRequestResponse(lr LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:            lr.ID,
		EmployeeID:    lr.EmployeeID,
		StartDate:     lr.StartDate.Format("2006-01-02"),
		EndDate:       lr.EndDate.Format("2006-01-02"),
		StartHalfDay:  string(lr.StartHalfDay),
		EndHalfDay:    string(lr.EndHalfDay),
		DaysRequested: lr.DaysRequested,
		Reason:        lr.Reason,
		Status:        string(lr.Status),
		ManagerNotes:  lr.ManagerNotes,
		CreatedAt:     lr.CreatedAt,
		UpdatedAt:     lr.UpdatedAt,
	}
}

func NewLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, len(requests))
	for i, lr := range requests {
		out[i] = NewLeaveRequestResponse(lr)
	}
	return out
}

type RequestWithEmployeeResponse struct {
	LeaveRequestResponse
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

func NewRequestWithEmployeeResponse(r RequestWithEmployee) RequestWithEmployeeResponse {
	return RequestWithEmployeeResponse{
		LeaveRequestResponse: NewLeaveRequestResponse(r.LeaveRequest),
		Email:                r.Email,
		FullName:             r.FullName,
	}
}

func NewRequestWithEmployeeResponses(requests []RequestWithEmployee) []RequestWithEmployeeResponse {
	out := make([]RequestWithEmployeeResponse, len(requests))
	for i, r := range requests {
		out[i] = NewRequestWithEmployeeResponse(r)
	}
	return out
}

type BlockedDayResponse struct {
	ID          string `json:"id"`
	BlockedDate string `json:"blocked_date"`
	Reason      string `json:"reason"`
	CreatedBy   string `json:"created_by,omitempty"`
}

func NewBlockedDayResponse(d BlockedDay) BlockedDayResponse {
	return BlockedDayResponse{
		ID:          d.ID,
		BlockedDate: d.Date.Format("2006-01-02"),
		Reason:      d.Reason,
		CreatedBy:   d.CreatedBy,
	}
}

func NewBlockedDayResponses(days []BlockedDay) []BlockedDayResponse {
	out := make([]BlockedDayResponse, len(days))
	for i, d := range days {
		out[i] = NewBlockedDayResponse(d)
	}
	return out
}

type PendingRequestResponse struct {
	RequestWithEmployeeResponse
	Conflicts   []RequestWithEmployeeResponse `json:"conflicts"`
	BlockedDays []BlockedDayResponse          `json:"blocked_days"`
}

func NewPendingRequestResponse(p PendingRequest) PendingRequestResponse {
	return PendingRequestResponse{
		RequestWithEmployeeResponse: NewRequestWithEmployeeResponse(p.RequestWithEmployee),
		Conflicts:                   NewRequestWithEmployeeResponses(p.Conflicts),
		BlockedDays:                 NewBlockedDayResponses(p.BlockedDays),
	}
}

type LeaveEntitlementResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	Year                int     `json:"year"`
	AnnualAllowanceDays float64 `json:"annual_allowance_days"`
	CarryoverDays       float64 `json:"carryover_days"`
}

func NewLeaveEntitlementResponse(e LeaveEntitlement) LeaveEntitlementResponse {
	return LeaveEntitlementResponse(e)
}

type EntitlementSummaryResponse struct {
	EmployeeID          string  `json:"employee_id"`
	Email               string  `json:"email"`
	FullName            string  `json:"full_name"`
	Year                int     `json:"year"`
	EntitlementSet      bool    `json:"entitlement_set"`
	AnnualAllowanceDays float64 `json:"annual_allowance_days"`
	CarryoverDays       float64 `json:"carryover_days"`
	TotalAllowance      float64 `json:"total_allowance"`
	TakenDays           float64 `json:"taken_days"`
	RemainingDays       float64 `json:"remaining_days"`
}

func NewEntitlementSummaryResponse(s EntitlementSummary) EntitlementSummaryResponse {
	return EntitlementSummaryResponse(s)
}
