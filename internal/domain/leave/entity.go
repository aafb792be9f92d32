package leave

import "time"

// LeaveRequestStatus values are wire contract; the frontend and
// reports match on these exact strings.
type LeaveRequestStatus string

const (
	LeaveRequestStatusPending   LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved  LeaveRequestStatus = "approved"
	LeaveRequestStatusDeclined  LeaveRequestStatus = "declined"
	LeaveRequestStatusCancelled LeaveRequestStatus = "cancelled"
)

// HalfDay marks one boundary of a leave range as a half day.
type HalfDay string

const (
	HalfDayFull      HalfDay = "full"
	HalfDayMorning   HalfDay = "am"
	HalfDayAfternoon HalfDay = "pm"
)

// LeaveRequest is the central mutable entity. DaysRequested is always
// recomputed from the dates and half-day flags at submission time,
// never trusted from client input.
type LeaveRequest struct {
	ID            string
	EmployeeID    string
	StartDate     time.Time
	EndDate       time.Time
	StartHalfDay  HalfDay
	EndHalfDay    HalfDay
	DaysRequested float64
	Reason        string
	Status        LeaveRequestStatus
	ManagerNotes  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RequestWithEmployee joins the owning employee's identity onto a
// request, for manager and admin views.
type RequestWithEmployee struct {
	LeaveRequest
	Email        string
	FullName     string
	ManagerEmail *string
}

// LeaveEntitlement holds one (employee, year) allowance row. An absent
// row means an implicit zero allowance for that year.
type LeaveEntitlement struct {
	ID                  string
	EmployeeID          string
	Year                int
	AnnualAllowanceDays float64
	CarryoverDays       float64
}

// BlockedDay is a single calendar date marked unavailable for approved
// leave. Unique per date.
type BlockedDay struct {
	ID        string
	Date      time.Time
	Reason    string
	CreatedBy string
	CreatedAt time.Time
}

// PendingRequest is a manager-queue item annotated with freshly
// computed warnings.
type PendingRequest struct {
	RequestWithEmployee
	Conflicts   []RequestWithEmployee
	BlockedDays []BlockedDay
}

// EntitlementSummary is the aggregator output for one employee and
// year. Remaining may be negative; over-allocation is reported, not
// prevented.
type EntitlementSummary struct {
	EmployeeID          string
	Email               string
	FullName            string
	Year                int
	EntitlementSet      bool
	AnnualAllowanceDays float64
	CarryoverDays       float64
	TotalAllowance      float64
	TakenDays           float64
	RemainingDays       float64
}
