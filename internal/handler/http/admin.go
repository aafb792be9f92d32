package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/employee"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
	"github.com/massimocristi1970/hr-dashboard/internal/handler/http/response"
	employeeservice "github.com/massimocristi1970/hr-dashboard/internal/service/employee"
	leaveservice "github.com/massimocristi1970/hr-dashboard/internal/service/leave"
)

type AdminHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpsertEmployee(w http.ResponseWriter, r *http.Request)
	SetEntitlement(w http.ResponseWriter, r *http.Request)
	EntitlementSummary(w http.ResponseWriter, r *http.Request)
	AllRequests(w http.ResponseWriter, r *http.Request)
	ListBlockedDays(w http.ResponseWriter, r *http.Request)
	AddBlockedDay(w http.ResponseWriter, r *http.Request)
	RemoveBlockedDay(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	employeeService *employeeservice.Service
	leaveService    *leaveservice.Service
}

func NewAdminHandler(employeeService *employeeservice.Service, leaveService *leaveservice.Service) AdminHandler {
	return &AdminHandlerImpl{
		employeeService: employeeService,
		leaveService:    leaveService,
	}
}

// ListEmployees implements AdminHandler.
func (a *AdminHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := a.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.NewEmployeeResponses(employees))
}

// UpsertEmployee implements AdminHandler.
func (a *AdminHandlerImpl) UpsertEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpsertEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	saved, err := a.employeeService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee saved", employee.NewEmployeeResponse(saved))
}

// SetEntitlement implements AdminHandler.
func (a *AdminHandlerImpl) SetEntitlement(w http.ResponseWriter, r *http.Request) {
	var req leave.SetEntitlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	saved, err := a.leaveService.SetEntitlement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entitlement saved", leave.NewLeaveEntitlementResponse(saved))
}

// EntitlementSummary implements AdminHandler. An absent or zero year
// parameter means the current year.
func (a *AdminHandlerImpl) EntitlementSummary(w http.ResponseWriter, r *http.Request) {
	var year int
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "year must be a positive integer", nil)
			return
		}
		year = parsed
	}

	summaries, err := a.leaveService.EntitlementSummary(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]leave.EntitlementSummaryResponse, len(summaries))
	for i, s := range summaries {
		items[i] = leave.NewEntitlementSummaryResponse(s)
	}
	response.Success(w, items)
}

// AllRequests implements AdminHandler.
func (a *AdminHandlerImpl) AllRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := a.leaveService.AllRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.NewRequestWithEmployeeResponses(requests))
}

// ListBlockedDays implements AdminHandler.
func (a *AdminHandlerImpl) ListBlockedDays(w http.ResponseWriter, r *http.Request) {
	days, err := a.leaveService.BlockedDays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.NewBlockedDayResponses(days))
}

// AddBlockedDay implements AdminHandler.
func (a *AdminHandlerImpl) AddBlockedDay(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	var req leave.AddBlockedDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := a.leaveService.AddBlockedDay(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Blocked day added", leave.NewBlockedDayResponse(created))
}

// RemoveBlockedDay implements AdminHandler.
func (a *AdminHandlerImpl) RemoveBlockedDay(w http.ResponseWriter, r *http.Request) {
	if err := a.leaveService.RemoveBlockedDay(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Blocked day removed", nil)
}
