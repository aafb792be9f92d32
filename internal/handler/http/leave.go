package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
	"github.com/massimocristi1970/hr-dashboard/internal/handler/http/middleware"
	"github.com/massimocristi1970/hr-dashboard/internal/handler/http/response"
	leaveservice "github.com/massimocristi1970/hr-dashboard/internal/service/leave"
)

type LeaveHandler interface {
	MyRequests(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Warnings(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Decline(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService *leaveservice.Service
}

func NewLeaveHandler(leaveService *leaveservice.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

func actorOrFail(w http.ResponseWriter, r *http.Request) (auth.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrUnauthorized)
	}
	return actor, ok
}

// MyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	requests, err := l.leaveService.MyRequests(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveRequestResponses(requests))
}

// Submit implements LeaveHandler.
func (l *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	var req leave.SubmitLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := l.leaveService.Submit(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", leave.NewLeaveRequestResponse(created))
}

// Pending implements LeaveHandler.
func (l *LeaveHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	queue, err := l.leaveService.PendingForManager(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]leave.PendingRequestResponse, len(queue))
	for i, p := range queue {
		items[i] = leave.NewPendingRequestResponse(p)
	}
	response.Success(w, items)
}

// Warnings implements LeaveHandler.
func (l *LeaveHandlerImpl) Warnings(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	warnings, err := l.leaveService.RequestWarnings(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"conflicts":    leave.NewRequestWithEmployeeResponses(warnings.Conflicts),
		"blocked_days": leave.NewBlockedDayResponses(warnings.BlockedDays),
	})
}

// Approve implements LeaveHandler.
func (l *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	var req leave.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	approved, err := l.leaveService.Approve(r.Context(), actor, chi.URLParam(r, "id"), req.Notes, req.AdminOverride)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", leave.NewLeaveRequestResponse(approved))
}

// Decline implements LeaveHandler.
func (l *LeaveHandlerImpl) Decline(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	var req leave.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	declined, err := l.leaveService.Decline(r.Context(), actor, chi.URLParam(r, "id"), req.Notes)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request declined", leave.NewLeaveRequestResponse(declined))
}

// Cancel implements LeaveHandler.
func (l *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	cancelled, err := l.leaveService.Cancel(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", leave.NewLeaveRequestResponse(cancelled))
}
