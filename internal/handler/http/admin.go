package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
	"github.com/worktime/timetrack-backend-go/internal/domain/admin"
	"github.com/worktime/timetrack-backend-go/internal/domain/worklog"
	"github.com/worktime/timetrack-backend-go/internal/handler/http/response"
)

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	ListWorkLogs(w http.ResponseWriter, r *http.Request)
	ListAbsences(w http.ResponseWriter, r *http.Request)
	UpdateWorkLog(w http.ResponseWriter, r *http.Request)
	DeleteWorkLog(w http.ResponseWriter, r *http.Request)
	UpdateAbsence(w http.ResponseWriter, r *http.Request)
	DeleteAbsence(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	adminService admin.AdminService
}

func NewAdminHandler(adminService admin.AdminService) AdminHandler {
	return &AdminHandlerImpl{adminService: adminService}
}

// ListUsers implements AdminHandler.
func (h *AdminHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		response.HandleErrorWithMessage(w, err, "Error loading users")
		return
	}

	response.Success(w, users)
}

// ListWorkLogs implements AdminHandler.
func (h *AdminHandlerImpl) ListWorkLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.adminService.ListWorkLogsFor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleErrorWithMessage(w, err, "Error loading work logs")
		return
	}

	response.Success(w, logs)
}

// ListAbsences implements AdminHandler.
func (h *AdminHandlerImpl) ListAbsences(w http.ResponseWriter, r *http.Request) {
	records, err := h.adminService.ListAbsencesFor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleErrorWithMessage(w, err, "Error loading absences")
		return
	}

	response.Success(w, records)
}

// UpdateWorkLog implements AdminHandler.
func (h *AdminHandlerImpl) UpdateWorkLog(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", worklog.ErrInvalidWorkLogID)
	if !ok {
		return
	}

	var req worklog.WorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AdminUpdateWorkLog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.adminService.UpdateWorkLog(r.Context(), id, req)
	if err != nil {
		response.HandleErrorWithMessage(w, err, "Error updating work log")
		return
	}

	response.SuccessWithMessage(w, "Work log updated successfully", updated)
}

// DeleteWorkLog implements AdminHandler.
func (h *AdminHandlerImpl) DeleteWorkLog(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", worklog.ErrInvalidWorkLogID)
	if !ok {
		return
	}

	if err := h.adminService.DeleteWorkLog(r.Context(), id); err != nil {
		response.HandleErrorWithMessage(w, err, "Error deleting work log")
		return
	}

	response.SuccessWithMessage(w, "Work log deleted successfully", nil)
}

// UpdateAbsence implements AdminHandler.
func (h *AdminHandlerImpl) UpdateAbsence(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", absence.ErrInvalidAbsenceID)
	if !ok {
		return
	}

	var req absence.AbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AdminUpdateAbsence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.adminService.UpdateAbsence(r.Context(), id, req)
	if err != nil {
		response.HandleErrorWithMessage(w, err, "Error updating absence")
		return
	}

	response.SuccessWithMessage(w, "Absence updated successfully", updated)
}

// DeleteAbsence implements AdminHandler.
func (h *AdminHandlerImpl) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", absence.ErrInvalidAbsenceID)
	if !ok {
		return
	}

	if err := h.adminService.DeleteAbsence(r.Context(), id); err != nil {
		response.HandleErrorWithMessage(w, err, "Error deleting absence")
		return
	}

	response.SuccessWithMessage(w, "Absence deleted successfully", nil)
}
