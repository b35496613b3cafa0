package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/worktime/timetrack-backend-go/internal/domain/worklog"
	"github.com/worktime/timetrack-backend-go/internal/handler/http/response"
)

type WorkLogHandler interface {
	ListMine(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type WorkLogHandlerImpl struct {
	workLogService worklog.WorkLogService
}

func NewWorkLogHandler(workLogService worklog.WorkLogService) WorkLogHandler {
	return &WorkLogHandlerImpl{workLogService: workLogService}
}

// ListMine implements WorkLogHandler.
func (h *WorkLogHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	logs, err := h.workLogService.ListMine(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

// Create implements WorkLogHandler.
func (h *WorkLogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req worklog.WorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateWorkLog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.workLogService.Create(r.Context(), identity, req)
	if err != nil {
		slog.Error("CreateWorkLog service error", "error", err, "user_id", identity.UserID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work log created successfully", created)
}

// Update implements WorkLogHandler.
func (h *WorkLogHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, ok := parseIDParam(w, r, "id", worklog.ErrInvalidWorkLogID)
	if !ok {
		return
	}

	var req worklog.WorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateWorkLog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.workLogService.Update(r.Context(), identity, id, req)
	if err != nil {
		slog.Info("UpdateWorkLog service error", "error", err, "user_id", identity.UserID, "work_log_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work log updated successfully", updated)
}

// Delete implements WorkLogHandler.
func (h *WorkLogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, ok := parseIDParam(w, r, "id", worklog.ErrInvalidWorkLogID)
	if !ok {
		return
	}

	if err := h.workLogService.Delete(r.Context(), identity, id); err != nil {
		slog.Info("DeleteWorkLog service error", "error", err, "user_id", identity.UserID, "work_log_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work log deleted successfully", nil)
}
