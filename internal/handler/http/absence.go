package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
	"github.com/worktime/timetrack-backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	// Records
	Record(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	// Type catalog
	ListTypes(w http.ResponseWriter, r *http.Request)
	CreateType(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

// Record implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req absence.AbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordAbsence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.absenceService.Create(r.Context(), identity, req)
	if err != nil {
		slog.Info("RecordAbsence service error", "error", err, "user_id", identity.UserID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence recorded successfully", created)
}

// ListMine implements AbsenceHandler.
func (h *AbsenceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	records, err := h.absenceService.ListMine(r.Context(), identity)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Update implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, ok := parseIDParam(w, r, "id", absence.ErrInvalidAbsenceID)
	if !ok {
		return
	}

	var req absence.AbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAbsence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.absenceService.Update(r.Context(), identity, id, req)
	if err != nil {
		slog.Info("UpdateAbsence service error", "error", err, "user_id", identity.UserID, "absence_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence updated successfully", updated)
}

// Delete implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, ok := parseIDParam(w, r, "id", absence.ErrInvalidAbsenceID)
	if !ok {
		return
	}

	if err := h.absenceService.Delete(r.Context(), identity, id); err != nil {
		slog.Info("DeleteAbsence service error", "error", err, "user_id", identity.UserID, "absence_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence deleted successfully", nil)
}

// ListTypes implements AbsenceHandler.
func (h *AbsenceHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.absenceService.ListTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// CreateType implements AbsenceHandler.
func (h *AbsenceHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req absence.AbsenceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAbsenceType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.absenceService.CreateType(r.Context(), req)
	if err != nil {
		slog.Error("CreateAbsenceType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence type created successfully", created)
}

// DeleteType implements AbsenceHandler.
func (h *AbsenceHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", absence.ErrInvalidAbsenceTypeID)
	if !ok {
		return
	}

	if err := h.absenceService.DeleteType(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence type deleted successfully", nil)
}
