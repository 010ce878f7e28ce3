package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/smartgym/backend/internal/services"
)

type createRegistrationRequest struct {
	MemberID   uint `json:"member_id"`
	ScheduleID uint `json:"schedule_id"`
}

func (a *API) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	var req createRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.MemberID == 0 || req.ScheduleID == 0 {
		writeError(w, http.StatusUnprocessableEntity, "member_id and schedule_id are required")
		return
	}

	reg, err := svc.RegisterForClass(a.DB, req.MemberID, req.ScheduleID)
	switch {
	case errors.Is(err, svc.ErrMemberNotFound):
		writeError(w, http.StatusNotFound, "Member not found")
		return
	case errors.Is(err, svc.ErrScheduleNotFound):
		writeError(w, http.StatusNotFound, "Schedule not found")
		return
	case errors.Is(err, svc.ErrDuplicateRegistration):
		writeError(w, http.StatusBadRequest, "Already registered for this class")
		return
	case errors.Is(err, svc.ErrClassFull):
		writeError(w, http.StatusBadRequest, "Class is full")
		return
	case err != nil:
		a.Log.Error("create registration", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	a.Log.Info("registration created",
		zap.Uint("member_id", req.MemberID),
		zap.Uint("schedule_id", req.ScheduleID),
		zap.String("code", reg.Code))
	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Successfully registered",
		"registration": reg,
	})
}

func (a *API) CancelRegistration(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "registrationID")
	if !ok {
		return
	}
	reg, err := svc.CancelRegistration(a.DB, id)
	switch {
	case errors.Is(err, svc.ErrRegistrationNotFound):
		writeError(w, http.StatusNotFound, "Registration not found")
		return
	case err != nil:
		a.Log.Error("cancel registration", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Registration cancelled",
		"registration": reg,
	})
}
