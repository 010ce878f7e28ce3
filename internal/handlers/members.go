package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smartgym/backend/internal/models"
	svc "github.com/smartgym/backend/internal/services"
)

func (a *API) ListMembers(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", 100)

	var members []models.Member
	if err := a.DB.Offset(skip).Limit(limit).Order("member_id").Find(&members).Error; err != nil {
		a.Log.Error("list members", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (a *API) GetMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "memberID")
	if !ok {
		return
	}
	var member models.Member
	if err := a.DB.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Member not found")
			return
		}
		a.Log.Error("get member", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, member)
}

type createMemberRequest struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	MembershipLevel   string `json:"membership_level"`
	PreferredDays     string `json:"preferred_days"`
	PreferredTimeSlot string `json:"preferred_time_slot"`
}

func (a *API) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.MembershipLevel == "" {
		writeError(w, http.StatusUnprocessableEntity, "first_name, last_name and membership_level are required")
		return
	}
	email, ok := svc.NormEmail(req.Email)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "invalid email address")
		return
	}

	var existing int64
	if err := a.DB.Model(&models.Member{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		a.Log.Error("create member", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	if existing > 0 {
		writeError(w, http.StatusBadRequest, "Email already registered")
		return
	}

	member := models.Member{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             email,
		Phone:             req.Phone,
		MembershipLevel:   req.MembershipLevel,
		JoinDate:          time.Now(),
		MembershipStatus:  models.MembershipActive,
		PreferredDays:     req.PreferredDays,
		PreferredTimeSlot: req.PreferredTimeSlot,
	}
	if err := a.DB.Create(&member).Error; err != nil {
		a.Log.Error("create member", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	a.Log.Info("member created", zap.Uint("member_id", member.MemberID))
	writeJSON(w, http.StatusOK, member)
}

type updateMemberRequest struct {
	Phone             *string `json:"phone"`
	MembershipLevel   *string `json:"membership_level"`
	MembershipStatus  *string `json:"membership_status"`
	PreferredDays     *string `json:"preferred_days"`
	PreferredTimeSlot *string `json:"preferred_time_slot"`
}

func (a *API) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "memberID")
	if !ok {
		return
	}
	var member models.Member
	if err := a.DB.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Member not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	var req updateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.MembershipLevel != nil {
		member.MembershipLevel = *req.MembershipLevel
	}
	if req.MembershipStatus != nil {
		member.MembershipStatus = *req.MembershipStatus
	}
	if req.PreferredDays != nil {
		member.PreferredDays = *req.PreferredDays
	}
	if req.PreferredTimeSlot != nil {
		member.PreferredTimeSlot = *req.PreferredTimeSlot
	}
	if err := a.DB.Save(&member).Error; err != nil {
		a.Log.Error("update member", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (a *API) MemberRegistrations(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "memberID")
	if !ok {
		return
	}
	var regs []models.ClassRegistration
	if err := a.DB.Where("member_id = ?", id).Order("registration_id").Find(&regs).Error; err != nil {
		a.Log.Error("member registrations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, regs)
}
