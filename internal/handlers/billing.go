package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smartgym/backend/internal/models"
)

func (a *API) MemberBilling(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "memberID")
	if !ok {
		return
	}
	var bills []models.Billing
	if err := a.DB.Where("member_id = ?", id).Order("billing_id").Find(&bills).Error; err != nil {
		a.Log.Error("member billing", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, bills)
}

func (a *API) PendingBilling(w http.ResponseWriter, r *http.Request) {
	var bills []models.Billing
	if err := a.DB.Where("payment_status = ?", "Pending").Order("billing_id").Find(&bills).Error; err != nil {
		a.Log.Error("pending billing", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, bills)
}

type createBillingRequest struct {
	MemberID        uint    `json:"member_id"`
	BillingDate     string  `json:"billing_date"`
	Amount          float64 `json:"amount"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentMethod   string  `json:"payment_method"`
	NextBillingDate string  `json:"next_billing_date"`
}

func (a *API) CreateBilling(w http.ResponseWriter, r *http.Request) {
	var req createBillingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var member models.Member
	if err := a.DB.First(&member, req.MemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Member not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	billingDate, err := time.Parse("2006-01-02", req.BillingDate)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "billing_date must be YYYY-MM-DD")
		return
	}
	var nextBilling *time.Time
	if req.NextBillingDate != "" {
		nd, err := time.Parse("2006-01-02", req.NextBillingDate)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "next_billing_date must be YYYY-MM-DD")
			return
		}
		nextBilling = &nd
	}

	status := req.PaymentStatus
	if status == "" {
		status = "Pending"
	}
	method := req.PaymentMethod
	if method == "" {
		method = "Auto-pay"
	}

	bill := models.Billing{
		MemberID:        req.MemberID,
		BillingDate:     billingDate,
		Amount:          req.Amount,
		PaymentStatus:   status,
		PaymentMethod:   method,
		NextBillingDate: nextBilling,
	}
	if err := a.DB.Create(&bill).Error; err != nil {
		a.Log.Error("create billing", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Billing created successfully",
		"billing": bill,
	})
}
