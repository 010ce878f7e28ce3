package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smartgym/backend/internal/models"
)

func (a *API) ListClasses(w http.ResponseWriter, r *http.Request) {
	var classes []models.Class
	if err := a.DB.Order("class_id").Find(&classes).Error; err != nil {
		a.Log.Error("list classes", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, classes)
}

func (a *API) GetClass(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "classID")
	if !ok {
		return
	}
	var class models.Class
	if err := a.DB.First(&class, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Class not found")
			return
		}
		a.Log.Error("get class", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, class)
}

func (a *API) ListPlans(w http.ResponseWriter, r *http.Request) {
	var plans []models.MembershipPlan
	if err := a.DB.Order("plan_id").Find(&plans).Error; err != nil {
		a.Log.Error("list plans", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, plans)
}
