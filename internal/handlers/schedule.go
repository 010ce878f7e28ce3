package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smartgym/backend/internal/models"
)

func (a *API) ListSchedule(w http.ResponseWriter, r *http.Request) {
	q := a.DB.Model(&models.ClassSchedule{}).Order("schedule_id")
	if day := r.URL.Query().Get("day"); day != "" {
		q = q.Where("day_of_week = ?", day)
	}
	var schedules []models.ClassSchedule
	if err := q.Find(&schedules).Error; err != nil {
		a.Log.Error("list schedule", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, schedules)
}

type scheduleDetail struct {
	Schedule        models.ClassSchedule `json:"schedule"`
	RegisteredCount int64                `json:"registered_count"`
	MaxCapacity     int                  `json:"max_capacity"`
	SpotsAvailable  int64                `json:"spots_available"`
	IsFull          bool                 `json:"is_full"`
}

func (a *API) GetScheduleDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "scheduleID")
	if !ok {
		return
	}
	var schedule models.ClassSchedule
	if err := a.DB.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Schedule not found")
			return
		}
		a.Log.Error("schedule detail", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	var class models.Class
	if err := a.DB.First(&class, schedule.ClassID).Error; err != nil {
		a.Log.Error("schedule detail", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	var registered int64
	if err := a.DB.Model(&models.ClassRegistration{}).
		Where("schedule_id = ? AND attendance_status IN ?", id,
			[]string{models.StatusRegistered, models.StatusAttended}).
		Count(&registered).Error; err != nil {
		a.Log.Error("schedule detail", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	writeJSON(w, http.StatusOK, scheduleDetail{
		Schedule:        schedule,
		RegisteredCount: registered,
		MaxCapacity:     class.MaxCapacity,
		SpotsAvailable:  int64(class.MaxCapacity) - registered,
		IsFull:          registered >= int64(class.MaxCapacity),
	})
}
