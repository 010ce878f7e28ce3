package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/smartgym/backend/internal/models"
)

var (
	ErrMemberNotFound        = errors.New("member not found")
	ErrScheduleNotFound      = errors.New("schedule not found")
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrDuplicateRegistration = errors.New("already registered for this class")
	ErrClassFull             = errors.New("class is full")
)

var activeStatuses = []string{models.StatusRegistered, models.StatusAttended}

// RegisterForClass books a member into a scheduled session. The duplicate
// check, the capacity check, and the insert run inside one transaction so
// two concurrent registrations cannot both pass the count for the last spot.
func RegisterForClass(db *gorm.DB, memberID, scheduleID uint) (*models.ClassRegistration, error) {
	var reg models.ClassRegistration
	err := db.Transaction(func(tx *gorm.DB) error {
		var member models.Member
		if err := tx.First(&member, memberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return err
		}

		var schedule models.ClassSchedule
		if err := tx.First(&schedule, scheduleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScheduleNotFound
			}
			return err
		}

		var class models.Class
		if err := tx.First(&class, schedule.ClassID).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.ClassRegistration{}).
			Where("member_id = ? AND schedule_id = ?", memberID, scheduleID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateRegistration
		}

		var active int64
		if err := tx.Model(&models.ClassRegistration{}).
			Where("schedule_id = ? AND attendance_status IN ?", scheduleID, activeStatuses).
			Count(&active).Error; err != nil {
			return err
		}
		if active >= int64(class.MaxCapacity) {
			return ErrClassFull
		}

		code, err := generateCode(tx)
		if err != nil {
			return err
		}
		reg = models.ClassRegistration{
			MemberID:         memberID,
			ScheduleID:       scheduleID,
			RegistrationDate: time.Now(),
			AttendanceStatus: models.StatusRegistered,
			Code:             code,
		}
		return tx.Create(&reg).Error
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// CancelRegistration marks a registration Cancelled, which frees its spot.
// Cancelling twice is a no-op.
func CancelRegistration(db *gorm.DB, registrationID uint) (*models.ClassRegistration, error) {
	var reg models.ClassRegistration
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reg, registrationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRegistrationNotFound
			}
			return err
		}
		if reg.AttendanceStatus == models.StatusCancelled {
			return nil
		}
		reg.AttendanceStatus = models.StatusCancelled
		return tx.Save(&reg).Error
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// generateCode allocates a unique REG-xxxxxx check-in code.
func generateCode(tx *gorm.DB) (string, error) {
	for i := 0; i < 20; i++ {
		code := fmt.Sprintf("REG-%06d", rand.Intn(1000000))
		var exists int64
		if err := tx.Model(&models.ClassRegistration{}).Where("code = ?", code).Count(&exists).Error; err != nil {
			return "", err
		}
		if exists == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not allocate registration code")
}
