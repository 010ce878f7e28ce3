package recommend

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smartgym/backend/internal/models"
)

// openTestDB returns an isolated in-file SQLite database in a temp directory.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dir := t.TempDir()
	dsn := filepath.Join(dir, "test.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.Member{},
		&models.MembershipPlan{},
		&models.Class{},
		&models.ClassSchedule{},
		&models.ClassRegistration{},
		&models.Billing{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func testEngine(t *testing.T, gdb *gorm.DB, chat ChatClient) *Engine {
	t.Helper()
	return NewEngine(gdb, chat, nil, Options{})
}

func addMember(t *testing.T, gdb *gorm.DB, first, last, level, slot, days string) models.Member {
	t.Helper()
	m := models.Member{
		FirstName:         first,
		LastName:          last,
		Email:             first + "." + last + "@gym.com",
		MembershipLevel:   level,
		JoinDate:          time.Now(),
		MembershipStatus:  models.MembershipActive,
		PreferredDays:     days,
		PreferredTimeSlot: slot,
	}
	if err := gdb.Create(&m).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}
	return m
}

func addClass(t *testing.T, gdb *gorm.DB, name, difficulty, required string, capacity int) models.Class {
	t.Helper()
	c := models.Class{
		ClassName:          name,
		InstructorName:     "Coach " + name,
		DurationMinutes:    60,
		MaxCapacity:        capacity,
		DifficultyLevel:    difficulty,
		RequiredMembership: required,
		Description:        name + " class",
	}
	if err := gdb.Create(&c).Error; err != nil {
		t.Fatalf("create class: %v", err)
	}
	return c
}

func addSession(t *testing.T, gdb *gorm.DB, classID uint, day, start, end string) models.ClassSchedule {
	t.Helper()
	s := models.ClassSchedule{
		ClassID:      classID,
		DayOfWeek:    day,
		StartTime:    start,
		EndTime:      end,
		RoomLocation: "Room 1",
	}
	if err := gdb.Create(&s).Error; err != nil {
		t.Fatalf("create session: %v", err)
	}
	return s
}

var regSeq int

func addRegistration(t *testing.T, gdb *gorm.DB, memberID, scheduleID uint, status string) models.ClassRegistration {
	t.Helper()
	regSeq++
	r := models.ClassRegistration{
		MemberID:         memberID,
		ScheduleID:       scheduleID,
		RegistrationDate: time.Now(),
		AttendanceStatus: status,
		Code:             fmt.Sprintf("REG-%06d", regSeq),
	}
	if err := gdb.Create(&r).Error; err != nil {
		t.Fatalf("create registration: %v", err)
	}
	return r
}
