package services

import (
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smartgym/backend/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.Member{},
		&models.Class{},
		&models.ClassSchedule{},
		&models.ClassRegistration{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func seedSession(t *testing.T, gdb *gorm.DB, capacity int) (models.Member, models.ClassSchedule) {
	t.Helper()
	m := models.Member{
		FirstName: "Jane", LastName: "Doe", Email: "jane@gym.com",
		MembershipLevel: "Standard", JoinDate: time.Now(),
		MembershipStatus: models.MembershipActive,
	}
	if err := gdb.Create(&m).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}
	cls := models.Class{ClassName: "Yoga", MaxCapacity: capacity, DifficultyLevel: "Beginner", RequiredMembership: "Standard"}
	if err := gdb.Create(&cls).Error; err != nil {
		t.Fatalf("create class: %v", err)
	}
	s := models.ClassSchedule{ClassID: cls.ClassID, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00"}
	if err := gdb.Create(&s).Error; err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	return m, s
}

func TestRegisterForClass(t *testing.T) {
	gdb := openTestDB(t)
	m, s := seedSession(t, gdb, 10)

	reg, err := RegisterForClass(gdb, m.MemberID, s.ScheduleID)
	if err != nil {
		t.Fatalf("RegisterForClass: %v", err)
	}
	if reg.AttendanceStatus != models.StatusRegistered {
		t.Errorf("status = %q", reg.AttendanceStatus)
	}
	if !regexp.MustCompile(`^REG-\d{6}$`).MatchString(reg.Code) {
		t.Errorf("code = %q, want REG-xxxxxx", reg.Code)
	}
}

func TestRegisterForClassDuplicate(t *testing.T) {
	gdb := openTestDB(t)
	m, s := seedSession(t, gdb, 10)

	if _, err := RegisterForClass(gdb, m.MemberID, s.ScheduleID); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := RegisterForClass(gdb, m.MemberID, s.ScheduleID); !errors.Is(err, ErrDuplicateRegistration) {
		t.Fatalf("err = %v, want ErrDuplicateRegistration", err)
	}
}

func TestRegisterForClassFull(t *testing.T) {
	gdb := openTestDB(t)
	m, s := seedSession(t, gdb, 1)

	other := models.Member{
		FirstName: "John", LastName: "Smith", Email: "john@gym.com",
		MembershipLevel: "Standard", JoinDate: time.Now(),
	}
	if err := gdb.Create(&other).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}

	if _, err := RegisterForClass(gdb, other.MemberID, s.ScheduleID); err != nil {
		t.Fatalf("fill last spot: %v", err)
	}
	if _, err := RegisterForClass(gdb, m.MemberID, s.ScheduleID); !errors.Is(err, ErrClassFull) {
		t.Fatalf("err = %v, want ErrClassFull", err)
	}
}

func TestRegisterForClassNotFound(t *testing.T) {
	gdb := openTestDB(t)
	m, s := seedSession(t, gdb, 10)

	if _, err := RegisterForClass(gdb, 404, s.ScheduleID); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("err = %v, want ErrMemberNotFound", err)
	}
	if _, err := RegisterForClass(gdb, m.MemberID, 404); !errors.Is(err, ErrScheduleNotFound) {
		t.Fatalf("err = %v, want ErrScheduleNotFound", err)
	}
}

func TestCancelRegistrationFreesSpot(t *testing.T) {
	gdb := openTestDB(t)
	m, s := seedSession(t, gdb, 1)

	reg, err := RegisterForClass(gdb, m.MemberID, s.ScheduleID)
	if err != nil {
		t.Fatalf("RegisterForClass: %v", err)
	}

	cancelled, err := CancelRegistration(gdb, reg.RegistrationID)
	if err != nil {
		t.Fatalf("CancelRegistration: %v", err)
	}
	if cancelled.AttendanceStatus != models.StatusCancelled {
		t.Errorf("status = %q", cancelled.AttendanceStatus)
	}

	// The session has capacity 1 again, so another member can book it.
	other := models.Member{
		FirstName: "John", LastName: "Smith", Email: "john@gym.com",
		MembershipLevel: "Standard", JoinDate: time.Now(),
	}
	if err := gdb.Create(&other).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}
	if _, err := RegisterForClass(gdb, other.MemberID, s.ScheduleID); err != nil {
		t.Fatalf("re-register after cancel: %v", err)
	}
}

func TestCancelRegistrationNotFound(t *testing.T) {
	gdb := openTestDB(t)

	if _, err := CancelRegistration(gdb, 404); !errors.Is(err, ErrRegistrationNotFound) {
		t.Fatalf("err = %v, want ErrRegistrationNotFound", err)
	}
}

func TestNormEmail(t *testing.T) {
	if e, ok := NormEmail("  Jane.Doe@Gym.COM "); !ok || e != "jane.doe@gym.com" {
		t.Errorf("got %q, %v", e, ok)
	}
	if _, ok := NormEmail(""); ok {
		t.Error("empty email must be rejected")
	}
	if _, ok := NormEmail("not-an-email"); ok {
		t.Error("unparseable email must be rejected")
	}
}
