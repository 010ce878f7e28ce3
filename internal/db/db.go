package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/smartgym/backend/internal/models"
)

// Open opens (creating if needed) the SQLite database at path and migrates
// the schema. The returned handle is passed explicitly to everything that
// touches the store; there is no package-level connection.
func Open(path string) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	// This also serializes the capacity check-then-insert in registrations.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(
		&models.Member{},
		&models.MembershipPlan{},
		&models.Class{},
		&models.ClassSchedule{},
		&models.ClassRegistration{},
		&models.Billing{},
	); err != nil {
		return nil, err
	}

	// Composite indexes that GORM doesn't auto-create from struct tags.
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_reg_schedule_status ON class_registrations(schedule_id, attendance_status)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_reg_member          ON class_registrations(member_id)")

	return conn, nil
}
