package models

import "time"

// Attendance statuses for class registrations. Registered and Attended count
// against a session's capacity; Cancelled frees the spot.
const (
	StatusRegistered = "Registered"
	StatusAttended   = "Attended"
	StatusCancelled  = "Cancelled"
)

const MembershipActive = "Active"

type Member struct {
	MemberID          uint       `gorm:"primaryKey" json:"member_id"`
	FirstName         string     `gorm:"size:50;not null" json:"first_name"`
	LastName          string     `gorm:"size:50;not null" json:"last_name"`
	Email             string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone             string     `gorm:"size:15" json:"phone"`
	DateOfBirth       *time.Time `json:"date_of_birth"`
	MembershipLevel   string     `gorm:"size:20;not null" json:"membership_level"` // Standard | Premium | Platinum
	JoinDate          time.Time  `gorm:"not null" json:"join_date"`
	MembershipStatus  string     `gorm:"size:20;default:Active" json:"membership_status"`
	PreferredDays     string     `gorm:"size:100" json:"preferred_days"`      // comma-joined, e.g. "Monday,Wednesday,Friday"
	PreferredTimeSlot string     `gorm:"size:50" json:"preferred_time_slot"`  // Morning | Afternoon | Evening
	HeightCm          int        `json:"height_cm"`
	WeightKg          int        `json:"weight_kg"`
	Age               int        `json:"age"`
	Gender            string     `gorm:"size:10" json:"gender"`
}

type MembershipPlan struct {
	PlanID           uint    `gorm:"primaryKey" json:"plan_id"`
	PlanName         string  `gorm:"size:50;not null" json:"plan_name"`
	MonthlyFee       float64 `gorm:"not null" json:"monthly_fee"`
	ClassAccessLimit *int    `json:"class_access_limit"` // nil = unlimited
	Features         string  `json:"features"`
}

type Class struct {
	ClassID            uint   `gorm:"primaryKey" json:"class_id"`
	ClassName          string `gorm:"size:100;not null" json:"class_name"`
	InstructorName     string `gorm:"size:100" json:"instructor_name"`
	DurationMinutes    int    `json:"duration_minutes"`
	MaxCapacity        int    `json:"max_capacity"`
	DifficultyLevel    string `gorm:"size:20" json:"difficulty_level"`    // Beginner | Intermediate | Advanced | All Levels
	RequiredMembership string `gorm:"size:20" json:"required_membership"` // minimum tier that may book
	Description        string `json:"description"`
}

// ClassSchedule is one weekly session of a class. Start and end times are
// stored as "HH:MM" strings; slot bucketing and time sorting operate on these.
type ClassSchedule struct {
	ScheduleID   uint   `gorm:"primaryKey" json:"schedule_id"`
	ClassID      uint   `gorm:"not null" json:"class_id"`
	DayOfWeek    string `gorm:"size:10;not null" json:"day_of_week"`
	StartTime    string `gorm:"size:5;not null" json:"start_time"`
	EndTime      string `gorm:"size:5;not null" json:"end_time"`
	RoomLocation string `gorm:"size:50" json:"room_location"`
}

type ClassRegistration struct {
	RegistrationID   uint      `gorm:"primaryKey" json:"registration_id"`
	MemberID         uint      `gorm:"not null" json:"member_id"`
	ScheduleID       uint      `gorm:"not null" json:"schedule_id"`
	RegistrationDate time.Time `gorm:"not null" json:"registration_date"`
	AttendanceStatus string    `gorm:"size:20;default:Registered" json:"attendance_status"`
	Code             string    `gorm:"uniqueIndex" json:"code"` // e.g., REG-123456, encoded in the check-in QR
}

type Billing struct {
	BillingID       uint       `gorm:"primaryKey" json:"billing_id"`
	MemberID        uint       `gorm:"not null" json:"member_id"`
	BillingDate     time.Time  `gorm:"not null" json:"billing_date"`
	Amount          float64    `gorm:"not null" json:"amount"`
	PaymentStatus   string     `gorm:"size:20;default:Pending" json:"payment_status"`
	PaymentMethod   string     `gorm:"size:50" json:"payment_method"`
	NextBillingDate *time.Time `json:"next_billing_date"`
}
