package db

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/smartgym/backend/internal/models"
)

// Seed populates an empty database with demo data: three membership plans,
// the class catalog with weekly sessions, fifty members with billing rows,
// and roughly a hundred registrations. A database that already has members
// is left untouched.
func Seed(conn *gorm.DB) error {
	var existing int64
	if err := conn.Model(&models.Member{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	intPtr := func(n int) *int { return &n }
	plans := []models.MembershipPlan{
		{PlanID: 1, PlanName: "Standard", MonthlyFee: 29.99, ClassAccessLimit: intPtr(4),
			Features: "Basic gym access, 4 classes per week"},
		{PlanID: 2, PlanName: "Premium", MonthlyFee: 49.99, ClassAccessLimit: intPtr(12),
			Features: "Full gym access, 12 classes per week, guest pass"},
		{PlanID: 3, PlanName: "Platinum", MonthlyFee: 79.99, ClassAccessLimit: nil,
			Features: "Unlimited access, all classes, personal trainer session"},
	}
	if err := conn.Create(&plans).Error; err != nil {
		return err
	}

	classes := []models.Class{
		{ClassName: "Yoga", InstructorName: "Sarah Johnson", DurationMinutes: 60, MaxCapacity: 20, DifficultyLevel: "Beginner", RequiredMembership: "Standard", Description: "Relaxing yoga for flexibility and mindfulness"},
		{ClassName: "Spin", InstructorName: "Mike Chen", DurationMinutes: 45, MaxCapacity: 25, DifficultyLevel: "Intermediate", RequiredMembership: "Standard", Description: "High-energy cycling workout"},
		{ClassName: "Pilates", InstructorName: "Emma Davis", DurationMinutes: 50, MaxCapacity: 18, DifficultyLevel: "Beginner", RequiredMembership: "Standard", Description: "Core strengthening and flexibility"},
		{ClassName: "Zumba", InstructorName: "Maria Garcia", DurationMinutes: 50, MaxCapacity: 30, DifficultyLevel: "Beginner", RequiredMembership: "Standard", Description: "Fun Latin-inspired dance workout"},
		{ClassName: "Stretching", InstructorName: "Lisa Anderson", DurationMinutes: 30, MaxCapacity: 25, DifficultyLevel: "Beginner", RequiredMembership: "Standard", Description: "Gentle stretching and mobility"},
		{ClassName: "HIIT", InstructorName: "Chris Brown", DurationMinutes: 45, MaxCapacity: 20, DifficultyLevel: "Intermediate", RequiredMembership: "Premium", Description: "High intensity interval training"},
		{ClassName: "CrossFit", InstructorName: "John Smith", DurationMinutes: 60, MaxCapacity: 15, DifficultyLevel: "Advanced", RequiredMembership: "Premium", Description: "Intense functional fitness training"},
		{ClassName: "Boxing", InstructorName: "Tom Wilson", DurationMinutes: 60, MaxCapacity: 12, DifficultyLevel: "Advanced", RequiredMembership: "Premium", Description: "Technical boxing and conditioning"},
		{ClassName: "Personal Training", InstructorName: "Alex Rodriguez", DurationMinutes: 60, MaxCapacity: 1, DifficultyLevel: "All Levels", RequiredMembership: "Platinum", Description: "One-on-one customized training session with elite coach"},
		{ClassName: "Olympic Lifting", InstructorName: "Marcus Chen", DurationMinutes: 75, MaxCapacity: 8, DifficultyLevel: "Advanced", RequiredMembership: "Platinum", Description: "Advanced barbell techniques - snatch, clean & jerk with professional coaching"},
		{ClassName: "Recovery & Massage", InstructorName: "Dr. Emma Thompson", DurationMinutes: 45, MaxCapacity: 6, DifficultyLevel: "All Levels", RequiredMembership: "Platinum", Description: "Sports massage and recovery techniques for optimal performance"},
	}
	if err := conn.Create(&classes).Error; err != nil {
		return err
	}

	weekdays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	timeSlots := [][2]string{
		{"06:00", "07:00"},
		{"09:00", "10:00"},
		{"12:00", "13:00"},
		{"17:00", "18:00"},
		{"18:30", "19:30"},
	}

	var schedules []models.ClassSchedule
	for _, cls := range classes {
		for _, di := range rand.Perm(len(weekdays))[:3] {
			slot := timeSlots[rand.Intn(len(timeSlots))]
			schedules = append(schedules, models.ClassSchedule{
				ClassID:      cls.ClassID,
				DayOfWeek:    weekdays[di],
				StartTime:    slot[0],
				EndTime:      slot[1],
				RoomLocation: fmt.Sprintf("Room %d", rand.Intn(5)+1),
			})
		}
	}
	if err := conn.Create(&schedules).Error; err != nil {
		return err
	}

	firstNames := []string{"John", "Jane", "Mike", "Sarah", "Chris", "Emma", "David", "Lisa", "Tom", "Amy",
		"Kevin", "Rachel", "Steve", "Nicole", "Brian", "Jessica", "Mark", "Lauren", "Dan", "Megan"}
	lastNames := []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Wilson", "Moore",
		"Taylor", "Anderson", "Thomas", "Jackson", "White", "Harris", "Martin", "Thompson", "Martinez", "Robinson"}
	levels := []string{"Standard", "Premium", "Platinum"}
	slots := []string{"Morning", "Afternoon", "Evening"}
	genders := []string{"Male", "Female"}

	now := time.Now()
	members := make([]models.Member, 0, 50)
	for i := 0; i < 50; i++ {
		gender := genders[rand.Intn(2)]
		birthYear := 1970 + rand.Intn(31)
		dob := time.Date(birthYear, time.Month(rand.Intn(12)+1), rand.Intn(28)+1, 0, 0, 0, 0, time.UTC)

		var height, weight int
		if gender == "Male" {
			height = 165 + rand.Intn(31)
			weight = 65 + rand.Intn(41)
		} else {
			height = 155 + rand.Intn(26)
			weight = 50 + rand.Intn(36)
		}

		members = append(members, models.Member{
			FirstName:         firstNames[rand.Intn(len(firstNames))],
			LastName:          lastNames[rand.Intn(len(lastNames))],
			Email:             fmt.Sprintf("member%d@gym.com", i+1),
			Phone:             fmt.Sprintf("555-%04d", rand.Intn(9000)+1000),
			DateOfBirth:       &dob,
			MembershipLevel:   levels[rand.Intn(len(levels))],
			JoinDate:          now.AddDate(0, 0, -rand.Intn(366)),
			MembershipStatus:  models.MembershipActive,
			PreferredDays:     "Monday,Wednesday,Friday",
			PreferredTimeSlot: slots[rand.Intn(len(slots))],
			HeightCm:          height,
			WeightKg:          weight,
			Age:               now.Year() - birthYear,
			Gender:            gender,
		})
	}
	if err := conn.Create(&members).Error; err != nil {
		return err
	}

	for _, m := range members {
		var plan models.MembershipPlan
		if err := conn.Where("plan_name = ?", m.MembershipLevel).First(&plan).Error; err != nil {
			return err
		}
		next := now.AddDate(0, 0, 30)
		bill := models.Billing{
			MemberID:        m.MemberID,
			BillingDate:     now,
			Amount:          plan.MonthlyFee,
			PaymentStatus:   []string{"Paid", "Pending", "Paid", "Paid"}[rand.Intn(4)],
			PaymentMethod:   "Credit Card",
			NextBillingDate: &next,
		}
		if err := conn.Create(&bill).Error; err != nil {
			return err
		}
	}

	statuses := []string{models.StatusAttended, models.StatusRegistered, models.StatusAttended, models.StatusAttended}
	taken := make(map[[2]uint]bool)
	seq := 0
	for i := 0; i < 100; i++ {
		m := members[rand.Intn(len(members))]
		s := schedules[rand.Intn(len(schedules))]
		key := [2]uint{m.MemberID, s.ScheduleID}
		if taken[key] {
			continue
		}
		taken[key] = true
		seq++
		reg := models.ClassRegistration{
			MemberID:         m.MemberID,
			ScheduleID:       s.ScheduleID,
			RegistrationDate: now.AddDate(0, 0, -rand.Intn(31)),
			AttendanceStatus: statuses[rand.Intn(len(statuses))],
			Code:             fmt.Sprintf("REG-%06d", seq),
		}
		if err := conn.Create(&reg).Error; err != nil {
			return err
		}
	}

	return nil
}
