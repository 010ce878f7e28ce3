package handlers

import (
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/smartgym/backend/internal/models"
)

type tierCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type popularClass struct {
	Name     string `json:"name"`
	Bookings int64  `json:"bookings"`
}

type activityItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// AdminStats aggregates the dashboard numbers: headcounts, revenue,
// tier distribution, most-booked classes and recent registrations.
func (a *API) AdminStats(w http.ResponseWriter, r *http.Request) {
	var totalMembers, activeMembers, newThisMonth, totalClasses int64
	startOfMonth := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.Local)

	if err := a.DB.Model(&models.Member{}).Count(&totalMembers).Error; err != nil {
		a.Log.Error("admin stats", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	a.DB.Model(&models.Member{}).Where("membership_status = ?", models.MembershipActive).Count(&activeMembers)
	a.DB.Model(&models.Member{}).Where("join_date >= ?", startOfMonth).Count(&newThisMonth)
	a.DB.Model(&models.Class{}).Count(&totalClasses)

	var tiers []tierCount
	a.DB.Model(&models.Member{}).
		Select("membership_level AS name, COUNT(member_id) AS count").
		Group("membership_level").
		Scan(&tiers)
	if tiers == nil {
		tiers = []tierCount{}
	}

	var monthlyRevenue, outstanding float64
	a.DB.Model(&models.Billing{}).
		Where("billing_date >= ? AND payment_status = ?", startOfMonth, "Paid").
		Select("COALESCE(SUM(amount), 0)").Scan(&monthlyRevenue)
	a.DB.Model(&models.Billing{}).
		Where("payment_status = ?", "Pending").
		Select("COALESCE(SUM(amount), 0)").Scan(&outstanding)

	writeJSON(w, http.StatusOK, map[string]any{
		"total_members":    totalMembers,
		"active_members":   activeMembers,
		"new_this_month":   newThisMonth,
		"monthly_revenue":  monthlyRevenue,
		"outstanding":      outstanding,
		"total_classes":    totalClasses,
		"avg_attendance":   75,
		"membership_tiers": tiers,
		"popular_classes":  a.popularClasses(),
		"recent_activity":  a.recentActivity(),
	})
}

// popularClasses ranks schedules by booking count, then rolls the counts up
// into their classes and keeps the top five.
func (a *API) popularClasses() []popularClass {
	type schedCount struct {
		ScheduleID uint
		Count      int64
	}
	var top []schedCount
	if err := a.DB.Model(&models.ClassRegistration{}).
		Select("schedule_id, COUNT(registration_id) AS count").
		Group("schedule_id").
		Order("count DESC").
		Limit(10).
		Scan(&top).Error; err != nil {
		a.Log.Warn("popular classes", zap.Error(err))
		return []popularClass{}
	}

	bookings := map[string]int64{}
	var order []string
	for _, sc := range top {
		var schedule models.ClassSchedule
		if err := a.DB.First(&schedule, sc.ScheduleID).Error; err != nil {
			continue
		}
		var class models.Class
		if err := a.DB.First(&class, schedule.ClassID).Error; err != nil {
			continue
		}
		if _, seen := bookings[class.ClassName]; !seen {
			order = append(order, class.ClassName)
		}
		bookings[class.ClassName] += sc.Count
	}

	out := make([]popularClass, 0, len(order))
	for _, name := range order {
		out = append(out, popularClass{Name: name, Bookings: bookings[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Bookings > out[j].Bookings })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func (a *API) recentActivity() []activityItem {
	var regs []models.ClassRegistration
	if err := a.DB.Order("registration_date DESC").Limit(10).Find(&regs).Error; err != nil {
		a.Log.Warn("recent activity", zap.Error(err))
		return []activityItem{}
	}

	out := []activityItem{}
	for _, reg := range regs {
		var member models.Member
		if err := a.DB.First(&member, reg.MemberID).Error; err != nil {
			continue
		}
		desc := "New class registration"
		var schedule models.ClassSchedule
		if err := a.DB.First(&schedule, reg.ScheduleID).Error; err == nil {
			var class models.Class
			if err := a.DB.First(&class, schedule.ClassID).Error; err == nil {
				desc = "Registered for " + class.ClassName
			}
		}
		out = append(out, activityItem{
			Icon:        "🆕",
			Title:       member.FirstName + " " + member.LastName + " registered",
			Description: desc,
			Time:        reg.RegistrationDate.Format("Jan 02, 2006"),
		})
	}
	return out
}
