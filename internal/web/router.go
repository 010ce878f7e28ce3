package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/smartgym/backend/internal/handlers"
)

func Router(api *handlers.API) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", api.Root)
	r.Get("/healthz", api.Health)

	// Members
	r.Get("/members", api.ListMembers)
	r.Post("/members", api.CreateMember)
	r.Get("/members/{memberID}", api.GetMember)
	r.Put("/members/{memberID}", api.UpdateMember)
	r.Get("/members/{memberID}/registrations", api.MemberRegistrations)
	r.Get("/members/{memberID}/billing", api.MemberBilling)

	// Recommendation engine
	r.Get("/members/{memberID}/recommendations", api.MemberRecommendations)
	r.Get("/members/{memberID}/weekly-schedule", api.MemberWeeklySchedule)

	// Classes and schedule
	r.Get("/classes", api.ListClasses)
	r.Get("/classes/{classID}", api.GetClass)
	r.Get("/schedule", api.ListSchedule)
	r.Get("/schedule/{scheduleID}", api.GetScheduleDetail)
	r.Get("/membership-plans", api.ListPlans)

	// Registrations
	r.Post("/registrations", api.CreateRegistration)
	r.Post("/registrations/{registrationID}/cancel", api.CancelRegistration)

	// QR image for a check-in code
	r.Get("/qr/{code}.png", api.RegistrationQR)

	// Billing
	r.Get("/billing/pending", api.PendingBilling)
	r.Post("/billing", api.CreateBilling)

	// Admin
	r.Get("/admin/stats", api.AdminStats)

	return r
}
