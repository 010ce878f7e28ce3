package handlers

import "net/http"

func (a *API) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Smart Gym Membership API",
		"version":  "1.0.0",
		"features": []string{"Member Management", "Class Scheduling", "AI Recommendations", "Billing"},
	})
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
