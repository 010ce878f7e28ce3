package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/smartgym/backend/internal/models"
)

// RegistrationQR renders a registration's check-in code as a PNG QR image.
func (a *API) RegistrationQR(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		http.NotFound(w, r)
		return
	}
	var reg models.ClassRegistration
	if err := a.DB.Where("code = ?", code).First(&reg).Error; err != nil {
		http.NotFound(w, r)
		return
	}

	png, err := qrcode.Encode(reg.Code, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "failed to generate qr", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
