package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/swiftmove/backend/internal/service"
	"github.com/swiftmove/backend/pkg/auth"
)

// AdminHandler serves dashboard login, the token probe and stats.
type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.adminService.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		slog.Warn("admin login rejected", "username", req.Username, "remote_addr", r.RemoteAddr)
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	if err != nil {
		writeServiceError(w, r, err, "Admin")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Verify handles GET /api/admin/verify. RequireAdmin has already checked the token.
func (h *AdminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	username, _ := auth.AdminFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"username": username})
}

// Stats handles GET /api/admin/dashboard/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
