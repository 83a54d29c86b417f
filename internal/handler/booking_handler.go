package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/service"
)

// BookingHandler handles the booking form and the admin booking views.
type BookingHandler struct {
	bookingService service.BookingService
	metrics        *Metrics
}

// NewBookingHandler creates a BookingHandler. metrics may be nil.
func NewBookingHandler(bookingService service.BookingService, metrics *Metrics) *BookingHandler {
	return &BookingHandler{bookingService: bookingService, metrics: metrics}
}

// bookingRequest is the JSON body for POST /api/bookings/.
type bookingRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ServiceType     string `json:"serviceType"`
	MoveSize        string `json:"moveSize"`
	CurrentAddress  string `json:"currentAddress"`
	NewAddress      string `json:"newAddress"`
	PreferredDate   string `json:"preferredDate"`
	PreferredTime   string `json:"preferredTime"`
	HoursNeeded     string `json:"hoursNeeded"`
	SpecialRequests string `json:"specialRequests"`
}

// dateLayouts are tried in order; the form's date input sends the last one.
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

func parsePreferredDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Submit handles POST /api/bookings/.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len([]rune(req.SpecialRequests)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "specialRequests is too long")
		return
	}

	b := &model.Booking{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		ServiceType:     req.ServiceType,
		MoveSize:        req.MoveSize,
		CurrentAddress:  req.CurrentAddress,
		NewAddress:      req.NewAddress,
		PreferredTime:   req.PreferredTime,
		HoursNeeded:     req.HoursNeeded,
		SpecialRequests: req.SpecialRequests,
	}
	if strings.TrimSpace(req.PreferredDate) != "" {
		d, ok := parsePreferredDate(req.PreferredDate)
		if !ok {
			writeError(w, http.StatusBadRequest, "preferredDate must be an ISO 8601 date")
			return
		}
		b.PreferredDate = d
	}

	if err := h.bookingService.Submit(r.Context(), b); err != nil {
		writeServiceError(w, r, err, "Booking")
		return
	}

	h.metrics.RecordSubmission("booking")
	writeJSON(w, http.StatusOK, b)
}

// AdminList handles GET /api/admin/bookings.
// Query params: status (all/pending/confirmed/completed/cancelled), limit, offset.
func (h *BookingHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r, 100, 500)
	opts := model.BookingListOptions{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Limit:  limit,
		Offset: offset,
	}
	if opts.Status != "" && opts.Status != "all" && !model.ValidBookingStatus(opts.Status) {
		writeError(w, http.StatusBadRequest, "Invalid status filter")
		return
	}

	bookings, err := h.bookingService.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, err, "Booking")
		return
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

// UpdateStatus handles PUT /api/admin/bookings/{id}/status.
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	status := strings.TrimSpace(req.Status)
	if err := h.bookingService.UpdateStatus(r.Context(), id, status); err != nil {
		writeServiceError(w, r, err, "Booking")
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{OK: true, Status: status})
}
