package handler

import (
	"net/http"
	"strconv"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/service"
)

// TestimonialHandler serves customer reviews.
type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// List handles GET /api/services/testimonials. ?limit=N caps the result.
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}
	list, err := h.testimonialService.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err, "Testimonial")
		return
	}
	if list == nil {
		list = []*model.Testimonial{}
	}
	writeJSON(w, http.StatusOK, list)
}

type testimonialRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
}

// Create handles POST /api/admin/testimonials.
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req testimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	t := &model.Testimonial{
		Name:     req.Name,
		Role:     req.Role,
		Location: req.Location,
		Rating:   req.Rating,
		Text:     req.Text,
	}
	if err := h.testimonialService.Create(r.Context(), t); err != nil {
		writeServiceError(w, r, err, "Testimonial")
		return
	}
	writeJSON(w, http.StatusCreated, t)
}
