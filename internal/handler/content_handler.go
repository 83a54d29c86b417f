package handler

import (
	"net/http"

	"github.com/swiftmove/backend/internal/content"
	"github.com/swiftmove/backend/internal/model"
)

// ContentHandler serves the read-only marketing catalog.
type ContentHandler struct {
	catalog *content.Catalog
}

func NewContentHandler(catalog *content.Catalog) *ContentHandler {
	return &ContentHandler{catalog: catalog}
}

type companyResponse struct {
	model.Company
	ServiceAreas []string `json:"serviceAreas"`
}

func (h *ContentHandler) Services(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(h.catalog.Services))
}

func (h *ContentHandler) Pricing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(h.catalog.Pricing))
}

func (h *ContentHandler) FAQs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(h.catalog.FAQs))
}

func (h *ContentHandler) Company(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, companyResponse{
		Company:      h.catalog.Company,
		ServiceAreas: nonNil(h.catalog.ServiceAreas),
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
