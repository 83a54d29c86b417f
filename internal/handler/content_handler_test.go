package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/swiftmove/backend/internal/content"
	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/service"
)

func TestContentHandler_DefaultCatalog(t *testing.T) {
	catalog, err := content.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	h := NewContentHandler(catalog)

	tests := []struct {
		path    string
		handler http.HandlerFunc
	}{
		{"/api/services", h.Services},
		{"/api/services/pricing", h.Pricing},
		{"/api/services/faqs", h.FAQs},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest("GET", tt.path, nil))
			var items []map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(items) == 0 {
				t.Error("expected a non-empty array")
			}
		})
	}

	rec := httptest.NewRecorder()
	h.Company(rec, httptest.NewRequest("GET", "/api/company", nil))
	var company map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&company); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if company["name"] == "" || company["serviceAreas"] == nil {
		t.Errorf("unexpected company %v", company)
	}
}

func TestContentHandler_EmptyCatalogGivesArrays(t *testing.T) {
	h := NewContentHandler(&content.Catalog{})
	rec := httptest.NewRecorder()
	h.FAQs(rec, httptest.NewRequest("GET", "/api/services/faqs", nil))
	if rec.Body.String() != "[]\n" {
		t.Errorf("expected [], got %q", rec.Body.String())
	}
}

func TestTestimonialHandler_List(t *testing.T) {
	var gotLimit int
	mock := &mockTestimonialService{
		listFunc: func(ctx context.Context, limit int) ([]*model.Testimonial, error) {
			gotLimit = limit
			return []*model.Testimonial{{ID: "t1", Name: "Sarah", Rating: 5}}, nil
		},
	}
	h := NewTestimonialHandler(mock)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/api/services/testimonials?limit=3", nil))

	if gotLimit != 3 {
		t.Errorf("expected limit 3, got %d", gotLimit)
	}
	var got []model.Testimonial
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Rating != 5 {
		t.Errorf("unexpected testimonials %+v", got)
	}
}

func TestTestimonialHandler_Create(t *testing.T) {
	mock := &mockTestimonialService{
		createFunc: func(ctx context.Context, tm *model.Testimonial) error {
			if tm.Rating > 5 {
				return &service.ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
			}
			tm.ID = "t-new"
			return nil
		},
	}
	h := NewTestimonialHandler(mock)

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest("POST", "/api/admin/testimonials", `{"name":"Lee","text":"Great","rating":5}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Create(rec, jsonRequest("POST", "/api/admin/testimonials", `{"name":"Lee","text":"Great","rating":9}`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
