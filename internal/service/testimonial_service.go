package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/repository"
)

// TestimonialService defines the business logic for customer reviews.
type TestimonialService interface {
	// List returns testimonials newest first. limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]*model.Testimonial, error)
	Create(ctx context.Context, t *model.Testimonial) error
	// Seed stores seed when no testimonial exists yet and reports how many were inserted.
	Seed(ctx context.Context, seed []*model.Testimonial) (int, error)
}

type testimonialService struct {
	repo repository.TestimonialRepository
}

func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{repo: repo}
}

func (s *testimonialService) List(ctx context.Context, limit int) ([]*model.Testimonial, error) {
	return s.repo.List(ctx, limit)
}

func (s *testimonialService) Create(ctx context.Context, t *model.Testimonial) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Role = strings.TrimSpace(t.Role)
	t.Location = strings.TrimSpace(t.Location)
	t.Text = strings.TrimSpace(t.Text)
	if err := required("name", t.Name); err != nil {
		return err
	}
	if err := required("text", t.Text); err != nil {
		return err
	}
	if t.Rating < 1 || t.Rating > 5 {
		return &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	return s.repo.Save(ctx, t)
}

func (s *testimonialService) Seed(ctx context.Context, seed []*model.Testimonial) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	// 逆順に入れて、新しい順の一覧がカタログの並びになるようにする
	inserted := 0
	for i := len(seed) - 1; i >= 0; i-- {
		if err := s.Create(ctx, seed[i]); err != nil {
			return inserted, err
		}
		inserted++
	}
	slog.Info("seeded testimonials", "count", inserted)
	return inserted, nil
}
