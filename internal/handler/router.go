package handler

import (
	"net/http"

	"github.com/swiftmove/backend/internal/content"
	"github.com/swiftmove/backend/internal/repository"
	"github.com/swiftmove/backend/internal/service"
	"github.com/swiftmove/backend/pkg/auth"
)

// Deps is everything Routes wires together.
type Deps struct {
	DB          repository.DB
	FrontendURL string
	StaticDir   string

	// LegalDocsDir overrides the built-in legal documents when set.
	LegalDocsDir string

	Contacts     service.ContactService
	Bookings     service.BookingService
	Testimonials service.TestimonialService
	Chat         service.ChatService
	Admin        service.AdminService
	Catalog      *content.Catalog
	Tokens       auth.Verifier

	// Optional.
	Metrics     *Metrics
	RateLimiter *RateLimiter
}

// Routes builds the full HTTP handler: API routes, metrics, SPA fallback and middleware.
func Routes(d Deps) http.Handler {
	h := New(d.DB, d.FrontendURL)
	contactHandler := NewContactHandler(d.Contacts, d.Metrics)
	bookingHandler := NewBookingHandler(d.Bookings, d.Metrics)
	chatHandler := NewChatHandler(d.Chat, d.Metrics)
	testimonialHandler := NewTestimonialHandler(d.Testimonials)
	contentHandler := NewContentHandler(d.Catalog)
	adminHandler := NewAdminHandler(d.Admin)

	limited := func(f http.HandlerFunc) http.Handler {
		if d.RateLimiter == nil {
			return f
		}
		return d.RateLimiter.Middleware(f)
	}
	requireAdmin := auth.RequireAdmin(d.Tokens)
	admin := func(f http.HandlerFunc) http.Handler { return requireAdmin(f) }

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	// 公開フォーム（末尾スラッシュ有無の両方を受ける）
	mux.Handle("POST /api/bookings", limited(bookingHandler.Submit))
	mux.Handle("POST /api/bookings/{$}", limited(bookingHandler.Submit))
	mux.Handle("POST /api/contacts", limited(contactHandler.Submit))
	mux.Handle("POST /api/contacts/{$}", limited(contactHandler.Submit))

	// チャットウィジェット
	mux.Handle("POST /api/chat/message", limited(chatHandler.Send))

	// マーケティングコンテンツ
	mux.HandleFunc("GET /api/services", contentHandler.Services)
	mux.HandleFunc("GET /api/services/pricing", contentHandler.Pricing)
	mux.HandleFunc("GET /api/services/faqs", contentHandler.FAQs)
	mux.HandleFunc("GET /api/services/testimonials", testimonialHandler.List)
	mux.HandleFunc("GET /api/company", contentHandler.Company)
	mux.HandleFunc("GET /api/legal/{type}", NewLegalHandler(d.LegalDocsDir).Legal)

	// Admin routes
	mux.Handle("POST /api/admin/login", limited(adminHandler.Login))
	mux.Handle("GET /api/admin/verify", admin(adminHandler.Verify))
	mux.Handle("GET /api/admin/dashboard/stats", admin(adminHandler.Stats))
	mux.Handle("GET /api/admin/contacts", admin(contactHandler.AdminList))
	mux.Handle("PUT /api/admin/contacts/{id}/status", admin(contactHandler.UpdateStatus))
	mux.Handle("GET /api/admin/bookings", admin(bookingHandler.AdminList))
	mux.Handle("PUT /api/admin/bookings/{id}/status", admin(bookingHandler.UpdateStatus))
	mux.Handle("GET /api/admin/chatbot-quotes", admin(contactHandler.ChatbotQuotes))
	mux.Handle("GET /api/admin/chat/sessions/{sessionId}/messages", admin(chatHandler.History))
	mux.Handle("POST /api/admin/testimonials", admin(testimonialHandler.Create))

	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics.Handler())
	}
	mux.Handle("/", SPA(d.StaticDir))

	return SecurityHeaders(RequestLogger(d.Metrics.Middleware(h.CORS(mux))))
}
