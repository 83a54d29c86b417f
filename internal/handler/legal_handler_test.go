package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func serveLegal(h *LegalHandler, target string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/legal/{type}", h.Legal)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestLegalHandler_BuiltInDocuments(t *testing.T) {
	h := NewLegalHandler("")
	for _, doc := range []string{"privacy", "terms", "license"} {
		rec := serveLegal(h, "/api/legal/"+doc)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", doc, rec.Code)
			continue
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/markdown; charset=utf-8" {
			t.Errorf("%s: unexpected Content-Type %q", doc, ct)
		}
		if !strings.HasPrefix(rec.Body.String(), "# ") {
			t.Errorf("%s: expected a Markdown heading, got %q", doc, rec.Body.String())
		}
	}
}

func TestLegalHandler_DocsDirOverrides(t *testing.T) {
	dir := t.TempDir()
	body := "# Terms of Service\n\nLocal edition."
	if err := os.WriteFile(filepath.Join(dir, "terms.md"), []byte(body), 0o644); err != nil {
		t.Fatalf("write terms.md: %v", err)
	}

	rec := serveLegal(NewLegalHandler(dir), "/api/legal/terms")
	if rec.Body.String() != body {
		t.Errorf("expected override body, got %q", rec.Body.String())
	}
}

func TestLegalHandler_Rejects(t *testing.T) {
	dir := t.TempDir()
	// a file outside the allowlist must stay unreachable
	if err := os.WriteFile(filepath.Join(dir, "secret.md"), []byte("secret"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	h := NewLegalHandler(filepath.Join(dir, "legal"))

	tests := []struct {
		target   string
		wantCode int
	}{
		{"/api/legal/secret", http.StatusNotFound},
		{"/api/legal/cookies", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := serveLegal(h, tt.target)
		if rec.Code != tt.wantCode {
			t.Errorf("%s: expected %d, got %d", tt.target, tt.wantCode, rec.Code)
		}
	}

	// mux はパスを正規化するかリダイレクトする。どちらでも 200 にはならない
	if rec := serveLegal(h, "/api/legal/..%2Fsecret"); rec.Code == http.StatusOK {
		t.Errorf("traversal must not succeed, got 200 with body %q", rec.Body.String())
	}
}

func TestLegalHandler_TraversalNames(t *testing.T) {
	h := NewLegalHandler(t.TempDir())
	for _, name := range []string{"../secret", "a/b", `..\secret`, ".."} {
		req := httptest.NewRequest(http.MethodGet, "/api/legal/x", nil)
		req.SetPathValue("type", name)
		rec := httptest.NewRecorder()
		h.Legal(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%q: expected 400, got %d", name, rec.Code)
		}
		if detail := decodeDetail(t, rec); detail != "Invalid document name" {
			t.Errorf("%q: unexpected detail %q", name, detail)
		}
	}
}
