package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/swiftmove/backend/internal/content"
)

// LegalHandler handles GET /api/legal/{type}.
type LegalHandler struct {
	docsDir string
}

// NewLegalHandler creates a LegalHandler. Files in docsDir (LEGAL_DOCS_DIR)
// override the built-in documents; docsDir may be empty.
func NewLegalHandler(docsDir string) *LegalHandler {
	return &LegalHandler{docsDir: docsDir}
}

// Legal returns the Markdown of a footer document (privacy, terms, license).
func (h *LegalHandler) Legal(w http.ResponseWriter, r *http.Request) {
	docType := r.PathValue("type")

	// 許可リスト照合より前にトラバーサル文字を弾く
	if strings.ContainsAny(docType, `/\`) || strings.Contains(docType, "..") {
		writeError(w, http.StatusBadRequest, "Invalid document name")
		return
	}

	data, err := content.LegalDocument(h.docsDir, docType)
	if errors.Is(err, content.ErrUnknownDocument) {
		writeError(w, http.StatusNotFound, "Document not found")
		return
	}
	if err != nil {
		writeServiceError(w, r, err, "Document")
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
