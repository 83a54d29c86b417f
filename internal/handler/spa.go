package handler

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"
)

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/") || p == "/metrics"
}

// SPA serves the built single-page app from dir. Paths that are not files
// get index.html so client-side routes such as /admin work on reload.
// Unknown /api/ paths get a JSON 404. With an empty dir every path is a 404.
func SPA(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if dir == "" || isAPIPath(r.URL.Path) {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}

		clean := path.Clean("/" + r.URL.Path)
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(clean)))
		if err == nil && !info.IsDir() && clean != "/index.html" {
			if strings.HasPrefix(clean, "/assets/") {
				w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			}
			files.ServeHTTP(w, r)
			return
		}

		serveIndex(w, r, filepath.Join(dir, "index.html"))
	})
}

// serveIndex writes index.html with a CSP that also allows the page's own
// inline scripts (the build's inlined runtime chunk) by hash.
func serveIndex(w http.ResponseWriter, r *http.Request, name string) {
	page, err := os.ReadFile(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if hashes := inlineScriptHashes(page); len(hashes) > 0 {
		w.Header().Set("Content-Security-Policy", contentSecurityPolicy(hashes...))
	}
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(page))
}

// inlineScriptHashes returns a 'sha256-...' source expression for every
// inline <script> body in page. Scripts with a src attribute are skipped.
func inlineScriptHashes(page []byte) []string {
	var hashes []string
	z := html.NewTokenizer(bytes.NewReader(page))
	inScript := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			return hashes
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			inScript = string(name) == "script" && !hasSrcAttr(z, hasAttr)
		case html.TextToken:
			if !inScript {
				continue
			}
			sum := sha256.Sum256(z.Text())
			hashes = append(hashes, "'sha256-"+base64.StdEncoding.EncodeToString(sum[:])+"'")
		case html.EndTagToken:
			inScript = false
		}
	}
}

func hasSrcAttr(z *html.Tokenizer, more bool) bool {
	for more {
		var key []byte
		key, _, more = z.TagAttr()
		if string(key) == "src" {
			return true
		}
	}
	return false
}
