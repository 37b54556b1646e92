package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// setupStatic serves the built frontend bundle. Unknown non-API paths fall
// back to index.html so client-side routing keeps working after a refresh.
func (s *Server) setupStatic() {
	fileServer := http.FileServer(http.Dir(s.staticDir))
	indexPath := filepath.Join(s.staticDir, "index.html")

	s.Router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}

		requested := filepath.Join(s.staticDir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, indexPath)
	})
}
