package httpserver

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
)

//go:embed webroot
var embeddedWebRoot embed.FS

// mountEmbeddedWebRoot serves the bundled catalog-browser UI when no
// external WebRoot directory is configured. This replaces the original
// prototype's build-time static-asset generator with go:embed, the
// idiomatic Go equivalent.
func (s *Server) mountEmbeddedWebRoot(r *mux.Router) {
	sub, err := fs.Sub(embeddedWebRoot, "webroot")
	if err != nil {
		panic(err)
	}

	r.PathPrefix("/").Handler(http.FileServer(http.FS(sub)))
}
