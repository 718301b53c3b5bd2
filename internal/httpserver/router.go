package httpserver

import (
	"net/http"

	"github.com/gorilla/mux"
)

// routes mirrors the route table the original prototype declared but in
// several cases left unimplemented (commit_files, create_tag, get_catalog,
// get_commits, get_paths, merge) — every one is implemented here.
func (s *Server) routes(r *mux.Router) {
	r.HandleFunc("/streams", s.ListStreams).Methods(http.MethodGet)
	r.HandleFunc("/streams", s.CreateStream).Methods(http.MethodPost)
	r.HandleFunc("/streams/{name}", s.DeleteStream).Methods(http.MethodDelete)
	r.HandleFunc("/streams/{name}/commits", s.ListCommits).Methods(http.MethodGet)
	r.HandleFunc("/streams/{name}/commits", s.CreateCommit).Methods(http.MethodPost)
	r.HandleFunc("/streams/{name}/merge", s.MergeStream).Methods(http.MethodPost)
	r.HandleFunc("/streams/{name}/paths", s.ListUpgradePaths).Methods(http.MethodGet)
	r.HandleFunc("/streams/{name}/tags", s.CreateTag).Methods(http.MethodPost)
	r.HandleFunc("/streams/{name}/catalog", s.GetCatalog).Methods(http.MethodGet)
}
