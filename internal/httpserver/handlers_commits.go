package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/krabicezpapundeklu/kitman/internal/store"
)

type fileView struct {
	Path     string `json:"path"`
	IsDelete bool   `json:"is_delete,omitempty"`
}

type commitView struct {
	ID        int64  `json:"id"`
	Parent    int64  `json:"parent,omitempty"`
	MergeFrom int64  `json:"merge_from,omitempty"`
	Comment   string `json:"comment"`
}

func toCommitView(c store.Commit) commitView {
	return commitView{ID: c.ID, Parent: c.Parent, MergeFrom: c.MergeFrom, Comment: c.Comment}
}

func (s *Server) ListCommits(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	st, err := s.db.FindStream(name)
	if err != nil {
		renderError(w, err)
		return
	}

	commits, err := s.db.ListCommits(st.Head)
	if err != nil {
		renderError(w, err)
		return
	}

	views := make([]commitView, 0, len(commits))
	for _, c := range commits {
		views = append(views, toCommitView(c))
	}

	jsonEncode(w, views)
}

type createCommitRequest struct {
	Comment string     `json:"comment"`
	Files   []fileView `json:"files"`
}

func (s *Server) CreateCommit(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req createCommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, err)
		return
	}

	files := make([]store.FileInput, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, store.FileInput{Path: f.Path, IsDelete: f.IsDelete})
	}

	c, err := s.db.CreateCommit(name, 0, req.Comment, files)
	if err != nil {
		renderError(w, err)
		return
	}

	s.bumpGeneration(name)
	jsonEncode(w, toCommitView(*c))
}

type mergeStreamRequest struct {
	From    string `json:"from"`
	Comment string `json:"comment,omitempty"`
}

func (s *Server) MergeStream(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req mergeStreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, err)
		return
	}

	source, err := s.db.FindStream(req.From)
	if err != nil {
		renderError(w, err)
		return
	}

	comment := req.Comment
	if comment == "" {
		comment = "merge from " + req.From
	}

	c, err := s.db.CreateCommit(name, source.Head, comment, nil)
	if err != nil {
		renderError(w, err)
		return
	}

	s.bumpGeneration(name)
	jsonEncode(w, toCommitView(*c))
}
