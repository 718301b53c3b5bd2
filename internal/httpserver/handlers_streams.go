package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/krabicezpapundeklu/kitman/internal/store"
)

type streamView struct {
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
	Head   int64  `json:"head,omitempty"`
}

func toStreamView(s store.Stream) streamView {
	return streamView{Name: s.Name, Parent: s.Parent, Head: s.Head}
}

func (s *Server) ListStreams(w http.ResponseWriter, r *http.Request) {
	streams, err := s.db.ListStreams()
	if err != nil {
		renderError(w, err)
		return
	}

	views := make([]streamView, 0, len(streams))
	for _, st := range streams {
		views = append(views, toStreamView(st))
	}

	jsonEncode(w, views)
}

type createStreamRequest struct {
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
}

func (s *Server) CreateStream(w http.ResponseWriter, r *http.Request) {
	var req createStreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, err)
		return
	}

	st, err := s.db.CreateStream(req.Name, req.Parent)
	if err != nil {
		renderError(w, err)
		return
	}

	jsonEncode(w, toStreamView(*st))
}

func (s *Server) DeleteStream(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := s.db.DeleteStream(name); err != nil {
		renderError(w, err)
		return
	}

	s.bumpGeneration(name)
	w.WriteHeader(http.StatusNoContent)
}
