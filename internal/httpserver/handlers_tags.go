package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/krabicezpapundeklu/kitman/internal/catalog"
	"github.com/krabicezpapundeklu/kitman/internal/store"
)

type createTagRequest struct {
	Name     string `json:"name"`
	CommitID int64  `json:"commit_id,omitempty"`
}

func (s *Server) CreateTag(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req createTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, err)
		return
	}

	commitID := req.CommitID
	if commitID == 0 {
		st, err := s.db.FindStream(name)
		if err != nil {
			renderError(w, err)
			return
		}

		commitID = st.Head
	}

	tag, err := s.db.CreateTag(req.Name, commitID)
	if err != nil {
		renderError(w, err)
		return
	}

	s.bumpGeneration(name)
	jsonEncode(w, tag)
}

func (s *Server) ListUpgradePaths(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	st, err := s.db.FindStream(name)
	if err != nil {
		renderError(w, err)
		return
	}

	tags, err := s.db.ListTags(st.Head)
	if err != nil {
		renderError(w, err)
		return
	}

	graph := store.NewGraph(s.db)

	lastTag, _, err := graph.LastTag(st.Head)
	if err != nil {
		renderError(w, err)
		return
	}

	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}

	catalog.SortTags(names, lastTag)
	jsonEncode(w, names)
}
