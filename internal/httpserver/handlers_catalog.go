package httpserver

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzip"
	"github.com/zeebo/blake3"

	"github.com/krabicezpapundeklu/kitman/internal/catalog"
	"github.com/krabicezpapundeklu/kitman/internal/store"
)

func (s *Server) GetCatalog(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	st, err := s.db.FindStream(name)
	if err != nil {
		renderError(w, err)
		return
	}

	graph := store.NewGraph(s.db)

	headTag, _, err := graph.LastTag(st.Head)
	if err != nil {
		renderError(w, err)
		return
	}

	tags := catalog.PrepareTags(append([]string(nil), r.URL.Query()["from"]...), headTag)

	key := cacheKey(name, s.generation(name), tags)

	body, ok := s.cache.Get(key)
	if !ok {
		cat, err := catalog.Generate(graph, st.Head, tags)
		if err != nil {
			renderError(w, err)
			return
		}

		var buf bytes.Buffer
		if err := catalog.WriteXML(&buf, cat); err != nil {
			renderError(w, err)
			return
		}

		body = buf.Bytes()
		s.cache.SetWithTTL(key, body, int64(len(body)), 0)
	}

	etag := fmt.Sprintf(`"%x"`, blake3.Sum256(body))

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")

	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		defer gz.Close()
		_, _ = gz.Write(body)
		return
	}

	_, _ = w.Write(body)
}

func cacheKey(stream string, generation uint64, tags []string) string {
	return fmt.Sprintf("%s@%d:%s", stream, generation, strings.Join(tags, ","))
}
