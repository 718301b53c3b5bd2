package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krabicezpapundeklu/kitman/internal/catalog"
	"github.com/krabicezpapundeklu/kitman/internal/store"
)

func TestRenderErrorMapsStatusCodes(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{&catalog.ErrUnknownTag{Tag: "v1"}, http.StatusNotFound},
		{&store.ErrStreamNotFound{Name: "x"}, http.StatusNotFound},
		{&store.ErrStreamExists{Name: "x"}, http.StatusConflict},
		{&store.ErrTagExists{Name: "x"}, http.StatusConflict},
		{&catalog.ErrGraphInconsistent{CommitID: 1, Reference: 2}, http.StatusInternalServerError},
		{&catalog.ErrStorageFailure{Op: "Commits"}, http.StatusServiceUnavailable},
	}

	for _, c := range cases {
		w := httptest.NewRecorder()
		renderError(w, c.err)
		assert.Equal(t, c.status, w.Code, c.err.Error())
	}
}

func TestCacheKeyChangesWithGenerationAndTags(t *testing.T) {
	a := cacheKey("main", 0, []string{"V1"})
	b := cacheKey("main", 1, []string{"V1"})
	c := cacheKey("main", 0, []string{"V2"})

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, cacheKey("main", 0, []string{"V1"}))
}
