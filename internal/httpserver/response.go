package httpserver

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/krabicezpapundeklu/kitman/internal/catalog"
	"github.com/krabicezpapundeklu/kitman/internal/store"
)

const jsonMIME = "application/json"

// ResponseWriter tracks status code and bytes written for the access log.
type ResponseWriter struct {
	http.ResponseWriter
	written    int64
	statusCode int
	remoteAddr string
}

// NewResponseWriter wraps w, capturing r's client address up front.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, statusCode: http.StatusOK, remoteAddr: parseRemoteAddress(r)}
}

func (w *ResponseWriter) Write(data []byte) (int, error) {
	n, err := w.ResponseWriter.Write(data)
	w.written += int64(n)
	return n, err
}

func (w *ResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *ResponseWriter) StatusCode() int { return w.statusCode }
func (w *ResponseWriter) Written() int64  { return w.written }
func (w *ResponseWriter) RemoteAddr() string { return w.remoteAddr }

func parseRemoteAddress(r *http.Request) string {
	if addr := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); addr != "" {
		return strings.TrimSpace(strings.Split(addr, ",")[0])
	}

	if addr := strings.TrimSpace(r.Header.Get("X-Real-Ip")); addr != "" {
		return addr
	}

	addr, _, _ := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	return addr
}

// errorCode is the JSON error envelope shape.
type errorCode struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func renderFailure(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", jsonMIME)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorCode{Code: code, Message: message})
}

// renderError maps a core/store error to an HTTP status, per SPEC_FULL.md §6.2.
func renderError(w http.ResponseWriter, err error) {
	switch {
	case catalog.IsErrUnknownTag(err), store.IsErrStreamNotFound(err):
		renderFailure(w, http.StatusNotFound, "not_found", err.Error())
	case store.IsErrStreamExists(err), store.IsErrTagExists(err):
		renderFailure(w, http.StatusConflict, "conflict", err.Error())
	case catalog.IsErrGraphInconsistent(err):
		renderFailure(w, http.StatusInternalServerError, "graph_inconsistent", err.Error())
	case catalog.IsErrStorageFailure(err):
		renderFailure(w, http.StatusServiceUnavailable, "storage_failure", err.Error())
	default:
		renderFailure(w, http.StatusBadRequest, "bad_request", err.Error())
	}
}

func jsonEncode(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", jsonMIME)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
