package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func overrideResult(t *testing.T, method string, form url.Values) string {
	t.Helper()

	var seen string
	handler := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Method
	}))

	req := httptest.NewRequest(method, "/equipment/delete", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	return seen
}

func TestMethodOverride(t *testing.T) {
	assert.Equal(t, http.MethodDelete, overrideResult(t, http.MethodPost, url.Values{"_method": {"DELETE"}}))
	assert.Equal(t, http.MethodPut, overrideResult(t, http.MethodPost, url.Values{"_method": {"put"}}))
	assert.Equal(t, http.MethodPost, overrideResult(t, http.MethodPost, url.Values{"action": {"delete"}}))
	// Only POST bodies are rewritten.
	assert.Equal(t, http.MethodGet, overrideResult(t, http.MethodGet, url.Values{"_method": {"DELETE"}}))
	// Unknown verbs are ignored.
	assert.Equal(t, http.MethodPost, overrideResult(t, http.MethodPost, url.Values{"_method": {"PATCH"}}))
}
