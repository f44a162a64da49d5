package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride rewrites POST requests carrying a _method form field to the
// verb it names, so HTML forms can issue PUT and DELETE. Must wrap the router
// itself: the rewrite has to happen before route matching.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			// ParseForm caches the parsed body on the request, later
			// form bindings reuse it.
			if err := r.ParseForm(); err == nil {
				switch strings.ToUpper(r.PostForm.Get("_method")) {
				case http.MethodPut:
					r.Method = http.MethodPut
				case http.MethodDelete:
					r.Method = http.MethodDelete
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
