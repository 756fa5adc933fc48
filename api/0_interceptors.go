package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/fulldump/box"
	"github.com/google/uuid"

	"github.com/xether-ai/apidocs/client"
	"github.com/xether-ai/apidocs/reference"
	"github.com/xether-ai/apidocs/service"
)

func AccessLog(l *log.Logger) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			r := box.GetRequest(ctx)
			requestId := uuid.NewString()
			box.GetResponse(ctx).Header().Set("X-Request-Id", requestId)
			now := time.Now()
			defer func() {
				l.Println(now.UTC().Format(time.RFC3339Nano), requestId, formatRemoteAddr(r), r.Method, r.URL.String(), time.Since(now))
			}()

			next(ctx)
		}
	}
}

func formatRemoteAddr(r *http.Request) string {
	xorigin := strings.TrimSpace(strings.Split(
		r.Header.Get("X-Forwarded-For"), ",")[0])
	if xorigin != "" {
		return xorigin
	}

	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	return host
}

func RecoverFromPanic(next box.H) box.H {
	return func(ctx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				debug.PrintStack()
				w := box.GetResponse(ctx)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{
						"message":     "internal server error",
						"description": "Unexpected error",
					},
				})
			}
		}()
		next(ctx)
	}
}

// PrettyErrorInterceptor maps handler errors to status codes: unknown
// changelog or endpoint → 404, upstream spec failures → 502, malformed
// request JSON → 400, everything else → 500.
func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		if errors.Is(err, client.ErrChangelogNotConfigured) || errors.Is(err, service.ErrEndpointNotFound) {
			writeError(w, http.StatusNotFound, err.Error(), "not found")
			return
		}

		fetchErr := &client.FetchError{}
		if errors.As(err, &fetchErr) {
			writeError(w, http.StatusBadGateway, err.Error(), "failed to load the API specification")
			return
		}

		parseErr := &client.ParseError{}
		if errors.As(err, &parseErr) || errors.Is(err, reference.ErrInvalidDocument) {
			writeError(w, http.StatusBadGateway, err.Error(), "the API specification could not be read")
			return
		}

		if err == box.ErrResourceNotFound {
			writeError(w, http.StatusNotFound, err.Error(), "resource '"+box.GetRequest(ctx).URL.String()+"' not found")
			return
		}

		if err == box.ErrMethodNotAllowed {
			writeError(w, http.StatusMethodNotAllowed, err.Error(), "method '"+box.GetRequest(ctx).Method+"' not allowed")
			return
		}

		if _, ok := err.(*json.SyntaxError); ok {
			writeError(w, http.StatusBadRequest, err.Error(), "Malformed JSON")
			return
		}

		writeError(w, http.StatusInternalServerError, err.Error(), "Unexpected error")
	}
}

func writeError(w http.ResponseWriter, status int, message, description string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message":     message,
			"description": description,
		},
	})
}
