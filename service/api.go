package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lucsky/cuid"
	"github.com/truemediaorg/videolink/model"
	"github.com/truemediaorg/videolink/web"

	log "github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-Id"

type requestIDKey struct{}

type MediaResolver interface {
	Resolve(ctx context.Context, req model.ResolutionRequest) (string, error)
}

type APIServer struct {
	Server http.Server
}

func NewAPIServer(port int, resolver MediaResolver) *APIServer {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(assignRequestID)
	router.Use(logRequests)
	router.Use(recoverJSON)
	router.Use(allowAnyOrigin)

	router.Get("/", handleIndex())
	router.Get("/healthz", handleHealthcheck())
	router.Route("/api", func(r chi.Router) {
		// resolved URLs are signed and short-lived
		r.Use(middleware.NoCache)
		r.Get("/download", handleDownload(resolver))
	})

	return &APIServer{
		Server: http.Server{
			Addr:    fmt.Sprintf("0.0.0.0:%d", port),
			Handler: router,
		},
	}
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func handleDownload(resolver MediaResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := model.ParseResolutionRequest(r.URL.Query().Get("url"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		videoURL, err := resolver.Resolve(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, model.ResultFound(videoURL))
	}
}

func handleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(web.Index)
	}
}

func handleHealthcheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("received healthcheck request")
		// This will have a status of 200
		fmt.Fprintf(w, "all good in the hood")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := describeError(err)
	entry := log.WithField("requestID", RequestIDFromContext(r.Context())).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.WithError(err).Error("request failed")
	} else {
		entry.Info(msg)
	}
	writeJSON(w, status, model.ResultFailed(msg))
}

func writeJSON(w http.ResponseWriter, status int, body model.ResolutionResult) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	// media URLs are full of query strings; keep & readable
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(body); err != nil {
		log.Warnf("unable to write response: %v", err)
	}
}

// The download endpoint is public and read-only, so any origin may call it.
func allowAnyOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func assignRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := cuid.New()
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.WithField("requestID", RequestIDFromContext(r.Context())).
			WithField("method", r.Method).
			WithField("path", r.URL.Path).
			WithField("status", ww.Status()).
			WithField("remote", r.RemoteAddr).
			WithField("duration", time.Since(start)).
			Debug("handled request")
	})
}

// recoverJSON turns a panic in a handler into the same JSON error shape as every other
// failure.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			msg := internalErrorMsg
			if err, ok := rec.(error); ok && err.Error() != "" {
				msg = err.Error()
			}
			log.WithField("requestID", RequestIDFromContext(r.Context())).Errorf("recovered from panic: %v", rec)
			writeJSON(w, http.StatusInternalServerError, model.ResultFailed(msg))
		}()
		next.ServeHTTP(w, r)
	})
}
