package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/klwxsrx/securite-service/pkg/log"
	"github.com/klwxsrx/securite-service/pkg/observability"
)

const (
	HealthPath             = "/healthz"
	DefaultRequestIDHeader = "X-Request-ID"
)

func WithMW(mw ServerMiddleware) ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.MiddlewareFunc(mw))
	}
}

func WithHealthCheck(customHandlerFunc http.HandlerFunc) ServerOption {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		})
	}
	if customHandlerFunc != nil {
		handler = customHandlerFunc
	}

	return func(router *mux.Router) {
		router.
			Name(getRouteName(http.MethodGet, HealthPath)).
			Methods(http.MethodGet).
			Path(HealthPath).
			HandlerFunc(handler)
	}
}

// WithJSONNotFound answers unknown routes and methods with the common error body.
func WithJSONNotFound() ServerOption {
	return func(router *mux.Router) {
		router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := json.Marshal(ErrorOut{Code: ErrorCodeNotFound, Message: "route " + r.URL.Path + " not found"})
			writeRaw(w, http.StatusNotFound, body)
		})
		router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := json.Marshal(ErrorOut{Code: "method_not_allowed", Message: "method " + r.Method + " not allowed"})
			writeRaw(w, http.StatusMethodNotAllowed, body)
		})
	}
}

func WithCORSHandler() ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.CORSMethodMiddleware(router))
	}
}

// WithObservability takes the request id from the header or generates a new one.
func WithObservability(observer observability.Observer, requestIDHeader string) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, requestID)
			handler.ServeHTTP(w, r.WithContext(observer.WithRequestID(r.Context(), requestID)))
		})
	})
}

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)
			if r.URL.Path == HealthPath {
				return
			}

			meta := getHandlerMetadata(r.Context())
			requestLogger := logger.With(log.Fields{
				"route":        getRouteName(r.Method, r.URL.Path),
				"method":       r.Method,
				"uri":          r.RequestURI,
				"responseCode": meta.Code,
			})

			switch {
			case meta.Panic != nil:
				requestLogger.
					WithField("panic", log.Fields{
						"message": meta.Panic.Message,
						"stack":   string(meta.Panic.Stacktrace),
					}).
					Log(r.Context(), errorLevel, "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				requestLogger.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with internal error")
			default:
				requestLogger.WithError(meta.Error).Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}
