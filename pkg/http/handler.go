package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/klwxsrx/securite-service/pkg/strings"
)

const (
	ErrorCodeBadRequest  = "bad_request"
	ErrorCodeNotFound    = "not_found"
	ErrorCodeServerError = "server_error"
)

type (
	HandlerFunc func(w ResponseWriter, r *http.Request) error

	Handler interface {
		Method() string
		Path() string
		Handle(w ResponseWriter, r *http.Request) error
	}

	ResponseWriter interface {
		SetHeader(key, value string) ResponseWriter
		SetStatusCode(httpCode int) ResponseWriter
		SetJSONBody(data any) ResponseWriter
	}

	// ErrorOut is the body of every failed response.
	ErrorOut struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
)

type responseWriter struct {
	impl     http.ResponseWriter
	body     any
	hasBody  bool
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	httpCode := w.httpCode
	switch {
	case errors.Is(err, ErrParsingError):
		httpCode = http.StatusBadRequest
	case err != nil && httpCode < http.StatusBadRequest:
		httpCode = http.StatusInternalServerError
	}

	meta := getHandlerMetadata(ctx)
	meta.Error = err

	var body []byte
	if err != nil {
		body, _ = json.Marshal(newErrorOut(httpCode, err))
	} else if w.hasBody {
		var encodeErr error
		body, encodeErr = json.Marshal(w.body)
		if encodeErr != nil {
			meta.Error = fmt.Errorf("encode body: %w", encodeErr)
			httpCode = http.StatusInternalServerError
			body, _ = json.Marshal(newErrorOut(httpCode, meta.Error))
		}
	}

	meta.Code = httpCode
	writeRaw(w.impl, httpCode, body)
}

func (w *responseWriter) WritePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &p

	body, _ := json.Marshal(newErrorOut(http.StatusInternalServerError, nil))
	writeRaw(w.impl, http.StatusInternalServerError, body)
}

func writeRaw(w http.ResponseWriter, httpCode int, body []byte) {
	if len(body) > 0 {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(httpCode)
	if len(body) > 0 {
		_, _ = w.Write(body)
	}
}

// newErrorOut hides the error text of server errors.
func newErrorOut(httpCode int, err error) ErrorOut {
	switch {
	case httpCode >= http.StatusInternalServerError || err == nil:
		return ErrorOut{Code: ErrorCodeServerError, Message: "internal server error"}
	case httpCode == http.StatusBadRequest:
		return ErrorOut{Code: ErrorCodeBadRequest, Message: err.Error()}
	case httpCode == http.StatusNotFound:
		return ErrorOut{Code: ErrorCodeNotFound, Message: err.Error()}
	default:
		return ErrorOut{Code: strings.ToSnakeCase(http.StatusText(httpCode)), Message: err.Error()}
	}
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}
