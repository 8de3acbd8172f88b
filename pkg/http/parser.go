package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/securite-service/pkg/strings"
)

type (
	// DataExtractor values may be of any type supported by strings.ParseTypedValue, enumerations included.
	DataExtractor[T any] func(dataProvider) (T, error)

	dataProvider interface {
		PathParameters() map[string]string
		QueryParameters() url.Values
		Body() io.ReadCloser
	}

	requestDataProvider struct {
		*http.Request
	}
)

var (
	ErrParsingError = errors.New("parsing error")

	errParameterNotFound = errors.New("parameter not found")
)

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(requestDataProvider{r})
}

// ParseRequestOptional returns nil when the value is absent and an error when it is present but malformed.
func ParseRequestOptional[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (*T, error) {
	if lastErr != nil {
		return nil, lastErr
	}

	result, err := extractor(requestDataProvider{r})
	if errors.Is(err, errParameterNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func PathParameter[T any](param string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		paramValue, ok := p.PathParameters()[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: %w: path parameter %s", ErrParsingError, errParameterNotFound, param)
		}

		return parseTypedValueImpl[T](param, paramValue)
	}
}

func QueryParameter[T any](param string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		value := p.QueryParameters().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("%w: %w: query parameter %s", ErrParsingError, errParameterNotFound, param)
		}

		return parseTypedValueImpl[T](param, value)
	}
}

func QueryParameters[T any](param string) DataExtractor[[]T] {
	return func(p dataProvider) ([]T, error) {
		values, ok := p.QueryParameters()[param]
		if !ok {
			return nil, fmt.Errorf("%w: %w: query parameter %s", ErrParsingError, errParameterNotFound, param)
		}

		result := make([]T, 0, len(values))
		for _, value := range values {
			concreteValue, err := parseTypedValueImpl[T](param, value)
			if err != nil {
				return nil, err
			}
			result = append(result, concreteValue)
		}

		return result, nil
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		var result T
		err := json.NewDecoder(p.Body()).Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func (p requestDataProvider) PathParameters() map[string]string {
	return mux.Vars(p.Request)
}

func (p requestDataProvider) QueryParameters() url.Values {
	return p.Request.URL.Query()
}

func (p requestDataProvider) Body() io.ReadCloser {
	return p.Request.Body
}

func parseTypedValueImpl[T any](name, value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err == nil {
		return v, nil
	}

	return v, fmt.Errorf("%w: %s: %w", ErrParsingError, name, err)
}
