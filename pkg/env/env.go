package env

import (
	"fmt"
	"os"

	"github.com/klwxsrx/securite-service/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}

	return val
}

func Parse[T strings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var result T
		return result, fmt.Errorf("env %s with type %T not found", key, result)
	}

	return parseImpl[T](key, str)
}

// ParseOptional returns nil when the variable is not set or empty.
func ParseOptional[T strings.SupportedValueParsingTypes](key string) (*T, error) {
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return nil, nil
	}

	result, err := parseImpl[T](key, str)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func ParseWithDefault[T strings.SupportedValueParsingTypes](key string, defaultValue T) (T, error) {
	result, err := ParseOptional[T](key)
	if err != nil {
		return defaultValue, err
	}
	if result == nil {
		return defaultValue, nil
	}

	return *result, nil
}

func parseImpl[T strings.SupportedValueParsingTypes](key, str string) (T, error) {
	result, err := strings.ParseTypedValue[T](str)
	if err != nil {
		return result, fmt.Errorf("env %s with type %T has invalid value: %w", key, result, err)
	}

	return result, nil
}
