package endpoint

import (
	"errors"
	"fmt"
)

var (
	ErrMissingScheme       = errors.New("scheme is missing")
	ErrUnsupportedScheme   = errors.New("scheme is not supported")
	ErrMissingHost         = errors.New("host is missing")
	ErrInvalidHost         = errors.New("host is not valid")
	ErrMissingPathAndQuery = errors.New("request URL has no path and query")
	ErrNoProvider          = errors.New("no endpoint provider is configured for this operation")
	ErrInvalidRequest      = errors.New("request is not an HTTP request")
)

// ConfigError signals that the endpoint or the request handed to it was
// malformed. It is raised before anything is sent.
type ConfigError struct {
	Value string
	Err   error
}

func (err *ConfigError) Error() string {
	if err.Value == "" {
		return fmt.Sprintf("endpoint misconfiguration: %v", err.Err)
	}

	return fmt.Sprintf("endpoint misconfiguration for %q: %v", err.Value, err.Err)
}

func (err *ConfigError) Unwrap() error {
	return err.Err
}

func IsConfigError(err error) bool {
	var configErr *ConfigError

	return errors.As(err, &configErr)
}
