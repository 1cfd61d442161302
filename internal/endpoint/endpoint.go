package endpoint

import (
	"fmt"
	mapset "github.com/deckarep/golang-set/v2"
	"net/url"
	"strings"
)

//nolint:gochecknoglobals // read-only after initialization
var supportedSchemes = mapset.NewSet[string]("http", "https")

// Endpoint is an immutable scheme and authority pair. It is safe
// for concurrent use by any number of requests.
type Endpoint struct {
	url *url.URL
}

// FromServiceRegion returns the conventional AWS endpoint for the service in
// the given region, i.e. https://{service}.{region}.amazonaws.com.
func FromServiceRegion(service string, region string) (*Endpoint, error) {
	return fromHost("https", fmt.Sprintf("%s.%s.amazonaws.com", service, region))
}

func MustFromServiceRegion(service string, region string) *Endpoint {
	endpoint, err := FromServiceRegion(service, region)
	if err != nil {
		panic(err)
	}

	return endpoint
}

func FromURL(u *url.URL) (*Endpoint, error) {
	if u == nil {
		return nil, &ConfigError{Err: ErrMissingHost}
	}

	if u.Scheme == "" {
		return nil, &ConfigError{Value: u.Redacted(), Err: ErrMissingScheme}
	}

	scheme := strings.ToLower(u.Scheme)

	if !supportedSchemes.ContainsOne(scheme) {
		return nil, &ConfigError{Value: u.Redacted(), Err: fmt.Errorf("%w: %s", ErrUnsupportedScheme, u.Scheme)}
	}

	if u.Host == "" {
		return nil, &ConfigError{Value: u.Redacted(), Err: ErrMissingHost}
	}

	endpointURL := *u
	endpointURL.Scheme = scheme

	if u.User != nil {
		user := *u.User
		endpointURL.User = &user
	}

	if endpointURL.Path == "" {
		endpointURL.Path = "/"
		endpointURL.RawPath = ""
	}

	return &Endpoint{
		url: &endpointURL,
	}, nil
}

func Parse(rawURL string) (*Endpoint, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &ConfigError{Value: rawURL, Err: err}
	}

	return FromURL(u)
}

func MustParse(rawURL string) *Endpoint {
	endpoint, err := Parse(rawURL)
	if err != nil {
		panic(err)
	}

	return endpoint
}

// URL returns a copy of the underlying URL.
func (endpoint *Endpoint) URL() *url.URL {
	u := *endpoint.url

	if endpoint.url.User != nil {
		user := *endpoint.url.User
		u.User = &user
	}

	return &u
}

func (endpoint *Endpoint) String() string {
	return endpoint.url.String()
}

// Apply returns a new URL with the endpoint's scheme and authority
// and the path and query of requestURL.
func (endpoint *Endpoint) Apply(requestURL *url.URL) (*url.URL, error) {
	if requestURL == nil || requestURL.Opaque != "" {
		var value string

		if requestURL != nil {
			value = requestURL.Redacted()
		}

		return nil, &ConfigError{Value: value, Err: ErrMissingPathAndQuery}
	}

	result := &url.URL{
		Scheme:     endpoint.url.Scheme,
		Host:       endpoint.url.Host,
		Path:       requestURL.Path,
		RawPath:    requestURL.RawPath,
		RawQuery:   requestURL.RawQuery,
		ForceQuery: requestURL.ForceQuery,
	}

	if endpoint.url.User != nil {
		user := *endpoint.url.User
		result.User = &user
	}

	// An authority must be followed by an absolute path
	if !strings.HasPrefix(result.Path, "/") {
		result.Path = "/" + result.Path

		if result.RawPath != "" {
			result.RawPath = "/" + result.RawPath
		}
	}

	return result, nil
}

func (endpoint *Endpoint) SetEndpoint(requestURL *url.URL) error {
	newURL, err := endpoint.Apply(requestURL)
	if err != nil {
		return err
	}

	*requestURL = *newURL

	return nil
}

func fromHost(scheme string, host string) (*Endpoint, error) {
	rawURL := fmt.Sprintf("%s://%s", scheme, host)

	if host == "" || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") ||
		strings.Contains(host, "..") {
		return nil, &ConfigError{Value: rawURL, Err: ErrInvalidHost}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &ConfigError{Value: rawURL, Err: fmt.Errorf("%w: %v", ErrInvalidHost, err)}
	}

	// Characters like "/", "?" or "@" would silently move parts
	// of the host into other URL components
	if u.Host != host || u.User != nil || u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return nil, &ConfigError{Value: rawURL, Err: ErrInvalidHost}
	}

	return FromURL(u)
}
