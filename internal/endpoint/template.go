package endpoint

import (
	"fmt"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"reflect"
)

// Template computes an endpoint's host from an expression over the
// "service" and "region" variables, e.g.
//
//	service + "." + region + ".amazonaws.com.cn"
type Template struct {
	scheme  string
	source  string
	program *vm.Program
}

func NewTemplate(scheme string, source string) (*Template, error) {
	if scheme == "" {
		scheme = "https"
	}

	if !supportedSchemes.ContainsOne(scheme) {
		return nil, &ConfigError{Value: source, Err: fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)}
	}

	program, err := expr.Compile(source, expr.Env(templateEnv("", "")), expr.AsKind(reflect.String))
	if err != nil {
		return nil, &ConfigError{Value: source, Err: fmt.Errorf("failed to compile host expression: %w", err)}
	}

	return &Template{
		scheme:  scheme,
		source:  source,
		program: program,
	}, nil
}

func (template *Template) Endpoint(service string, region string) (*Endpoint, error) {
	result, err := expr.Run(template.program, templateEnv(service, region))
	if err != nil {
		return nil, &ConfigError{Value: template.source,
			Err: fmt.Errorf("failed to evaluate host expression: %w", err)}
	}

	host, ok := result.(string)
	if !ok {
		return nil, &ConfigError{Value: template.source,
			Err: fmt.Errorf("host expression should've evaluated to string, got %T instead", result)}
	}

	return fromHost(template.scheme, host)
}

func templateEnv(service string, region string) map[string]any {
	return map[string]any{
		"service": service,
		"region":  region,
	}
}
