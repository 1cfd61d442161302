package endpoint

import (
	"context"
	"fmt"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	MiddlewareID         = "PinpointEndpoint"
	ProviderMiddlewareID = "PinpointEndpointProvider"

	// sdkResolveEndpointID is the finalize step in which SDK v2 clients
	// resolve their own endpoint
	sdkResolveEndpointID = "ResolveEndpointV2"
)

// Middleware applies the operation's configured Provider to the outgoing
// request URL. It can be registered either as a finalize or a build step.
type Middleware struct{}

func (Middleware) ID() string {
	return MiddlewareID
}

func (Middleware) HandleFinalize(
	ctx context.Context,
	in middleware.FinalizeInput,
	next middleware.FinalizeHandler,
) (out middleware.FinalizeOutput, metadata middleware.Metadata, err error) {
	if err := rewrite(ctx, in.Request); err != nil {
		return out, metadata, err
	}

	return next.HandleFinalize(ctx, in)
}

func (Middleware) HandleBuild(
	ctx context.Context,
	in middleware.BuildInput,
	next middleware.BuildHandler,
) (out middleware.BuildOutput, metadata middleware.Metadata, err error) {
	if err := rewrite(ctx, in.Request); err != nil {
		return out, metadata, err
	}

	return next.HandleBuild(ctx, in)
}

// AddToStack makes every operation executed through the stack use the
// provider's endpoint.
//
// On SDK client stacks the rewrite runs right after the SDK's own endpoint
// resolution and before retries and signing. Stacks without that step get
// the rewrite at the end of the build step.
func AddToStack(stack *middleware.Stack, provider Provider) error {
	if provider == nil {
		return &ConfigError{Err: ErrNoProvider}
	}

	providerMiddleware := middleware.InitializeMiddlewareFunc(ProviderMiddlewareID, func(
		ctx context.Context,
		in middleware.InitializeInput,
		next middleware.InitializeHandler,
	) (middleware.InitializeOutput, middleware.Metadata, error) {
		return next.HandleInitialize(WithProvider(ctx, provider), in)
	})

	if err := stack.Initialize.Add(providerMiddleware, middleware.Before); err != nil {
		return err
	}

	if _, ok := stack.Finalize.Get(sdkResolveEndpointID); ok {
		return stack.Finalize.Insert(Middleware{}, sdkResolveEndpointID, middleware.After)
	}

	return stack.Build.Add(Middleware{}, middleware.After)
}

func rewrite(ctx context.Context, in interface{}) error {
	request, ok := in.(*smithyhttp.Request)
	if !ok {
		return &ConfigError{Err: fmt.Errorf("%w: unknown request type %T", ErrInvalidRequest, in)}
	}

	provider, ok := GetProvider(ctx)
	if !ok {
		return &ConfigError{Err: ErrNoProvider}
	}

	debug := zap.L().Core().Enabled(zapcore.DebugLevel)

	var from string

	if debug {
		from = request.URL.Redacted()
	}

	if err := provider.SetEndpoint(request.URL); err != nil {
		return err
	}

	if debug {
		zap.S().With(
			"service", awsmiddleware.GetServiceID(ctx),
			"operation", awsmiddleware.GetOperationName(ctx),
		).Debugf("rewrote request URL %s to %s", from, request.URL.Redacted())
	}

	return nil
}
