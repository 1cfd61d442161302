package client

import (
	"context"
	"fmt"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/cirruslabs/pinpoint/internal/endpoint"
	"net/url"
)

func APIOption(provider endpoint.Provider) func(*middleware.Stack) error {
	return func(stack *middleware.Stack) error {
		return endpoint.AddToStack(stack, provider)
	}
}

func Rewrite(ctx context.Context, provider endpoint.Provider, requestURL *url.URL) (*url.URL, error) {
	stack := middleware.NewStack("Rewrite", smithyhttp.NewStackRequest)

	err := stack.Serialize.Add(middleware.SerializeMiddlewareFunc("SerializeURL", func(
		ctx context.Context,
		in middleware.SerializeInput,
		next middleware.SerializeHandler,
	) (middleware.SerializeOutput, middleware.Metadata, error) {
		request, ok := in.Request.(*smithyhttp.Request)
		if !ok {
			return middleware.SerializeOutput{}, middleware.Metadata{},
				fmt.Errorf("unknown request type %T", in.Request)
		}

		*request.URL = *requestURL

		return next.HandleSerialize(ctx, in)
	}), middleware.After)
	if err != nil {
		return nil, err
	}

	if err := endpoint.AddToStack(stack, provider); err != nil {
		return nil, err
	}

	var rewritten *url.URL

	handler := middleware.DecorateHandler(middleware.HandlerFunc(func(
		_ context.Context,
		input interface{},
	) (interface{}, middleware.Metadata, error) {
		request, ok := input.(*smithyhttp.Request)
		if !ok {
			return nil, middleware.Metadata{}, fmt.Errorf("unknown request type %T", input)
		}

		rewrittenURL := *request.URL
		rewritten = &rewrittenURL

		return nil, middleware.Metadata{}, nil
	}), stack)

	if _, _, err := handler.Handle(ctx, struct{}{}); err != nil {
		return nil, err
	}

	return rewritten, nil
}
