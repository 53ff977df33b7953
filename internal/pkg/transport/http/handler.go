package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
)

// DecodeRequestFunc extracts a typed request from the incoming HTTP request.
type DecodeRequestFunc func(ctx context.Context, r *http.Request) (interface{}, error)

// EncodeResponseFunc writes the endpoint response to the HTTP response writer.
type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// MakeHandlerFunc glues an endpoint, a request decoder and a response encoder
// into a plain http.HandlerFunc. Decode and endpoint errors are rendered
// through ErrorResponse so transport callers get a consistent error body.
func MakeHandlerFunc(
	endpnt endpoint.Endpoint,
	decoder DecodeRequestFunc,
	encoder EncodeResponseFunc,
) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := decoder(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := endpnt(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := encoder(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}

// DecodeRequest binds the request body, path and query params into T
// using go-chi render. T must implement render.Binder on *T.
func DecodeRequest[T any](_ context.Context, req *http.Request) (interface{}, error) {
	var request T

	binder, ok := any(&request).(render.Binder)
	if !ok {
		return nil, fmt.Errorf("%T does not implement render.Binder", &request)
	}

	if err := render.Bind(req, binder); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	return &request, nil
}
