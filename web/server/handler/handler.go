package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"

	"go.hackfix.me/agrodiag/web/server/types"
)

// Handle creates an HTTP handler function that processes requests through a
// configurable pipeline. It supports generic request/response types and runs
// request processing, response serialization and processing, and error
// handling automatically.
//
// It relies on reflection to create the typed request and response values,
// and on passing values between components using the request context.
func Handle[Req types.Request, Resp types.Response](
	handlerFn func(context.Context, Req) (Resp, error),
	p *Pipeline,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			ctx        = r.Context()
			req        = createInstance[Req]()
			resp       = createInstance[Resp]()
			err        error
			handlerErr error
		)

		req.SetHTTPRequest(r)

		handleErr := func(err error) bool {
			return setError(resp, err)
		}

		// 1. Request processing
		for _, process := range p.requestProcessors {
			if ctx, err = process(ctx, req); handleErr(err) {
				break
			}
		}

		// 2. Run the handler
		if err == nil {
			var handlerResp Resp
			handlerResp, handlerErr = handlerFn(ctx, req)
			if !isNilResponse(handlerResp) {
				resp = handlerResp
			}
			handleErr(handlerErr)
		}

		// Allow response processors to modify headers.
		resp.SetHeader(w.Header())

		// 3. Response serialization (optional)
		if err == nil && handlerErr == nil && p.serializer != nil {
			ctx, err = p.serializer.Serialize(ctx, resp)
			handleErr(err)
		}

		// 4. Response processing
		if err == nil && handlerErr == nil {
			for _, process := range p.responseProcessors {
				if ctx, err = process(ctx, resp); handleErr(err) {
					break
				}
			}
		}

		// 5. Write the response
		if err = writeResponse(ctx, w, resp); err != nil {
			slog.Error("failed writing response", "error", err.Error())
		}
	}
}

// createInstance returns a new instance of type T.
//
//nolint:ireturn,nolintlint // Required for generic functionality.
func createInstance[T any]() T {
	var zero T
	tType := reflect.TypeOf(zero)

	if tType == nil {
		panic("cannot create instance of nil interface type")
	}

	switch tType.Kind() {
	case reflect.Ptr:
		return reflect.New(tType.Elem()).Interface().(T) //nolint:errcheck,forcetypeassert // It's fine.
	case reflect.Interface:
		panic("cannot create instance of interface type - need concrete type")
	default:
		return zero
	}
}

func isNilResponse(resp types.Response) bool {
	if resp == nil {
		return true
	}
	v := reflect.ValueOf(resp)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// setError ensures that the response has a valid HTTP error and status code.
// It returns false if err is nil.
func setError(resp types.Response, err error) bool {
	if err == nil {
		return false
	}

	var terr *types.Error
	switch {
	case !errors.As(err, &terr) || terr == nil:
		terr = types.NewError(http.StatusInternalServerError, err.Error())
	case terr.StatusCode == 0:
		terr.StatusCode = http.StatusInternalServerError
	}

	resp.SetStatusCode(terr.StatusCode)
	resp.SetError(terr)

	return true
}
