package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"go.hackfix.me/agrodiag/web/server/types"
)

// ResponseProcessor processes outgoing responses and can modify the response or context.
type ResponseProcessor func(ctx context.Context, resp types.Response) (context.Context, error)

// NoCache instructs clients to revalidate the response before reusing it.
func NoCache(ctx context.Context, resp types.Response) (context.Context, error) {
	resp.GetHeader().Set("Cache-Control", "no-cache")
	return ctx, nil
}

// ContentLength sets the Content-Length header to the size of the serialized
// response data.
func ContentLength(ctx context.Context, resp types.Response) (context.Context, error) {
	data := getResponseData(ctx)
	resp.GetHeader().Set("Content-Length", strconv.Itoa(len(data)))
	return ctx, nil
}

func writeResponse(ctx context.Context, w http.ResponseWriter, resp types.Response) error {
	data := getResponseData(ctx)

	var terr *types.Error
	if errors.As(resp.GetError(), &terr) {
		data = []byte(terr.Message)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/octet-stream")
	}

	w.WriteHeader(resp.GetStatusCode())
	_, err := w.Write(data)

	return err //nolint:wrapcheck // Wrapped by caller.
}
