package handler

import (
	"context"
	"net/http"

	"go.hackfix.me/agrodiag/web/server/types"
)

// Serializer is the interface for serializing the typed response value into
// the raw response data.
type Serializer interface {
	Serialize(ctx context.Context, resp types.Response) (context.Context, error)
}

// HTMLSerializer renders responses that implement types.HTMLResponse.
type HTMLSerializer struct{}

var _ Serializer = (*HTMLSerializer)(nil)

// HTML returns a new HTML serializer.
func HTML() HTMLSerializer {
	return HTMLSerializer{}
}

// Serialize stores the HTML document of the response in the context for
// writing, and sets the appropriate Content-Type header.
func (HTMLSerializer) Serialize(ctx context.Context, resp types.Response) (context.Context, error) {
	htmlResp, ok := resp.(types.HTMLResponse)
	if !ok {
		return ctx, types.NewErrorf(http.StatusInternalServerError,
			"response type %T doesn't render HTML", resp)
	}

	ctx = setResponseData(ctx, []byte(htmlResp.HTML()))

	resp.GetHeader().Set("Content-Type", "text/html; charset=utf-8")

	return ctx, nil
}
