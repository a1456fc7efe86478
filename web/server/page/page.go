// Package page contains the handlers of the static pages served by the
// backend.
package page

import (
	"context"
	"log/slog"
	"net/http"

	"go.hackfix.me/agrodiag/web/server/types"
)

// FrontendURL is the address of the AgroDiag frontend application.
const FrontendURL = "http://localhost:3000"

// HomePage is the landing page of the backend. Its only purpose is linking
// back to the frontend application.
const HomePage = `
    <!DOCTYPE html>
    <html lang="fr">
    <head>
        <meta charset="UTF-8">
        <title>Backend AgroDiag</title>
        <style>
            body { font-family: sans-serif; display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0; background-color: #f4f4f4; }
            a { text-decoration: none; font-size: 1.5rem; color: #2e7d32; padding: 1rem 2rem; border: 2px solid #2e7d32; border-radius: 8px; transition: all 0.3s ease; }
            a:hover { background-color: #2e7d32; color: white; }
        </style>
    </head>
    <body>
        <a href="` + FrontendURL + `" title="Retour à l'application">← Retour</a>
    </body>
    </html>
    `

// Handler serves the static pages.
type Handler struct {
	logger *slog.Logger
}

// NewHandler returns a new page Handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// HomeGet returns the home page. The request is accepted as is, regardless of
// its method, headers or body.
func (h *Handler) HomeGet(_ context.Context, req *types.HomeRequest) (*types.PageResponse, error) {
	h.logger.Debug("serving home page", "method", req.GetHTTPRequest().Method)

	return types.NewPageResponse(http.StatusOK, HomePage), nil
}
