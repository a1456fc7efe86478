package cli

import (
	"fmt"

	actx "go.hackfix.me/agrodiag/app/context"
	"go.hackfix.me/agrodiag/web/server"
)

// Routes lists the HTTP routes served by the web server.
type Routes struct{}

// Run the routes command.
func (c *Routes) Run(appCtx *actx.Context) error {
	header := []string{"Method", "Pattern", "Description"}
	err := renderTable(appCtx.Stdout, header, server.Routes(appCtx.Logger), routeRow)
	if err != nil {
		return fmt.Errorf("failed rendering routes table: %w", err)
	}

	return nil
}

func routeRow(r server.Route) []string {
	method := r.Method
	if method == "" {
		method = "ANY"
	}
	return []string{method, r.Pattern, r.Description}
}
