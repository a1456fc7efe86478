package cli

import (
	actx "go.hackfix.me/agrodiag/app/context"
	aerrors "go.hackfix.me/agrodiag/app/errors"
)

// The Init command writes the configuration file with default values.
type Init struct {
	Force bool `help:"Overwrite the configuration file if it already exists."`
}

// Run the init command.
func (c *Init) Run(appCtx *actx.Context) error {
	cfg := appCtx.Config

	exists, err := cfg.Exists()
	if err != nil {
		return err
	}
	if exists && !c.Force {
		return aerrors.NewWith("configuration file already exists", "path", cfg.Path())
	}

	if err = cfg.Save(); err != nil {
		return aerrors.NewWithCause("failed initializing configuration", err, "path", cfg.Path())
	}

	appCtx.Logger.Info("created configuration file", "path", cfg.Path())

	return nil
}
