package main

import (
	"os"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"go.hackfix.me/agrodiag/app"
	actx "go.hackfix.me/agrodiag/app/context"
	aerrors "go.hackfix.me/agrodiag/app/errors"
)

func main() {
	a, err := app.New("agrodiag",
		app.WithEnv(osEnv{}),
		app.WithFDs(
			os.Stdin,
			colorable.NewColorable(os.Stdout),
			colorable.NewColorable(os.Stderr),
		),
		app.WithFS(osfs.New()),
		app.WithLogger(isatty.IsTerminal(os.Stderr.Fd())),
	)
	if err != nil {
		aerrors.Log(nil, err)
		os.Exit(1)
	}
	if err = a.Run(os.Args[1:]); err != nil {
		aerrors.Log(nil, err)
		os.Exit(1)
	}
}

type osEnv struct{}

var _ actx.Environment = &osEnv{}

func (e osEnv) Get(key string) string {
	return os.Getenv(key)
}

func (e osEnv) Set(key, val string) error {
	return os.Setenv(key, val)
}
