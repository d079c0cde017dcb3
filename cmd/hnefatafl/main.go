package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/davidknaack/hnefatafl/internal/config"
	"github.com/davidknaack/hnefatafl/internal/protocol"
	"github.com/davidknaack/hnefatafl/internal/render"
	"github.com/davidknaack/hnefatafl/internal/session"
)

var (
	configFile = flag.String("f", "", "the config file (default: search the standard locations)")
	noColor    = flag.Bool("no-color", false, "disable coloured board output")
)

func main() {
	flag.Parse()

	c, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	logx.MustSetup(c.Log)
	// stdout belongs to the protocol.
	logx.SetWriter(logx.NewWriter(os.Stderr))
	defer logx.Close()

	logger := logx.WithContext(context.Background())
	s, err := session.New(c.Layout, session.WithLogger(logger))
	if err != nil {
		logx.Must(err)
	}

	ro := render.Options{Color: c.Color && !*noColor}
	h := protocol.New(s, os.Stdout, ro, session.WithLogger(logger))
	if err := h.Run(os.Stdin); err != nil {
		logx.Errorw("input error", logx.Field("error", err.Error()))
		os.Exit(1)
	}
}
