package cmd

import (
	"github.com/urfave/cli"

	"github.com/avasilakis/orion/log"
)

var logger = log.New("orion")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
