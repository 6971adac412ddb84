package cmd

import (
	"github.com/rsolis096/RealTimeRT/log"
	"github.com/urfave/cli"
)

var logger = log.New("realtimert")

// Apply the configured log level. The -v and -vv flags take precedence.
func setupLogging(ctx *cli.Context, level log.Level) {
	log.SetLevel(level)

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
