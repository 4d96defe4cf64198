// Package main is the entry point for the instasnap application.
package main

import (
	"github.com/instasnap-cli/instasnap/cmd"
	"github.com/instasnap-cli/instasnap/config"
	"github.com/instasnap-cli/instasnap/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
