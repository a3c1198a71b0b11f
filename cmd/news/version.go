package main

import (
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-news/pkg/version"
)

type VersionCommand struct{}

func (cmd *VersionCommand) Run(ctx *Globals) error {
	_, err := fmt.Fprintln(ctx.stdout, string(version.JSON(execName())))
	return err
}
