package main

import (
	"context"
	"os"

	"github.com/ardnew/aoc/cli"
	"github.com/ardnew/aoc/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error("run failed", cli.ErrorAttr(err))
		os.Exit(1)
	}
}
