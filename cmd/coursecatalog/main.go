package main

import (
	"os"

	"coursecatalog/internal/cli"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()

	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
