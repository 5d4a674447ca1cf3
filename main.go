package main

import (
	"os"

	"navsite-web/cmd"
	"navsite-web/pkg/util"

	"go.uber.org/zap"
)

func main() {
	logger := util.InitZapLog()
	zap.ReplaceGlobals(logger)
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)
	command := cmd.NewRootCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
