package main

import (
	"github.com/xmi-schema/xmi-go/internal/server"
	"github.com/xmi-schema/xmi-go/internal/util"
	"github.com/xmi-schema/xmi-go/pkg/logger"
	"github.com/xmi-schema/xmi-go/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
