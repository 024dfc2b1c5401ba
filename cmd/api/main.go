package main

import (
	"os"

	"github.com/spf13/pflag"
	"github.com/yigit/coursesvc/internal/config"
	"github.com/yigit/coursesvc/internal/pkg/logger"
	"github.com/yigit/coursesvc/internal/server"
)

// @title Course API
// @version 1.0
// @description In-memory course collection with validated writes

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http

func main() {
	flags := pflag.NewFlagSet("coursesvc", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", config.GetEnv("CONFIG_PATH", config.DefaultConfigPath), "path to the YAML configuration file")
	port := flags.StringP("port", "p", "", "port to listen on, overrides PORT and the config file")
	_ = flags.Parse(os.Args[1:])

	srv, err := server.NewServer(server.Options{
		ConfigPath: *configPath,
		Port:       *port,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
