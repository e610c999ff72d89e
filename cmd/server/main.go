package main

import (
	"flag"

	"github.com/ecotrack-app/ecotrack/internal/app"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	server, errNew := app.New(*cfgPath)
	if errNew != nil {
		log.WithError(errNew).Fatal("failed to start server")
	}
	if errRun := server.Run(); errRun != nil {
		log.WithError(errRun).Fatal("server exited")
	}
}
