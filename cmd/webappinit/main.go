package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"webappinit/internal/config"
	"webappinit/internal/launcher"
	"webappinit/internal/webconfig"
)

// webappinit is the container entrypoint for the photo-sharing web app.
// It writes the browser config from the current environment, then execs
// the command given as its trailing arguments.
func main() {
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	env := config.Snapshot(os.Environ())
	record := webconfig.NewRecord(env)

	if err := webconfig.WriteFile(config.OutputPath, record); err != nil {
		log.WithError(err).Fatal("Failed to write web config")
	}
	log.WithField("path", config.OutputPath).Info("Wrote web config")

	if err := launcher.Exec(os.Args[1:], os.Environ()); err != nil {
		log.WithError(err).Fatal("Failed to start main command")
	}
}
