package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-key-keeper/internal/adapter"
	"github.com/MKhiriev/go-key-keeper/internal/client"
	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/tui"
	"github.com/MKhiriev/go-key-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.New("go-key-keeper-client", os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-key-keeper-client", cfg.Log.FilePath)

	keyStore, err := adapter.NewHTTPKeyStoreAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create key store adapter")
	}

	status := tui.NewStatusBoard(log)
	services := service.NewClientServices(keyStore, cfg.App.Credentials, status, log)

	ui, err := tui.New(services, status, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
