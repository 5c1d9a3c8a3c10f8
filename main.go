package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/server"
	"github.com/go-home-io/gluehome/settings"
	"github.com/go-home-io/gluehome/systems/mqtt"
	"github.com/go-home-io/gluehome/worker"
	"github.com/jessevdk/go-flags"
)

const (
	// Logger system.
	logSystem = "main"
	// Time given to in-flight requests on shutdown.
	shutdownTimeout = 5 * time.Second
)

func main() {
	options := &settings.StartUpOptions{}
	_, err := flags.Parse(options)
	if err != nil {
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s, err := settings.Load(ctx, options)
	if err != nil {
		panic(err)
	}

	log := s.SystemLogger()
	log.Info("Starting gluehome", common.LogSystemToken, logSystem)

	wkr, err := worker.NewWorker(s)
	if err != nil {
		log.Fatal("Failed to create lock platform", err, common.LogSystemToken, logSystem)
	}

	if err = wkr.Start(ctx); err != nil {
		log.Fatal("Failed to start lock platform", err, common.LogSystemToken, logSystem)
	}

	var pub *mqtt.Publisher
	if s.Settings().MQTT.Enabled {
		pub, err = mqtt.NewPublisher(&mqtt.ConstructPublisher{
			Settings: &s.Settings().MQTT,
			FanOut:   s.FanOut(),
			Logger:   s.PluginLogger("mqtt"),
		})
		if err != nil {
			log.Fatal("Failed to start MQTT publisher", err, common.LogSystemToken, logSystem)
		}
	}

	srv := server.NewServer(s, wkr.State())
	srv.Start()

	<-ctx.Done()
	log.Info("Received stop command, exiting", common.LogSystemToken, logSystem)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server", err, common.LogSystemToken, logSystem)
	}

	wkr.Stop()
	if pub != nil {
		pub.Stop()
	}

	s.FanOut().Stop()
	s.Cron().Stop()
}
