package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jobeserver/demo/adapters/event"
	"github.com/jobeserver/demo/adapters/event/listeners"
	"github.com/jobeserver/demo/adapters/httpserver"
	"github.com/jobeserver/demo/adapters/localstore"
	"github.com/jobeserver/demo/domain/image"
	"github.com/jobeserver/demo/pkg/config"
	"github.com/jobeserver/demo/pkg/logger"
	"github.com/jobeserver/demo/pkg/sentry"
)

// @title Jobe demo APIs
// @version 1.0

// @BasePath /
// @schemes http https

// @description Dashboard, form submission echo and image upload for the jobe demo.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}

	applog, err := logger.NewAppLogger(cfg)
	if err != nil {
		log.Fatalf("cannot init logger: %v\n", err)
	}
	defer logger.Sync(applog)

	if err := sentry.Init(cfg.SentryDSN, cfg.AppEnv, cfg.Debug); err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentry.Flush()

	// event bus
	dispatcher := event.NewEventDispatcher()
	listeners.RegisterAll(dispatcher, map[string]listeners.EventListener{
		image.ImageReceivedEventName: listeners.NewImageReceivedEventListener(applog),
	})

	// store adapters
	imageStore := localstore.NewImageStore(localstore.ParseFromConfig(cfg))

	server, err := httpserver.New(cfg, applog,
		httpserver.WithImageStore(imageStore),
		httpserver.WithEventDispatcher(dispatcher),
	)
	if err != nil {
		applog.Fatal(err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	applog.Infow("server started!", "addr", srv.Addr, "image_path", imageStore.Path())
	applog.Fatal(srv.ListenAndServe())
}
