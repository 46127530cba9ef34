package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Financial-Times/go-logger"
	"github.com/Financial-Times/ivms101-transformer/converter"
	"github.com/Financial-Times/ivms101-transformer/ivms101"
	"github.com/Financial-Times/ivms101-transformer/payload"
	"github.com/Financial-Times/ivms101-transformer/transformer"
	cli "github.com/jawher/mow.cli"
	"github.com/rcrowley/go-metrics"
)

const appDescription = "Converts IVMS101 travel rule payloads between the 2020 and 2023 versions of the standard."

func main() {
	app := cli.App("ivms101-transformer", appDescription)

	appSystemCode := app.String(cli.StringOpt{
		Name:   "app-system-code",
		Value:  "ivms101-transformer",
		Desc:   "System Code of the application",
		EnvVar: "APP_SYSTEM_CODE",
	})
	appName := app.String(cli.StringOpt{
		Name:   "app-name",
		Value:  "IVMS101 Transformer",
		Desc:   "Application name",
		EnvVar: "APP_NAME",
	})
	logLevel := app.String(cli.StringOpt{
		Name:   "logLevel",
		Value:  "INFO",
		Desc:   "App log level",
		EnvVar: "LOG_LEVEL",
	})
	defaultPayloadVersion := app.String(cli.StringOpt{
		Name:   "defaultPayloadVersion",
		Value:  ivms101.PayloadVersion2023.String(),
		Desc:   "Payload version to convert to when a request does not ask for one",
		EnvVar: "DEFAULT_PAYLOAD_VERSION",
	})

	app.Before = func() {
		logger.InitLogger(*appSystemCode, *logLevel)
	}

	port := app.String(cli.StringOpt{
		Name:   "port",
		Value:  "8080",
		Desc:   "Port to listen on",
		EnvVar: "APP_PORT",
	})
	requestLoggingEnabled := app.Bool(cli.BoolOpt{
		Name:   "requestLoggingEnabled",
		Value:  false,
		Desc:   "Whether to log HTTP requests or not",
		EnvVar: "REQUEST_LOGGING_ENABLED",
	})
	requestTimeout := app.Int(cli.IntOpt{
		Name:   "requestTimeout",
		Value:  10,
		Desc:   "Seconds to wait for a conversion before giving up",
		EnvVar: "REQUEST_TIMEOUT",
	})

	serve := func() {
		defaultVersion, err := ivms101.ParseVersion(*defaultPayloadVersion)
		if err != nil {
			logger.WithError(err).Fatal("Invalid default payload version")
		}
		runServer(*port, *appSystemCode, *appName, time.Duration(*requestTimeout)*time.Second, defaultVersion, *requestLoggingEnabled)
	}

	app.Action = serve
	app.Command("serve", "Run the IVMS101 conversion HTTP service (default)", func(cmd *cli.Cmd) {
		cmd.Action = serve
	})
	app.Command("convert", "Convert an IVMS101 payload read from FILE or stdin and write it to stdout", func(cmd *cli.Cmd) {
		cmd.Spec = "[--version] [FILE]"
		version := cmd.String(cli.StringOpt{
			Name: "version",
			Desc: "Payload version to convert to (101, 101.2023, 2020 or 2023)",
		})
		file := cmd.StringArg("FILE", "", "File holding the payload, stdin when omitted")

		cmd.Action = func() {
			target := *version
			if target == "" {
				target = *defaultPayloadVersion
			}

			in := io.Reader(os.Stdin)
			if *file != "" {
				f, err := os.Open(*file)
				if err != nil {
					logger.WithError(err).WithField("file", *file).Fatal("Could not open payload file")
				}
				defer f.Close()
				in = f
			}

			if err := runConvert(in, os.Stdout, target); err != nil {
				logger.WithError(err).Fatal("Could not convert IVMS101 payload")
			}
		}
	})

	if err := app.Run(os.Args); err != nil {
		logger.WithError(err).Error("App could not start")
		os.Exit(1)
	}
}

func runConvert(in io.Reader, out io.Writer, version string) error {
	target, err := ivms101.ParseVersion(version)
	if err != nil {
		return err
	}
	record, err := payload.Decode(in)
	if err != nil {
		return err
	}
	return payload.Encode(out, converter.EnsureVersion(target, record))
}

func runServer(port, appSystemCode, appName string, requestTimeout time.Duration, defaultVersion ivms101.PayloadVersionCode, requestLoggingEnabled bool) {
	svc := transformer.NewService(metrics.DefaultRegistry)
	handler := transformer.NewHandler(svc, requestTimeout, defaultVersion)
	healthService := transformer.NewHealthService(svc, appSystemCode, appName, appDescription)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler.RegisterHandlers(healthService, requestLoggingEnabled),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Listening on %v", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Unable to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}
}
