package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"

	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/application/alerts"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/application/events"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/application/vitals"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/application/watchdog"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/infrastructure/router"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/infrastructure/storage"
	"github.com/vitalsense/vitalsign-mgmt/internal/pkg/presentation/api"
)

const serviceName string = "vitalsign-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	policiesFile
	notificationsFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	watchdogInterval
	watchdogMaxAge
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		policiesFile:      "/opt/vitalsense/config/authz.rego",
		notificationsFile: "/opt/vitalsense/config/notifications.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "vitalsense",
		dbSSLMode:  "disable",

		watchdogInterval: "1m",
		watchdogMaxAge:   "1h",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	notificationCfg, err := loadNotificationConfig(flags[notificationsFile])
	exitIf(err, logger, "could not load notification configuration")

	checkInterval, err := time.ParseDuration(flags[watchdogInterval])
	exitIf(err, logger, "watchdog interval is invalid")

	maxAge, err := time.ParseDuration(flags[watchdogMaxAge])
	exitIf(err, logger, "watchdog max age is invalid")

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword],
		flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	alertSvc := alerts.New(s, messenger, events.New(notificationCfg))
	vitalSvc := vitals.New(s, messenger, alertSvc)
	wd := watchdog.New(s, messenger, checkInterval, maxAge)

	messenger.Start()

	err = vitalSvc.RegisterTopicMessageHandler(ctx)
	exitIf(err, logger, "failed to register measurement handler")

	err = alertSvc.RegisterTopicMessageHandler(ctx)
	exitIf(err, logger, "failed to register watchdog handler")

	wd.Start(ctx)

	r, err := api.RegisterHandlers(ctx, router.New(serviceName, logger), policies, vitalSvc, alertSvc)
	exitIf(err, logger, "failed to register handlers")

	apiAddress := flags[listenAddress] + ":" + flags[servicePort]
	webServer := &http.Server{Addr: apiAddress, Handler: r}

	logger.Info("starting to listen for incoming connections", "address", apiAddress)

	go func() {
		err := webServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			exitIf(err, logger, "web server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = webServer.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("failed to shut down web server", "err", err.Error())
	}

	wd.Stop(ctx)
	messenger.Close()
	s.Close()
}

func loadNotificationConfig(filePath string) (*events.Config, error) {
	f, err := os.Open(filePath)
	if err != nil {
		// notifications are optional
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	return events.LoadConfiguration(f)
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[watchdogInterval] = envOrDef(ctx, "WATCHDOG_INTERVAL", flags[watchdogInterval])
	flags[watchdogMaxAge] = envOrDef(ctx, "WATCHDOG_MAX_AGE", flags[watchdogMaxAge])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("notifications", "alert notification subscriber configuration", apply(notificationsFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
