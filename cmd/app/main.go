package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/saksham-app/delivery-agent/infrastructure"
	"github.com/saksham-app/delivery-agent/internal/constants"
	"github.com/saksham-app/delivery-agent/internal/domains/catalog"
	"github.com/saksham-app/delivery-agent/internal/environment"
)

var (
	env            environment.Environment
	serviceVersion = "0.0.1"
)

func init() {
	var err error
	if env, err = environment.New(); err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}
}

func main() {
	logWriter, err := setupRollingLogFile(env.Agent.LogfilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	var output io.Writer = logWriter
	if env.Agent.IsDebug() {
		output = zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stderr}, logWriter)
	}

	log.Logger = log.Output(output)
	if err = setLogLevel(env.Agent.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().
		Any("app", env).
		Str("agent version", serviceVersion).
		Str("log path", env.Agent.LogfilePath).
		Str("log level", env.Agent.LogLevel).
		Str("probe", env.Probe.Kind).
		Dur("probe interval", env.Probe.Interval).
		Msg("main: app started")

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancelFunc()

	kernel, err := infrastructure.Inject(env)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().Msg("main: start initializing app services...")
	if err = initServices(cancelCtx, kernel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}
	log.Info().Msg("main: app services initialized")

	<-cancelCtx.Done()

	log.Info().Msg("main: stopping app...")
	shutdownServices(kernel)
	log.Info().Msg("main: app gracefully stopped")
}

func initServices(ctx context.Context, kernel *infrastructure.Kernel) (err error) {
	// seed catalog
	shorts := catalog.DefaultShorts()
	if lo.IsNotEmpty(env.Catalog.SeedFile) {
		if shorts, err = catalog.LoadShorts(env.Catalog.SeedFile); err != nil {
			return fmt.Errorf("initServices: %w", err)
		}
	}

	if err = kernel.InjectCatalogService().Seed(shorts); err != nil {
		return fmt.Errorf("initServices: %w", err)
	}

	// init renderer transport
	kernel.InjectWebsocketService().SetRoutes(getWebsocketRoutes(kernel))

	// connect to message broker
	if env.Transport.MQEnabled() {
		log.Info().Msg("initServices: connecting to MQ broker...")
		mqService := kernel.InjectMQService()
		mqService.RegisterHandlers(getMQRoutes(kernel))
		if err = mqService.Connect(); err != nil {
			return fmt.Errorf("initServices: connection to message broker failed: %w", err)
		}
		log.Info().Msg("initServices: connected to MQ broker")

		for _, subject := range []string{
			constants.MQAdvisorGetState,
			constants.MQAdvisorDebugStatus,
			constants.MQAdvisorDebugDumpHeap,
		} {
			if err = mqService.ActivateHandler(subject); err != nil {
				return fmt.Errorf("initServices: %w", err)
			}
		}
	}

	log.Info().Msg("initServices: starting network advisor...")
	go kernel.InjectAdvisorEventService().StartListenEvents(ctx)
	if err = kernel.InjectAdvisorService().Start(ctx); err != nil {
		return fmt.Errorf("initServices: %w", err)
	}
	log.Info().Msg("initServices: network advisor started")

	if err = kernel.InjectAPIServer().Start(); err != nil {
		return fmt.Errorf("initServices: %w", err)
	}

	return nil
}

func shutdownServices(kernel *infrastructure.Kernel) {
	advisorService := kernel.InjectAdvisorService()
	advisorService.Stop()
	<-advisorService.Done()

	log.Info().Msg("shutdownServices: last network state\n" + kernel.InjectReportService().NetworkStatus())

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := kernel.InjectAPIServer().Stop(ctx); err != nil {
		log.Error().Err(err).Msg("shutdownServices: api server shutdown error")
	}

	if err := kernel.InjectWebsocketService().Stop(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: websocket service shutdown error")
	}

	if err := kernel.InjectMQService().Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close MQ error")
	}

	if err := kernel.DB.Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close badger error")
	}
}

func setLogLevel(level string) (err error) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("setLogLevel: %w", err)
	}

	zerolog.SetGlobalLevel(logLevel)
	return nil
}

func setupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	// create log dir if not exists
	if err = os.MkdirAll(filepath.Dir(filename), constants.FilePerm); err != nil {
		return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    15, // megabytes per log file
		MaxAge:     30, // days to retain old log files
		MaxBackups: 10,
		Compress:   true,
	}, nil
}
