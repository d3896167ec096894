package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-progression/internal/clients/equipment"
	"github.com/KirkDiggler/rpg-progression/internal/clients/llm"
	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/handlers/progression/v1alpha1"
	"github.com/KirkDiggler/rpg-progression/internal/messagehub"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/eventimpact"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/progress"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/themestate"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/transition"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/keylock"
	"github.com/KirkDiggler/rpg-progression/internal/redis"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/theme"
	"github.com/KirkDiggler/rpg-progression/internal/telemetry"
	"github.com/KirkDiggler/rpg-progression/internal/validation"
)

const serviceName = "rpg-progression"

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the progression gRPC server backed by Redis.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides RPG_PROGRESSION_GRPC_PORT)")
}

func redisOptions(cfg *config.Config) *redis.Options {
	return &redis.Options{
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
		UseTLS:       cfg.RedisUseTLS,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}
	logger := setupLogger(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("failed to flush traces", slog.Any("error", err))
		}
	}()

	redisClient, err := redis.Connect(ctx, cfg.RedisAddr, redisOptions(cfg))
	if err != nil {
		return err
	}
	defer func() {
		_ = redisClient.Close()
	}()

	handler, localBus, err := buildHandler(cfg, redisClient)
	if err != nil {
		return err
	}
	subscribeAudit(localBus, logger)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	grpcLogger := interceptorLogger(logger)
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "panic in handler", slog.Any("panic", p))
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpcLogger),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLogger),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterProgressionServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting", slog.Int("port", cfg.GRPCPort))
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler wires repositories, clients and orchestrators into the gRPC
// handler. The returned bus receives every published event in process.
func buildHandler(cfg *config.Config, redisClient redis.Client) (*v1alpha1.Handler, events.EventBus, error) {
	clk := clock.New()

	characterRepo, err := character.NewRedis(&character.RedisConfig{
		Client:     redisClient,
		Clock:      clk,
		Locker:     keylock.New(),
		TxAttempts: cfg.TxAttempts,
	})
	if err != nil {
		return nil, nil, err
	}

	themeRepo, err := theme.NewRedis(&theme.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, nil, err
	}

	redisPublisher, err := messagehub.NewRedisPublisher(&messagehub.RedisConfig{
		Client: redisClient,
		Clock:  clk,
	})
	if err != nil {
		return nil, nil, err
	}
	bus := events.NewBus()
	localPublisher, err := messagehub.NewLocalPublisher(bus)
	if err != nil {
		return nil, nil, err
	}
	publisher := messagehub.NewFanout(redisPublisher, localPublisher)

	var llmClient llm.Client
	if cfg.SuggestionsEnabled() {
		llmClient, err = llm.NewOpenAI(&llm.Config{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		})
		if err != nil {
			return nil, nil, err
		}
	}

	equipmentClient, err := equipment.New(&equipment.Config{
		BaseURL:  cfg.DnD5eAPIURL,
		CacheTTL: cfg.DnD5eAPICacheTTL,
	})
	if err != nil {
		return nil, nil, err
	}

	themeStates, err := themestate.NewOrchestrator(&themestate.Config{
		CharacterRepo: characterRepo,
		ThemeRepo:     themeRepo,
		StateIDGen:    idgen.NewUUID(idgen.PrefixThemeState),
		TransitionGen: idgen.NewUUID(idgen.PrefixTransition),
		Clock:         clk,
	})
	if err != nil {
		return nil, nil, err
	}

	transitions, err := transition.NewOrchestrator(&transition.Config{
		CharacterRepo:     characterRepo,
		ThemeRepo:         themeRepo,
		ThemeStates:       themeStates,
		Registry:          validation.NewRegistry(),
		Publisher:         publisher,
		LLMClient:         llmClient,
		EquipmentClient:   equipmentClient,
		SuggestionTimeout: cfg.SuggestionTimeout,
	})
	if err != nil {
		return nil, nil, err
	}

	eventImpacts, err := eventimpact.NewOrchestrator(&eventimpact.Config{
		CharacterRepo: characterRepo,
		Publisher:     publisher,
		EventIDGen:    idgen.NewUUID(idgen.PrefixEvent),
		ImpactIDGen:   idgen.NewUUID(idgen.PrefixImpact),
		Clock:         clk,
	})
	if err != nil {
		return nil, nil, err
	}

	progressService, err := progress.NewOrchestrator(&progress.Config{
		CharacterRepo: characterRepo,
		Publisher:     publisher,
		Clock:         clk,
	})
	if err != nil {
		return nil, nil, err
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterRepo: characterRepo,
		ThemeRepo:     themeRepo,
		Transitions:   transitions,
		Events:        eventImpacts,
		Progress:      progressService,
	})
	if err != nil {
		return nil, nil, err
	}

	return handler, bus, nil
}

// interceptorLogger adapts slog to the go-grpc-middleware logging interface
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
