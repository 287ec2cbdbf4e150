package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	daemon "github.com/andrescamacho/craftsolver-go/internal/adapters/grpc"
	"github.com/andrescamacho/craftsolver-go/internal/adapters/metrics"
	"github.com/andrescamacho/craftsolver-go/internal/adapters/persistence"
	"github.com/andrescamacho/craftsolver-go/internal/application/common"
	"github.com/andrescamacho/craftsolver-go/internal/application/mediator"
	"github.com/andrescamacho/craftsolver-go/internal/application/setup"
	"github.com/andrescamacho/craftsolver-go/internal/application/solving"
	"github.com/andrescamacho/craftsolver-go/internal/domain/recipe"
	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/config"
	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/database"
	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/pidfile"
	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/presets"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (default: search ., ./configs, /etc/craftsolver)")
	flag.Parse()

	fmt.Println("Craftsolver Daemon v0.1.0")
	fmt.Println("=========================")

	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig(*configPath)
	if cfg.Logging.IncludeCaller {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	// Acquire PID file lock to prevent multiple instances
	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)
	if err := pf.Acquire(); err != nil {
		log.Fatalf("Failed to acquire PID file lock: %v", err)
	}
	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("Warning: failed to release PID file: %v", err)
		}
	}()
	fmt.Println("PID file lock acquired")

	if err := run(cfg); err != nil {
		// log.Fatalf would skip the deferred PID file release
		log.Printf("Fatal error: %v", err)
		_ = pf.Release()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()
	logger := common.NewStdLogger(cfg.Logging.Level)

	// 1. Recipe catalog database
	fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	recipeRepo := persistence.NewGormRecipeRepository(db)
	seeded, err := database.SeedRecipes(ctx, recipeRepo)
	if err != nil {
		var malformed *recipe.ErrMalformedCatalog
		if errors.As(err, &malformed) {
			return fmt.Errorf("bundled recipe catalog is corrupt: %w", err)
		}
		return err
	}
	fmt.Printf("Recipe catalog loaded (%d recipes)\n", seeded)

	// 2. Action presets
	presetSet, err := presets.Load(cfg.Solver.PresetsFile)
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}
	fmt.Printf("Presets loaded: %v\n", presetSet.Names())

	// 3. Metrics
	var middleware []mediator.Middleware
	cacheOpts := []solving.Option{}
	var metricsServer *metrics.Server
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()

		commandCollector := metrics.NewCommandMetricsCollector()
		if err := commandCollector.Register(); err != nil {
			return fmt.Errorf("failed to register command metrics: %w", err)
		}
		solverCollector := metrics.NewSolverMetricsCollector()
		if err := solverCollector.Register(); err != nil {
			return fmt.Errorf("failed to register solver metrics: %w", err)
		}
		middleware = append(middleware, metrics.PrometheusMiddleware(commandCollector))
		cacheOpts = append(cacheOpts, solving.WithMetrics(solverCollector))

		metricsServer, err = metrics.NewServer(&cfg.Metrics)
		if err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		metricsServer.Start()
		fmt.Printf("Metrics available at http://%s%s\n", metricsServer.Addr(), cfg.Metrics.Path)
	}

	// 4. Mediator (CQRS dispatcher) with every handler registered
	registry := setup.NewHandlerRegistry(recipeRepo, solving.NewCache(cacheOpts...), cfg.Solver.MaxCraftPoints)
	med, err := registry.CreateConfiguredMediator(middleware...)
	if err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}

	// 5. Daemon server
	socketPath := cfg.Daemon.SocketPath
	if err := os.MkdirAll(filepath.Dir(socketPath), 0755); err != nil {
		return fmt.Errorf("failed to create socket directory: %w", err)
	}

	server, err := daemon.NewDaemonServer(
		daemon.NewCraftSolverService(med, presetSet, registry.Cache()),
		socketPath,
		daemon.ServerOptions{
			RateLimit:       cfg.Daemon.RateLimit,
			ShutdownTimeout: cfg.Daemon.ShutdownTimeout,
			Logger:          logger,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create daemon server: %w", err)
	}

	fmt.Println("\n✓ Daemon is ready to accept connections")
	fmt.Println("Press Ctrl+C to stop")

	// Start serving (blocks until shutdown)
	serveErr := server.Start()

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Daemon.ShutdownTimeout)
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Warning: metrics server shutdown: %v", err)
		}
		cancel()
	}
	_ = os.Remove(socketPath)

	if serveErr != nil {
		return fmt.Errorf("daemon server error: %w", serveErr)
	}
	fmt.Println("\nDaemon stopped")
	return nil
}
