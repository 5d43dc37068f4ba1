package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"infinite_ttt/internal/adapters"
	"infinite_ttt/internal/bootstrap"
	gameDelivery "infinite_ttt/internal/delivery/game"
	matchDelivery "infinite_ttt/internal/delivery/match"
	moveDelivery "infinite_ttt/internal/delivery/move"
	"infinite_ttt/internal/engine"
	"infinite_ttt/internal/httpresponse"
	"infinite_ttt/internal/repository"
	matchUseCase "infinite_ttt/internal/usecase/match"
	moveUseCase "infinite_ttt/internal/usecase/move"
	engineProto "infinite_ttt/microservices/proto"
)

type mainDeliveryHandler struct {
	log   *zap.SugaredLogger
	move  *moveDelivery.MoveHandler
	match *matchDelivery.MatchHandler
	game  *gameDelivery.GameHandler
}

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	logger := NewLogger()
	defer logger.Sync()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	databaseAdapters := initDatabaseAdapters(ctx, logger, cfg)
	defer databaseAdapters.mongoAdapter.Close(context.Background())
	defer databaseAdapters.redisAdapter.Close(context.Background())

	searcher, closeSearcher, err := newSearcher(logger, cfg)
	if err != nil {
		logger.Fatal("Failed to set up move engine", zap.Error(err))
	}
	defer closeSearcher()

	r := chi.NewRouter()
	handlers := initializeDeliveryHandlers(ctx, cfg, logger, searcher, databaseAdapters)
	handlers.Router(r, cfg)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("Server is running on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, cfg *bootstrap.Config) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.IsLocalCors {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{cfg.CorsOrigin},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.HandleHealth)
		r.Post("/play", h.move.HandlePlay)
		r.Post("/matches", h.match.HandleSaveMatch)
		r.Get("/stats", h.match.HandleStats)
		r.Get("/leaderboard", h.match.HandleLeaderboard)
		r.Get("/ws/play", h.game.HandlePlay)
	})
}

func (h *mainDeliveryHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteJSON(h.log, w, http.StatusOK, map[string]any{
		"status":       "ok",
		"active_games": h.game.ActiveGames(),
	})
}

func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) *dataBaseAdapters {
	mongoAdapter := adapters.NewAdapterMongo(cfg, log)
	if err := mongoAdapter.Init(ctx); err != nil {
		log.Fatal("Failed to initialize MongoDB", zap.Error(err))
	}

	redisAdapter := adapters.NewAdapterRedis(cfg, log)
	if err := redisAdapter.Init(ctx); err != nil {
		log.Fatal("Failed to initialize Redis", zap.Error(err))
	}

	log.Info("Database adapters initialized")
	return &dataBaseAdapters{
		redisAdapter: redisAdapter,
		mongoAdapter: mongoAdapter,
	}
}

// newSearcher uses the engine microservice when ENGINE_GRPC_ADDR is set and
// searches in-process otherwise.
func newSearcher(log *zap.SugaredLogger, cfg *bootstrap.Config) (moveUseCase.Searcher, func(), error) {
	local := engine.New(
		engine.WithMaxDepth(cfg.EngineMaxDepth),
		engine.WithPruning(cfg.EnginePruning),
		engine.WithHeuristic(cfg.EngineHeuristic),
	)
	if cfg.EngineGrpcAddr == "" {
		log.Infof("Using in-process engine, depth %d", local.MaxDepth())
		return local, func() {}, nil
	}

	conn, err := grpc.NewClient(cfg.EngineGrpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	log.Infof("Using engine service at %s, depth %d", cfg.EngineGrpcAddr, local.MaxDepth())
	remote := repository.NewRemoteEngine(log, engineProto.NewMoveEngineClient(conn), local.MaxDepth())
	return remote, func() { conn.Close() }, nil
}

func initializeDeliveryHandlers(
	ctx context.Context,
	cfg *bootstrap.Config,
	log *zap.SugaredLogger,
	searcher moveUseCase.Searcher,
	databaseAdapters *dataBaseAdapters,
) *mainDeliveryHandler {
	moveCache := repository.NewMoveCache(log, databaseAdapters.redisAdapter.GetClient(), cfg.MoveCacheTTL)
	moveUC := moveUseCase.NewMoveUseCase(log, searcher, moveCache, cfg.EngineTimeBudget, cfg.EngineMaxConcurrent)

	matchRepo := repository.NewMatchRepository(log, databaseAdapters.mongoAdapter.Database)
	if err := matchRepo.EnsureIndexes(ctx); err != nil {
		log.Warnf("failed to create match indexes: %v", err)
	}
	matchUC := matchUseCase.NewMatchUseCase(matchRepo, cfg.LeaderboardLimit)

	return &mainDeliveryHandler{
		log:   log,
		move:  moveDelivery.NewMoveHandler(log, moveUC),
		match: matchDelivery.NewMatchHandler(log, matchUC),
		game:  gameDelivery.NewGameHandler(log, cfg.GameMaxMoves, moveUC, matchUC),
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
