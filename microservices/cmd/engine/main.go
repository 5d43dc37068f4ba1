package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"infinite_ttt/internal/bootstrap"
	engineRPC "infinite_ttt/microservices/proto"
	"infinite_ttt/microservices/repository"
	"infinite_ttt/microservices/usecase"
)

func main() {
	logger := NewLogger()
	defer logger.Sync()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	addr := ":" + cfg.GrpcPort
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatalw("cant listen port", "addr", addr, "error", err)
	}

	server := grpc.NewServer()
	engineStorage := repository.NewEngineRepository(cfg, logger)
	engineRPC.RegisterMoveEngineServer(server, usecase.NewEngineUseCase(engineStorage, logger))

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs
		logger.Info("Received shutdown signal")
		server.GracefulStop()
	}()

	logger.Infow("starting move engine",
		"addr", addr,
		"max_depth", cfg.EngineMaxDepth,
		"pruning", cfg.EnginePruning,
		"heuristic", cfg.EngineHeuristic,
	)
	if err := server.Serve(lis); err != nil {
		logger.Fatalw("grpc server stopped", "error", err)
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return logger.Sugar()
}
