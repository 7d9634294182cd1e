package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/shreyescodes/doc-parser-updated/gen/proto/documents/v1"
	"github.com/shreyescodes/doc-parser-updated/internal/async"
	"github.com/shreyescodes/doc-parser-updated/internal/classify"
	"github.com/shreyescodes/doc-parser-updated/internal/common"
	"github.com/shreyescodes/doc-parser-updated/internal/export"
	"github.com/shreyescodes/doc-parser-updated/internal/fields"
	"github.com/shreyescodes/doc-parser-updated/internal/pipeline"
	"github.com/shreyescodes/doc-parser-updated/internal/reconcile"
	repo "github.com/shreyescodes/doc-parser-updated/internal/repository"
	"github.com/shreyescodes/doc-parser-updated/internal/scheduler"
	svc "github.com/shreyescodes/doc-parser-updated/internal/server"
	"github.com/shreyescodes/doc-parser-updated/internal/textsource"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	docsRepo := repo.NewDocumentRepository(entc, logger)
	detailsRepo := repo.NewDetailRepository(entc, logger)
	trailRepo := repo.NewProcessingLogRepository(entc, logger)

	converter := textsource.NewPDFConverter(logger)
	recognizer := textsource.NewRecognizer(textsource.RecognizerConfig{
		Pdftoppm:       cfg.Extract.Pdftoppm,
		Tesseract:      cfg.Extract.Tesseract,
		ImageConverter: cfg.Extract.ImageConverter,
		TesseractLang:  cfg.Extract.TesseractLang,
		TessdataDir:    cfg.Extract.TessdataDir,
		DPI:            cfg.Extract.DPI,
		MaxPages:       cfg.Extract.MaxPages,
	}, logger)
	source := textsource.NewAdapter(converter, recognizer, logger)

	classifier := classify.NewClassifier()
	engine := fields.NewEngine(logger)
	reconciler := reconcile.NewReconciler(detailsRepo, logger)

	controller := pipeline.NewController(
		docsRepo, trailRepo, source, classifier, engine, reconciler,
		pipeline.LogSink{Logger: logger}, cfg.Extract.SoftTimeout, logger,
	)

	queue := async.NewControllerQueue(controller, logger,
		async.WithWorkers(cfg.Extract.Workers),
		async.WithQueueSize(cfg.Extract.QueueSize),
		async.WithHardTimeout(cfg.Extract.HardTimeout),
	)

	documentsService := svc.NewDocumentsService(docsRepo, trailRepo, controller, queue, cfg.Scheduler.UploadDir, logger)
	v1.RegisterDocumentsServiceServer(grpcServer, documentsService)

	exportService := export.NewService(detailsRepo, logger)
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportService, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	sched := scheduler.New(cfg.Scheduler, docsRepo, queue, logger)
	sched.Start(ctx)

	logger.Info("doc-parser listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	sched.Stop()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
