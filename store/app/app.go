package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/book-store/pkg/kafka"
	"github.com/Astemirdum/book-store/pkg/logger"
	"github.com/Astemirdum/book-store/pkg/postgres"
	"github.com/Astemirdum/book-store/store/config"
	"github.com/Astemirdum/book-store/store/internal/events"
	"github.com/Astemirdum/book-store/store/internal/handler"
	"github.com/Astemirdum/book-store/store/internal/repository"
	"github.com/Astemirdum/book-store/store/internal/server"
	"github.com/Astemirdum/book-store/store/internal/service"
	"github.com/Astemirdum/book-store/store/migrations"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "store")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	var opts []service.Option
	var publisher *events.Publisher
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		publisher = events.NewPublisher(producer, kafka.BookRatingTopic, log)
		opts = append(opts, service.WithPublisher(publisher))
	}
	svc := service.NewService(repo, log, opts...)

	h := handler.New(svc, svc, []byte(cfg.Auth.Secret), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(gCtx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})
	if err := g.Wait(); err != nil {
		log.Error("server", zap.Error(err))
	}

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			log.Warn("kafka producer close", zap.Error(err))
		}
	}
	if err := db.Close(); err != nil {
		log.Warn("db close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
