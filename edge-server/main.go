package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"plane-booking/logger"
	"plane-booking/shared"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/nats-io/nats.go"
)

func main() {
	cfg := shared.LoadConfig("info")
	logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	log := logger.WithComponent("main")
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	natsURL := cfg.NATSURL
	if natsURL == "" {
		natsURL = nats.DefaultURL
	}
	natsConn, err := connectNATS(natsURL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", "error", err, "url", natsURL)
	}
	defer natsConn.Close()
	log.Info("Connected to NATS", "url", natsConn.ConnectedUrl())

	var loader planeLoader
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		loader = NewMirrorClient(redisClient)
	} else {
		log.Warn("REDIS_ADDR not set, starting from an empty plane without resync")
	}

	v := newViewer(loader)
	go v.hub.run()
	defer v.hub.stop()

	if loader != nil {
		if err := v.resync(ctx); err != nil {
			log.Warn("Initial load from mirror failed, starting from an empty plane", "error", err)
		}
	}

	sub, err := natsConn.Subscribe(shared.NATSTopicAllSeats, func(msg *nats.Msg) {
		v.handleSeatEvent(ctx, msg.Data)
	})
	if err != nil {
		logger.Fatal("Failed to subscribe to seat events", "error", err)
	}
	defer sub.Unsubscribe()
	log.Info("Subscribed to seat events", "subject", sub.Subject)

	v.startResync(ctx, cfg.ResyncInterval)

	srv := &http.Server{
		Addr:    ":" + cfg.ViewerPort,
		Handler: setupRoutes(v),
	}

	go func() {
		log.Info("Seat map viewer started", "port", cfg.ViewerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down seat map viewer...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
}

func connectNATS(url string) (*nats.Conn, error) {
	log := logger.WithComponent("nats")
	return nats.Connect(url,
		nats.Name("seatmap-viewer"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn("Disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("Reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error("Async error", "error", err)
		}),
	)
}
