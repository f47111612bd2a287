package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"plane-booking/logger"
	"plane-booking/shared"

	"github.com/go-redis/redis/v8"
	"github.com/mattn/go-isatty"
	"github.com/nats-io/nats.go"
)

func main() {
	cfg := shared.LoadConfig("warn")
	// stdout belongs to the menu
	logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	log := logger.WithComponent("main")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opts []Option

	if cfg.RedisAddr != "" {
		redisClient, err := connectRedis(ctx, cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err, "addr", cfg.RedisAddr)
		}
		defer redisClient.Close()
		opts = append(opts, WithMirror(newRedisMirror(redisClient)))
		log.Info("Connected to Redis", "addr", cfg.RedisAddr)
	}

	if cfg.NATSURL != "" {
		natsConn, err := connectNATS(cfg.NATSURL)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", "error", err, "url", cfg.NATSURL)
		}
		defer natsConn.Drain()
		opts = append(opts, WithPublisher(newNATSPublisher(natsConn)))
		log.Info("Connected to NATS", "url", cfg.NATSURL)
	}

	system := NewBookingSystem(opts...)
	if err := system.Sync(ctx); err != nil {
		log.Warn("Failed to mirror seat map", "error", err)
	}
	log.Info("Plane initialized", "seats", shared.TotalSeats)

	// Handle Ctrl-C while blocked on input
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		fmt.Fprintln(os.Stdout, "\nGoodbye!")
		os.Exit(0)
	}()

	if cfg.ClearScreen && isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprint(os.Stdout, "\033[H\033[2J")
	}

	console := NewConsole(system, os.Stdin, os.Stdout)
	if err := console.Run(ctx); err != nil {
		logger.Fatal("Console stopped", "error", err)
	}
}

func connectRedis(ctx context.Context, cfg *shared.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, shared.SinkTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func connectNATS(url string) (*nats.Conn, error) {
	log := logger.WithComponent("nats")
	return nats.Connect(url,
		nats.Name("booking-console"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn("Disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("Reconnected", "url", nc.ConnectedUrl())
		}),
	)
}
