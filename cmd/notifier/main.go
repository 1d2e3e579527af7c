package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/josephtaylor/tensorians-sales/internal/adapter"
	"github.com/josephtaylor/tensorians-sales/internal/compose"
	"github.com/josephtaylor/tensorians-sales/internal/config"
	"github.com/josephtaylor/tensorians-sales/internal/filter"
	"github.com/josephtaylor/tensorians-sales/internal/logger"
	"github.com/josephtaylor/tensorians-sales/internal/media"
	"github.com/josephtaylor/tensorians-sales/internal/pipeline"
	"github.com/josephtaylor/tensorians-sales/internal/providers/coingecko"
	"github.com/josephtaylor/tensorians-sales/internal/providers/discord"
	"github.com/josephtaylor/tensorians-sales/internal/providers/tensor"
	"github.com/josephtaylor/tensorians-sales/internal/providers/twitter"
	"github.com/josephtaylor/tensorians-sales/internal/server"
	"github.com/josephtaylor/tensorians-sales/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadNotifierConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Service:   "notifier",
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	slugs := cfg.SlugList()
	logger.InfoCtx(ctx, "Starting collection sales notifier", zap.Strings("slugs", slugs))

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.HTTP.Timeout)
	wsDialer := adapter.NewWebSocketDialer(cfg.HTTP.Timeout)

	// Initialize URI resolver and image fetcher
	uriResolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways:    cfg.URI.IPFSGateways,
		ArweaveGateways: cfg.URI.ArweaveGateways,
	})
	imageFetcher := media.NewFetcher(httpClient, uriResolver, cfg.Media.MaxImageSize)

	// Initialize marketplace client
	marketClient := tensor.NewClient(tensor.Config{
		APIURL: cfg.Tensor.APIURL,
		WSURL:  cfg.Tensor.WSURL,
		APIKey: cfg.Tensor.APIKey,
	}, wsDialer, httpClient, jsonAdapter, clockAdapter)
	defer marketClient.Close()

	// Initialize spot price client
	priceClient := coingecko.NewClient(httpClient, cfg.Pricing.APIURL, jsonAdapter)

	// Initialize Discord webhook sinks
	discordSession, err := adapter.NewDiscordSession()
	if err != nil {
		logger.Fatal("Failed to create Discord session", zap.Error(err))
	}

	webhookURLs := cfg.Discord.URLs()
	webhooks := make([]pipeline.WebhookSink, 0, len(webhookURLs))
	for _, webhookURL := range webhookURLs {
		sink, err := discord.NewWebhook(discordSession, webhookURL)
		if err != nil {
			logger.Fatal("Failed to create Discord webhook sink", zap.Error(err))
		}
		webhooks = append(webhooks, sink)
	}
	logger.InfoCtx(ctx, "Discord webhook sinks ready", zap.Int("count", len(webhooks)))

	// Initialize the social sink when credentials are present
	var social pipeline.SocialSink
	if cfg.Twitter.Enabled() {
		social = twitter.NewClient(twitter.NewSignedHTTPClient(twitter.Config{
			ConsumerKey:    cfg.Twitter.ConsumerKey,
			ConsumerSecret: cfg.Twitter.ConsumerSecret,
			AccessToken:    cfg.Twitter.AccessToken,
			AccessSecret:   cfg.Twitter.AccessSecret,
		}, cfg.HTTP.Timeout), jsonAdapter)
		logger.InfoCtx(ctx, "Twitter posting enabled")
	} else {
		logger.WarnCtx(ctx, "Twitter credentials missing, social posting disabled")
	}

	// Build the notification pipeline
	pipe := pipeline.NewPipeline(pipeline.Config{
		Slugs:           slugs,
		PriceAsset:      cfg.Pricing.Asset,
		PriceCurrency:   cfg.Pricing.Currency,
		StatsTimeout:    cfg.Pipeline.StatsTimeout,
		PriceTimeout:    cfg.Pipeline.PriceTimeout,
		ImageTimeout:    cfg.Pipeline.ImageTimeout,
		DeliverTimeout:  cfg.Pipeline.DeliverTimeout,
		WorkerPoolSize:  cfg.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.Worker.WorkerQueueSize,
	},
		marketClient,
		filter.FromConfig(cfg.Filter),
		priceClient,
		imageFetcher,
		compose.NewComposer(nil),
		webhooks,
		social,
		clockAdapter,
	)

	// Start the health server
	healthServer := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}, "notifier", slugs, pipe.Stats, clockAdapter)

	go func() {
		if err := healthServer.Start(); err != nil {
			logger.Error(fmt.Errorf("health server failed: %w", err))
		}
	}()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Channel for pipeline errors
	errCh := make(chan error, 1)

	// Start the pipeline
	go func() {
		if err := pipe.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or fatal pipeline error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "pipeline"))
		cancel()
	}

	// Stop the health server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(err)
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	logger.Info("Collection sales notifier stopped")
}
