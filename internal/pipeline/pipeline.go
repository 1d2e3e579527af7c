package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/josephtaylor/tensorians-sales/internal/adapter"
	"github.com/josephtaylor/tensorians-sales/internal/compose"
	"github.com/josephtaylor/tensorians-sales/internal/domain"
	"github.com/josephtaylor/tensorians-sales/internal/filter"
	"github.com/josephtaylor/tensorians-sales/internal/logger"
	"github.com/josephtaylor/tensorians-sales/internal/media"
	"github.com/josephtaylor/tensorians-sales/internal/pricing"
)

const (
	DEFAULT_WORKER_POOL_SIZE  = 8
	DEFAULT_WORKER_QUEUE_SIZE = 256
)

// MarketClient is the upstream marketplace surface the pipeline consumes
//
//go:generate mockgen -source=pipeline.go -destination=../mocks/pipeline.go -package=mocks -mock_names=MarketClient=MockMarketClient,WebhookSink=MockWebhookSink,SocialSink=MockSocialSink
type MarketClient interface {
	// Connect establishes the activity stream
	Connect(ctx context.Context) error

	// SubscribeSlug starts delivery of one collection's activity
	SubscribeSlug(ctx context.Context, slug string) error

	// Events returns the stream of decoded activity. The channel closes
	// when the transport is gone.
	Events() <-chan *domain.TransactionEvent

	// CollectionStats fetches the current floor price and supply
	CollectionStats(ctx context.Context, slug string) (*domain.CollectionStats, error)

	// Close tears down the stream connection
	Close()
}

// WebhookSink delivers a composed note to one webhook destination
type WebhookSink interface {
	Send(ctx context.Context, note *compose.WebhookNote) error

	// Name returns a log-safe sink label
	Name() string
}

// SocialSink posts a composed text with optional media
type SocialSink interface {
	UploadMedia(ctx context.Context, data []byte, mimeType string) (string, error)
	Post(ctx context.Context, text string, mediaIDs []string) error
}

// Config holds the pipeline tunables
type Config struct {
	Slugs           []string
	PriceAsset      string // e.g. "solana"
	PriceCurrency   string // e.g. "usd"
	StatsTimeout    time.Duration
	PriceTimeout    time.Duration
	ImageTimeout    time.Duration
	DeliverTimeout  time.Duration
	WorkerPoolSize  int
	WorkerQueueSize int
}

// Stats is a snapshot of the pipeline counters
type Stats struct {
	Received  uint64 `json:"received"`
	Skipped   uint64 `json:"skipped"`
	Failed    uint64 `json:"failed"`
	Published uint64 `json:"published"`
}

// Pipeline consumes marketplace activity, filters and enriches each event,
// and fans the composed notifications out to every sink. Events carry no
// state across one another and may interleave arbitrarily.
type Pipeline struct {
	config   Config
	market   MarketClient
	gate     filter.Filter
	pricer   pricing.Source
	fetcher  media.Fetcher
	composer *compose.Composer
	webhooks []WebhookSink
	social   SocialSink // nil disables social posting
	clock    adapter.Clock

	pool pond.Pool

	received  atomic.Uint64
	skipped   atomic.Uint64
	failed    atomic.Uint64
	published atomic.Uint64
}

// NewPipeline creates a new notification pipeline
func NewPipeline(
	cfg Config,
	market MarketClient,
	gate filter.Filter,
	pricer pricing.Source,
	fetcher media.Fetcher,
	composer *compose.Composer,
	webhooks []WebhookSink,
	social SocialSink,
	clock adapter.Clock,
) *Pipeline {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = DEFAULT_WORKER_POOL_SIZE
	}
	if cfg.WorkerQueueSize <= 0 {
		cfg.WorkerQueueSize = DEFAULT_WORKER_QUEUE_SIZE
	}

	return &Pipeline{
		config:   cfg,
		market:   market,
		gate:     gate,
		pricer:   pricer,
		fetcher:  fetcher,
		composer: composer,
		webhooks: webhooks,
		social:   social,
		clock:    clock,
	}
}

// Run connects, subscribes every configured collection, and consumes the
// activity stream until the context ends or the transport dies. A closed
// event channel is fatal: the stream does not reconnect, so Run returns
// domain.ErrStreamClosed once in-flight events drain.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.market.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to marketplace: %w", err)
	}

	subscribed := 0
	for _, slug := range p.config.Slugs {
		if err := p.market.SubscribeSlug(ctx, slug); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to subscribe to collection: %w", err), zap.String("slug", slug))
			continue
		}
		subscribed++
	}

	logger.InfoCtx(ctx, "Collection subscriptions established",
		zap.Int("subscribed", subscribed),
		zap.Int("requested", len(p.config.Slugs)))

	p.pool = pond.NewPool(
		p.config.WorkerPoolSize,
		pond.WithQueueSize(p.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	defer func() {
		p.pool.StopAndWait()
		logger.InfoCtx(ctx, "Pipeline worker pool drained",
			zap.Uint64("submitted", p.pool.SubmittedTasks()),
			zap.Uint64("completed", p.pool.CompletedTasks()),
			zap.Uint64("failed", p.pool.FailedTasks()))
	}()

	events := p.market.Events()
	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Shutting down pipeline")
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				logger.Error(errors.New("marketplace stream closed"))
				return domain.ErrStreamClosed
			}

			p.received.Add(1)
			p.pool.SubmitErr(func() error {
				return p.handleEvent(ctx, event)
			})
		}
	}
}

// Stats returns a snapshot of the pipeline counters
func (p *Pipeline) Stats() Stats {
	return Stats{
		Received:  p.received.Load(),
		Skipped:   p.skipped.Load(),
		Failed:    p.failed.Load(),
		Published: p.published.Load(),
	}
}

// handleEvent runs one event through filter, enrichment, composition and
// delivery. Failures abort this event only.
func (p *Pipeline) handleEvent(ctx context.Context, event *domain.TransactionEvent) error {
	eventID := ulid.MustNewDefault(p.clock.Now()).String()
	tx := event.Transaction

	logger.InfoCtx(ctx, "Received marketplace event",
		zap.String("event_id", eventID),
		zap.String("slug", event.Slug),
		zap.String("tx_id", tx.ID),
		zap.String("tx_type", string(tx.Type)))

	accepted, err := p.gate.Accepts(tx)
	if err != nil {
		p.failed.Add(1)
		logger.ErrorCtx(ctx, fmt.Errorf("failed to filter event: %w", err),
			zap.String("event_id", eventID),
			zap.String("tx_id", tx.ID))
		return err
	}
	if !accepted {
		p.skipped.Add(1)
		logger.InfoCtx(ctx, "Event skipped by filter",
			zap.String("event_id", eventID),
			zap.String("tx_id", tx.ID))
		return nil
	}

	in, err := p.enrich(ctx, eventID, event)
	if err != nil {
		p.failed.Add(1)
		logger.ErrorCtx(ctx, fmt.Errorf("failed to enrich event: %w", err),
			zap.String("event_id", eventID),
			zap.String("tx_id", tx.ID))
		return err
	}

	delivered, err := p.deliver(ctx, eventID, in)
	if err != nil {
		p.failed.Add(1)
		logger.ErrorCtx(ctx, fmt.Errorf("failed to deliver event: %w", err),
			zap.String("event_id", eventID),
			zap.String("tx_id", tx.ID))
		return err
	}

	if delivered == 0 {
		p.failed.Add(1)
		logger.WarnCtx(ctx, "No sink accepted the event",
			zap.String("event_id", eventID),
			zap.String("tx_id", tx.ID))
		return fmt.Errorf("all sinks failed for transaction %s", tx.ID)
	}

	p.published.Add(1)
	logger.InfoCtx(ctx, "Event notifications delivered",
		zap.String("event_id", eventID),
		zap.String("tx_id", tx.ID),
		zap.Int("sinks", delivered))
	return nil
}

// enrich gathers collection stats, the spot price and the item image
// concurrently. Stats and spot price must succeed; the image degrades to
// nil so the notification renders with the raw URI thumbnail.
func (p *Pipeline) enrich(ctx context.Context, eventID string, event *domain.TransactionEvent) (*compose.Input, error) {
	var (
		stats *domain.CollectionStats
		spot  float64
		image *domain.ImageAsset
	)

	g, groupCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		statsCtx, cancel := context.WithTimeout(groupCtx, p.config.StatsTimeout)
		defer cancel()

		s, err := p.market.CollectionStats(statsCtx, event.Slug)
		if err != nil {
			return fmt.Errorf("failed to fetch collection stats: %w", err)
		}
		stats = s
		return nil
	})

	g.Go(func() error {
		priceCtx, cancel := context.WithTimeout(groupCtx, p.config.PriceTimeout)
		defer cancel()

		price, err := p.pricer.SpotPrice(priceCtx, p.config.PriceAsset, p.config.PriceCurrency)
		if err != nil {
			return fmt.Errorf("failed to fetch spot price: %w", err)
		}
		spot = price
		return nil
	})

	g.Go(func() error {
		imageCtx, cancel := context.WithTimeout(groupCtx, p.config.ImageTimeout)
		defer cancel()

		asset, err := p.fetcher.Fetch(imageCtx, event.Transaction.Mint.ImageURI)
		if err != nil {
			logger.WarnCtx(ctx, "image fetch failed, continuing without attachment",
				zap.String("event_id", eventID),
				zap.String("uri", event.Transaction.Mint.ImageURI),
				zap.Error(err))
			return nil
		}
		image = asset
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &compose.Input{
		Slug:  event.Slug,
		Tx:    event.Transaction,
		Stats: stats,
		Image: image,
		Spot:  spot,
	}, nil
}

// deliver composes both payloads and fans them out to every sink. Each
// sink runs in its own goroutine and a failure there is logged without
// touching the others. Returns how many sinks accepted the event.
func (p *Pipeline) deliver(ctx context.Context, eventID string, in *compose.Input) (int, error) {
	note, err := p.composer.Note(in)
	if err != nil {
		return 0, fmt.Errorf("failed to compose webhook note: %w", err)
	}

	post, err := p.composer.Post(in)
	if err != nil {
		return 0, fmt.Errorf("failed to compose social post: %w", err)
	}

	deliverCtx, cancel := context.WithTimeout(ctx, p.config.DeliverTimeout)
	defer cancel()

	var delivered atomic.Int32
	var wg sync.WaitGroup

	for _, sink := range p.webhooks {
		wg.Add(1)
		go func(sink WebhookSink) {
			defer wg.Done()

			if err := sink.Send(deliverCtx, note); err != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("webhook delivery failed: %w", err),
					zap.String("event_id", eventID),
					zap.String("sink", sink.Name()))
				return
			}

			delivered.Add(1)
			logger.InfoCtx(ctx, "Webhook delivered",
				zap.String("event_id", eventID),
				zap.String("sink", sink.Name()))
		}(sink)
	}

	if p.social != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := p.postSocial(deliverCtx, eventID, post, in.Image); err != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("social post failed: %w", err),
					zap.String("event_id", eventID))
				return
			}

			delivered.Add(1)
		}()
	}

	wg.Wait()
	return int(delivered.Load()), nil
}

// postSocial uploads the image when present, then posts. An upload
// failure degrades to a text-only post.
func (p *Pipeline) postSocial(ctx context.Context, eventID string, post *compose.SocialPost, image *domain.ImageAsset) error {
	var mediaIDs []string
	if image != nil {
		mediaID, err := p.social.UploadMedia(ctx, image.Bytes, image.MIME)
		if err != nil {
			logger.WarnCtx(ctx, "media upload failed, posting without media",
				zap.String("event_id", eventID),
				zap.Error(err))
		} else {
			mediaIDs = append(mediaIDs, mediaID)
		}
	}

	return p.social.Post(ctx, post.Text, mediaIDs)
}
