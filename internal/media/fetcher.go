package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/josephtaylor/tensorians-sales/internal/adapter"
	"github.com/josephtaylor/tensorians-sales/internal/domain"
	"github.com/josephtaylor/tensorians-sales/internal/logger"
	"github.com/josephtaylor/tensorians-sales/internal/uri"
)

// Fetcher downloads an item image and identifies its type by content
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/media_fetcher.go -package=mocks -mock_names=Fetcher=MockImageFetcher
type Fetcher interface {
	// Fetch downloads the image behind imageURI and sniffs its MIME type.
	// It returns (nil, nil) when the content is not a recognizable image,
	// letting callers fall back to the raw URI.
	Fetch(ctx context.Context, imageURI string) (*domain.ImageAsset, error)
}

type fetcher struct {
	httpClient adapter.HTTPClient
	resolver   uri.Resolver
	maxBytes   int64
}

// NewFetcher creates an image fetcher with a download cap in bytes
func NewFetcher(httpClient adapter.HTTPClient, resolver uri.Resolver, maxBytes int64) Fetcher {
	return &fetcher{
		httpClient: httpClient,
		resolver:   resolver,
		maxBytes:   maxBytes,
	}
}

func (f *fetcher) Fetch(ctx context.Context, imageURI string) (*domain.ImageAsset, error) {
	if imageURI == "" {
		return nil, nil
	}

	resolvedURL, err := f.resolver.Resolve(ctx, imageURI)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image uri: %w", err)
	}

	logger.DebugCtx(ctx, "Downloading image",
		zap.String("uri", imageURI),
		zap.String("url", resolvedURL))

	data, err := f.httpClient.GetBytes(ctx, resolvedURL, nil, f.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		logger.WarnCtx(ctx, "Downloaded content is not an image",
			zap.String("url", resolvedURL),
			zap.String("mimeType", mtype.String()))
		return nil, nil
	}

	logger.DebugCtx(ctx, "Detected image type",
		zap.String("url", resolvedURL),
		zap.String("mimeType", mtype.String()),
		zap.Int("bytes", len(data)))

	return &domain.ImageAsset{
		Bytes: data,
		Ext:   mtype.Extension(),
		MIME:  mtype.String(),
	}, nil
}
