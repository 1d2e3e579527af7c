package uri

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/josephtaylor/tensorians-sales/internal/adapter"
	"github.com/josephtaylor/tensorians-sales/internal/logger"
)

// Config holds configuration for the URI resolver
type Config struct {
	// IPFSGateways is the list of IPFS gateways to try
	IPFSGateways []string
	// ArweaveGateways is the list of Arweave gateways to try
	ArweaveGateways []string
}

// Resolver defines the interface for resolving URIs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Resolve resolves the URI to a fetchable URL.
	// It handles the ipfs:// and ar:// schemes by racing the configured
	// gateways with HEAD requests and returning the first that answers 200.
	// Plain http(s) URLs pass through untouched.
	Resolve(ctx context.Context, uri string) (string, error)
}

type resolver struct {
	httpClient adapter.HTTPClient
	config     *Config
}

func NewResolver(httpClient adapter.HTTPClient, config *Config) Resolver {
	return &resolver{
		httpClient: httpClient,
		config:     config,
	}
}

func (r *resolver) Resolve(ctx context.Context, uri string) (string, error) {
	// Handle IPFS URLs
	if cid, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		return r.resolveIPFS(ctx, cid)
	}

	// Handle Arweave URLs
	if txID, ok := strings.CutPrefix(uri, "ar://"); ok {
		return r.resolveArweave(ctx, txID)
	}

	// Handle IPFS gateway URLs (e.g., https://example.com/ipfs/QmXxx)
	if strings.Contains(uri, "/ipfs/") {
		parts := strings.Split(uri, "/ipfs/")
		if len(parts) >= 2 {
			return r.resolveIPFS(ctx, parts[1])
		}
	}

	// Regular HTTP(S) URL
	return uri, nil
}

func (r *resolver) resolveIPFS(ctx context.Context, cid string) (string, error) {
	if len(r.config.IPFSGateways) == 0 {
		return "", fmt.Errorf("no IPFS gateways configured")
	}

	logger.InfoCtx(ctx, "Resolving IPFS CID", zap.String("cid", cid), zap.Int("gateways", len(r.config.IPFSGateways)))

	candidates := make([]string, 0, len(r.config.IPFSGateways))
	for _, gw := range r.config.IPFSGateways {
		candidates = append(candidates, fmt.Sprintf("%s/ipfs/%s", gw, cid))
	}

	url, err := r.raceGateways(ctx, candidates)
	if err != nil {
		return "", fmt.Errorf("no working IPFS gateway found for CID %s: %w", cid, err)
	}
	return url, nil
}

func (r *resolver) resolveArweave(ctx context.Context, txID string) (string, error) {
	if len(r.config.ArweaveGateways) == 0 {
		return "", fmt.Errorf("no Arweave gateways configured")
	}

	logger.InfoCtx(ctx, "Resolving Arweave TX", zap.String("txID", txID), zap.Int("gateways", len(r.config.ArweaveGateways)))

	candidates := make([]string, 0, len(r.config.ArweaveGateways))
	for _, gw := range r.config.ArweaveGateways {
		candidates = append(candidates, fmt.Sprintf("%s/%s", gw, txID))
	}

	url, err := r.raceGateways(ctx, candidates)
	if err != nil {
		return "", fmt.Errorf("no working Arweave gateway found for TX %s: %w", txID, err)
	}
	return url, nil
}

// raceGateways HEADs all candidate URLs in parallel and returns the first
// that answers with 200
func (r *resolver) raceGateways(ctx context.Context, candidates []string) (string, error) {
	type result struct {
		url string
		err error
	}

	resultCh := make(chan result, len(candidates))
	var wg sync.WaitGroup

	for _, candidate := range candidates {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()

			resp, err := r.httpClient.Head(ctx, url)
			if err != nil {
				resultCh <- result{err: err}
				return
			}
			if err := resp.Body.Close(); err != nil {
				logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
			}

			if resp.StatusCode == http.StatusOK {
				resultCh <- result{url: url}
			} else {
				resultCh <- result{err: fmt.Errorf("gateway returned status %d", resp.StatusCode)}
			}
		}(candidate)
	}

	// Close the channel once every probe has reported
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var lastErr error
	for res := range resultCh {
		if res.err == nil {
			logger.InfoCtx(ctx, "Found working gateway", zap.String("url", res.url))
			return res.url, nil
		}
		lastErr = res.err
	}

	return "", lastErr
}
