// Command webhook-smoke delivers a fabricated sale notification to a Discord
// webhook so an operator can verify the webhook URL and embed rendering before
// pointing the notifier at it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/josephtaylor/tensorians-sales/internal/adapter"
	"github.com/josephtaylor/tensorians-sales/internal/compose"
	"github.com/josephtaylor/tensorians-sales/internal/providers/discord"
)

type Config struct {
	WebhookURL string
	Slug       string
	Spot       float64
	Timeout    time.Duration
	DryRun     bool
}

func parseFlags() Config {
	var cfg Config

	flag.StringVar(&cfg.WebhookURL, "webhook-url", "", "Discord webhook URL to deliver to (required unless -dry-run)")
	flag.StringVar(&cfg.Slug, "slug", "tensorians", "Collection slug to render in the sample event")
	flag.Float64Var(&cfg.Spot, "spot", 150.0, "USD per SOL used for the fiat lines")
	flag.DurationVar(&cfg.Timeout, "timeout", 15*time.Second, "Delivery timeout")
	flag.BoolVar(&cfg.DryRun, "dry-run", false, "Render the notification to stdout without sending")

	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	if !cfg.DryRun && cfg.WebhookURL == "" {
		fmt.Fprintln(os.Stderr, "Error: -webhook-url is required (or pass -dry-run)")
		flag.Usage()
		os.Exit(1)
	}

	in := sampleInput(cfg.Slug, cfg.Spot)

	note, err := compose.NewComposer(nil).Note(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to compose sample notification: %v\n", err)
		os.Exit(1)
	}

	printNote(cfg, note)

	if cfg.DryRun {
		return
	}

	session, err := adapter.NewDiscordSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create Discord session: %v\n", err)
		os.Exit(1)
	}

	sink, err := discord.NewWebhook(session, cfg.WebhookURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	start := time.Now()
	if err := sink.Send(ctx, note); err != nil {
		fmt.Fprintf(os.Stderr, "Error: delivery to %s failed: %v\n", sink.Name(), err)
		os.Exit(1)
	}

	fmt.Printf("\nDelivered to %s in %v\n", sink.Name(), time.Since(start).Round(time.Millisecond))
}

func printNote(cfg Config, note *compose.WebhookNote) {
	fmt.Printf("Sample notification for %q\n", cfg.Slug)
	fmt.Printf("  Title:     %s\n", note.Embed.Title)
	fmt.Printf("  URL:       %s\n", note.Embed.URL)
	fmt.Printf("  Color:     #%06X\n", note.Embed.Color)
	fmt.Printf("  Thumbnail: %s\n", note.Embed.Thumbnail)
	for _, f := range note.Embed.Fields {
		fmt.Printf("  %-9s %s\n", f.Name+":", f.Value)
	}
}
