package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// pusher periodically pushes the registry to a Pushgateway, for receivers
// that are not reachable by the scraping Prometheus.
type pusher struct {
	p        *push.Pusher
	interval time.Duration
}

func newPusher(url, instance string, g prometheus.Gatherer, interval time.Duration) *pusher {
	p := push.New(url, "gpsprom").Gatherer(g)
	if instance != "" {
		p = p.Grouping("instance", sanitizeString(instance))
	}
	return &pusher{p: p, interval: interval}
}

func (p *pusher) String() string {
	return "pusher"
}

func (p *pusher) Serve(ctx context.Context) error {
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			if err := p.p.PushContext(ctx); err != nil {
				slog.Warn("Push failed", "error", err)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
