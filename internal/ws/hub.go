package ws

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/harborwatch/backend/internal/sim"
)

// Hub tracks clients waiting on queued runs, keyed by run token. A completed
// run wakes every waiter for its token.
type Hub struct {
	mu      sync.Mutex
	waiting map[string][]chan struct{}
}

func NewHub() *Hub {
	return &Hub{waiting: make(map[string][]chan struct{})}
}

// Await registers interest in a run token. The returned channel is closed
// once the run completes; cancel must be called when the waiter gives up.
func (h *Hub) Await(token string) (<-chan struct{}, func()) {
	ch := make(chan struct{})

	h.mu.Lock()
	h.waiting[token] = append(h.waiting[token], ch)
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		waiters := h.waiting[token]
		for i, w := range waiters {
			if w == ch {
				h.waiting[token] = append(waiters[:i], waiters[i+1:]...)
				break
			}
		}
		if len(h.waiting[token]) == 0 {
			delete(h.waiting, token)
		}
	}
	return ch, cancel
}

// Notify wakes all waiters for a run token.
func (h *Hub) Notify(token string) {
	h.mu.Lock()
	waiters := h.waiting[token]
	delete(h.waiting, token)
	h.mu.Unlock()

	for _, ch := range waiters {
		close(ch)
	}
}

// StartRunCompleteSubscriber forwards run completions from Redis pub/sub to
// the hub. Runs until the context is cancelled.
func StartRunCompleteSubscriber(ctx context.Context, rdb *redis.Client, hub *Hub, log *logrus.Logger) {
	if rdb == nil {
		log.Warnf("[WS] No Redis configured, run completion subscriber not started")
		return
	}

	go func() {
		sub := rdb.Subscribe(ctx, sim.RunCompleteChannel)
		defer sub.Close()

		log.Infof("[WS] Subscribed to %s", sim.RunCompleteChannel)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				hub.Notify(msg.Payload)
			}
		}
	}()
}
