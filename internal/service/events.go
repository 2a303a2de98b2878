package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/cangzhang/kaset/internal/realtime"
)

// Events fans service events out to websocket subscribers and, when redis is
// configured, to the shared broadcast channel other processes subscribe to.
type Events struct {
	hub *realtime.Hub
	rdb *redis.Client
}

func NewEvents(hub *realtime.Hub, rdb *redis.Client) *Events {
	return &Events{
		hub: hub,
		rdb: rdb,
	}
}

func (e *Events) Publish(ctx context.Context, eventType string, payload any) {
	body := map[string]any{
		"type": eventType,
	}
	if payload != nil {
		body["payload"] = payload
	}
	data, err := json.Marshal(body)
	if err != nil {
		log.Printf("kaset: marshal event: %v", err)
		return
	}

	if e.hub != nil {
		e.hub.Broadcast(data)
	}
	if e.rdb != nil {
		if err := e.rdb.Publish(ctx, "broadcast", string(data)).Err(); err != nil {
			log.Printf("kaset: publish event: %v", err)
		}
	}
}

// SessionExpired satisfies ytmusic.SessionHandler. The music client calls it
// when the upstream rejects our credentials, so every subscriber learns the
// cookies need replacing.
func (e *Events) SessionExpired() {
	e.Publish(context.Background(), "session.expired", nil)
}
