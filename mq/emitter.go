package mq

import (
	"context"
	"encoding/json"
	"log"

	"dev-events/rdx"
)

const channel = "entity-events"

// Index describes an entity change for downstream consumers (search
// indexing, notifications).
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
}

// Emit publishes an entity change to Redis Pub/Sub. Fire and forget: a
// broken broker must not fail the write that triggered it.
func Emit(ctx context.Context, eventName string, content Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event: %v", eventName, err)
	}
}
