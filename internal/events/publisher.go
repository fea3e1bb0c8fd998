// Package events publishes per-session turn lifecycle updates over redis
// pub/sub so the WebSocket progress stream can relay them to the client.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Turn stages, in pipeline order.
const (
	StageTranscribing = "transcribing"
	StageEvaluating   = "evaluating"
	StageSynthesizing = "synthesizing"
	StageDone         = "done"
	StageFailed       = "failed"
)

type TurnEvent struct {
	Type      string `json:"type"` // always "status"
	Stage     string `json:"stage"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"ts"`
}

type TurnPublisher struct {
	rdb *redis.Client
}

// NewTurnPublisher returns a publisher; a nil redis client yields a disabled
// publisher whose methods are no-ops.
func NewTurnPublisher(rdb *redis.Client) *TurnPublisher {
	return &TurnPublisher{rdb: rdb}
}

func Channel(sessionID string) string {
	return "interview:" + sessionID + ":status"
}

func (p *TurnPublisher) Publish(ctx context.Context, sessionID, stage, message string) {
	if p == nil || p.rdb == nil {
		return
	}
	b, err := json.Marshal(TurnEvent{
		Type:      "status",
		Stage:     stage,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return
	}
	// best effort: a dropped status event never fails the turn
	_ = p.rdb.Publish(ctx, Channel(sessionID), string(b)).Err()
}
