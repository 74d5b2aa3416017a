// Package queue fans freshly installed snapshots out to Kafka for
// downstream consumers.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/thebettinginsider/splitsight/internal/splits"
)

// gameMessage is the per-game payload placed on the splits topic.
type gameMessage struct {
	Game       splits.Game `json:"game"`
	CapturedAt string      `json:"captured_at"`
}

// PublishSnapshot emits one message per game in the snapshot. A nil
// writer or an empty snapshot is a no-op.
func PublishSnapshot(ctx context.Context, writer *kafka.Writer, snap splits.Snapshot) error {
	if writer == nil || len(snap.Games) == 0 {
		return nil
	}

	captured := snap.CapturedAt.UTC()
	msgs := make([]kafka.Message, 0, len(snap.Games))
	for _, g := range snap.Games {
		payload, err := json.Marshal(gameMessage{
			Game:       g,
			CapturedAt: captured.Format(time.RFC3339Nano),
		})
		if err != nil {
			return fmt.Errorf("marshal game %s: %w", g.Title, err)
		}
		key := fmt.Sprintf("%s-%s-%d", g.Title, g.ScrapedDateRange, captured.UnixNano())
		msgs = append(msgs, kafka.Message{Key: []byte(key), Value: payload})
	}

	return writer.WriteMessages(ctx, msgs...)
}
