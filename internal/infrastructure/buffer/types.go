package buffer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Item is a task event waiting to be delivered to the publisher.
type Item struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	TaskID    int64           `json:"task_id"`
	Data      json.RawMessage `json:"data"`
	Retries   int             `json:"retries"`
	Timestamp time.Time       `json:"timestamp"`

	bucketKey []byte
}

func (i *Item) normalize() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now()
	}
}
