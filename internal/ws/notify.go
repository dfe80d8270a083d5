package ws

import (
	"encoding/json"
	"time"
)

type DatasetRefreshedEvent struct {
	Type      string `json:"type"`
	Jobs      int    `json:"jobs"`
	Timestamp string `json:"timestamp"`
}

// Notifier satisfies the refresh usecase's notification hook.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyDatasetRefreshed(jobs int, at time.Time) {
	if n == nil || n.hub == nil {
		return
	}

	evt := DatasetRefreshedEvent{
		Type:      "dataset_refreshed",
		Jobs:      jobs,
		Timestamp: at.UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
