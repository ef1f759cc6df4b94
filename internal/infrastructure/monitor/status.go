package monitor

import "time"

type Status struct {
	Store        bool      `json:"store"`
	Redis        bool      `json:"redis"`
	RedisEnabled bool      `json:"redis_enabled"`
	Outbox       bool      `json:"outbox"`
	OutboxSize   int       `json:"outbox_size"`
	LastCheck    time.Time `json:"last_check"`
}

// Healthy reports whether every enabled dependency answered the last check.
func (s Status) Healthy() bool {
	if !s.Store {
		return false
	}
	return !s.RedisEnabled || s.Redis
}
