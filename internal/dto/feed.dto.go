package dto

import "time"

// FeedItem is one entry of the merged calendar stream.
type FeedItem struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Start         time.Time      `json:"start"`
	End           *time.Time     `json:"end,omitempty"`
	AllDay        bool           `json:"allDay"`
	Color         string         `json:"color"`
	ClassNames    []string       `json:"classNames"`
	ExtendedProps map[string]any `json:"extendedProps"`
}

// MutationResult is returned by every create/update/delete action.
type MutationResult struct {
	ID        uint   `json:"id,omitempty"`
	StreamID  string `json:"stream_id,omitempty"`
	EventType string `json:"event_type,omitempty"`
	Message   string `json:"message"`

	// FollowUps holds ids of generated recurrences.
	FollowUps []uint `json:"follow_ups,omitempty"`
}
