package models

import "time"

// Punch types recognised by the analytics endpoint. Other values are stored
// as-is.
const (
	PunchJab      = "jab"
	PunchCross    = "cross"
	PunchHook     = "hook"
	PunchUppercut = "uppercut"
)

// Punch is a logged group of identical punches within a session.
type Punch struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
	PunchType string    `json:"punch_type"`
	Speed     float64   `json:"speed"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

// PunchCreate is the payload of POST /punches. Count defaults to 1.
type PunchCreate struct {
	SessionID int64   `json:"session_id"`
	PunchType string  `json:"punch_type"`
	Speed     float64 `json:"speed"`
	Count     int     `json:"count,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}
