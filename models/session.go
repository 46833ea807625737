package models

import "time"

// TrainingSession is one boxing workout owned by a user.
type TrainingSession struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Name      string     `json:"name"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// Active reports whether the session has not been ended yet.
func (s TrainingSession) Active() bool {
	return s.EndedAt == nil
}

// SessionCreate is the payload of POST /sessions.
type SessionCreate struct {
	Name string `json:"name"`
}

// SessionUpdate is the payload of PATCH /sessions/{id}. Nil fields are left
// untouched.
type SessionUpdate struct {
	Name    *string    `json:"name,omitempty"`
	EndedAt *time.Time `json:"ended_at,omitempty"`
}

// SessionList is a page of sessions ordered by StartedAt, newest first.
type SessionList struct {
	Sessions []TrainingSession `json:"sessions"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}
