package models

// SessionAnalytics aggregates the punches of one session.
type SessionAnalytics struct {
	SessionID      int64          `json:"session_id"`
	TotalPunches   int            `json:"total_punches"`
	AverageSpeed   float64        `json:"average_speed"`
	PunchTypes     map[string]int `json:"punch_types"`
	DurationMin    *float64       `json:"session_duration_minutes,omitempty"`
	Classification string         `json:"ml_classification,omitempty"`
}

// Dashboard is what the client shows on its main screen: the profile, the
// most recent sessions and the analytics of the latest one.
type Dashboard struct {
	Profile  User
	Sessions SessionList

	// Latest is nil when the user has no sessions yet.
	Latest *SessionAnalytics
}

// WeekStats aggregates one seven-day window.
type WeekStats struct {
	TotalPunches  int     `json:"total_punches"`
	AvgSpeed      float64 `json:"avg_speed"`
	SessionsCount int     `json:"sessions_count"`
}

// SparklinePoint is the punch total of the seven days ending on Date
// (YYYY-MM-DD).
type SparklinePoint struct {
	Date         string `json:"date"`
	TotalPunches int    `json:"total_punches"`
}

// WeeklyAnalytics compares the last seven days with the seven before.
type WeeklyAnalytics struct {
	ThisWeek WeekStats `json:"this_week"`
	LastWeek WeekStats `json:"last_week"`

	// DeltaPercent is the change of the punch total, rounded to one decimal.
	// It is 100 when last week was empty and this week was not.
	DeltaPercent float64 `json:"delta_percent"`

	// Sparkline holds four weekly totals, the current week first.
	Sparkline []SparklinePoint `json:"sparkline_data"`

	// FatigueProxy is the negated slope of punch speed over the latest
	// session of this week. Positive values mean the athlete slowed down.
	// Nil when there is not enough data.
	FatigueProxy *float64 `json:"fatigue_proxy,omitempty"`
}
