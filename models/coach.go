package models

import "time"

// InviteCodeLength is the length of a coach invite code.
const InviteCodeLength = 8

// CoachInvite is the payload of POST /coach/invite.
type CoachInvite struct {
	AthleteEmail string `json:"athlete_email"`
}

// Invitation is a pending offer from a coach to follow an athlete. The
// athlete accepts it with Code.
type Invitation struct {
	Code       string     `json:"invite_code"`
	CoachID    int64      `json:"coach_id"`
	AthleteID  int64      `json:"athlete_id"`
	CreatedAt  time.Time  `json:"created_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
}

// InviteAccept is the payload of POST /coach/accept.
type InviteAccept struct {
	InviteCode string `json:"invite_code"`
}

// CoachLink records that a coach follows an athlete.
type CoachLink struct {
	CoachID   int64     `json:"coach_id"`
	AthleteID int64     `json:"athlete_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AthleteSummary is one row of GET /coach/athletes: the athlete's activity
// over the last seven days and the start of their latest session overall.
type AthleteSummary struct {
	ID              int64      `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	TotalPunches    int        `json:"total_punches"`
	AverageSpeed    float64    `json:"average_speed"`
	SessionsCount   int        `json:"sessions_count"`
	LastSessionDate *time.Time `json:"last_session_date,omitempty"`
}

// CoachAthletes is the body of GET /coach/athletes.
type CoachAthletes struct {
	Athletes []AthleteSummary `json:"athletes"`
}

// LeaderboardEntry ranks one athlete of a coach by punches thrown over the
// last seven days. DailyPunches holds one total per day, oldest first.
type LeaderboardEntry struct {
	AthleteID    int64   `json:"athlete_id"`
	AthleteName  string  `json:"athlete_name"`
	TotalPunches int     `json:"total_punches"`
	AvgSpeed     float64 `json:"avg_speed"`
	Rank         int     `json:"rank"`
	DailyPunches []int   `json:"daily_punches"`
}

// Leaderboard is the body of GET /coach/leaderboard. Athletes with equal
// totals share a rank.
type Leaderboard struct {
	Entries   []LeaderboardEntry `json:"entries"`
	WeekStart time.Time          `json:"week_start"`
	WeekEnd   time.Time          `json:"week_end"`
}
