package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. CurrentFocus is the virtue index snapshotted onto every new record.
type User struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	PasswordHash  string        `json:"-"`
	CurrentFocus  int           `json:"current_focus"`
	Profile       Profile       `json:"profile"`
	Notifications Notifications `json:"notifications"`
	Privacy       Privacy       `json:"privacy"`
	CreatedAt     time.Time     `json:"created_at"`
}

type Profile struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Avatar      string `json:"avatar"`
}

type Notifications struct {
	Daily        bool `json:"daily"`
	Weekly       bool `json:"weekly"`
	Achievements bool `json:"achievements"`
}

// Privacy controls what other signed-in users may read. Both flags start off.
type Privacy struct {
	ProfilePublic bool `json:"profile_public"`
	StatsPublic   bool `json:"stats_public"`
}

// NewUser fills the defaults of a fresh account: display name equal to the
// user name and every notification enabled.
func NewUser(name, passwordHash string) *User {
	return &User{
		Name:         name,
		PasswordHash: passwordHash,
		Profile:      Profile{DisplayName: name},
		Notifications: Notifications{
			Daily:        true,
			Weekly:       true,
			Achievements: true,
		},
	}
}

// PublicProfile is what a non-owner sees of a user with a public profile.
type PublicProfile struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	DisplayName string             `json:"display_name"`
	Avatar      string             `json:"avatar"`
	Bio         string             `json:"bio"`
	JoinedAt    time.Time          `json:"joined_at"`
	Stats       *UserStatsSnapshot `json:"stats"`
}

// PublicView hides settings and attaches stats only when the user shares them.
func (u *User) PublicView(stats *UserStatsSnapshot) PublicProfile {
	view := PublicProfile{
		ID:          u.ID,
		Name:        u.Name,
		DisplayName: u.Profile.DisplayName,
		Avatar:      u.Profile.Avatar,
		Bio:         u.Profile.Bio,
		JoinedAt:    u.CreatedAt,
	}
	if u.Privacy.StatsPublic {
		view.Stats = stats
	}
	return view
}

// UserStatsSnapshot is derived on demand from a user's records and never stored.
type UserStatsSnapshot struct {
	TotalDays             int        `json:"total_days"`
	TotalCompletedVirtues int        `json:"total_completed_virtues"`
	AvgCompletionRate     int        `json:"avg_completion_rate"`
	BestDayCount          int        `json:"best_day_count"`
	LastRecordDate        *time.Time `json:"last_record_date"`
	CurrentStreak         int        `json:"current_streak"`
}
