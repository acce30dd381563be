package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings holds per-user reading preferences.
type UserSettings struct {
	UserID      uuid.UUID
	OverallGoal *int
	Timezone    string
	UpdatedAt   time.Time
}

// DefaultUserSettings returns the settings used before a user saves any.
func DefaultUserSettings(userID uuid.UUID) UserSettings {
	return UserSettings{
		UserID:   userID,
		Timezone: "UTC",
	}
}
