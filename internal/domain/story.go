package domain

import (
	"time"

	"github.com/google/uuid"
)

// Story is a stored reading text.
type Story struct {
	ID          uuid.UUID
	Title       string
	Content     string
	Difficulty  *Difficulty
	ContentType ContentType
	WordCount   int
	SourceURL   *string
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
}

// UserStory records a user's progress on a story.
type UserStory struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	StoryID     uuid.UUID
	Status      StoryStatus
	WordsRead   int
	CompletedAt *time.Time
	CreatedAt   time.Time
	LastReadAt  time.Time
}

// StoryFilter narrows story listings.
type StoryFilter struct {
	Difficulty  *Difficulty
	ContentType *ContentType
	Limit       int
	Offset      int
}
