package domain

// Difficulty is the CEFR level a story is written for.
type Difficulty string

const (
	DifficultyA1 Difficulty = "A1"
	DifficultyA2 Difficulty = "A2"
	DifficultyB1 Difficulty = "B1"
	DifficultyB2 Difficulty = "B2"
	DifficultyC1 Difficulty = "C1"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyA1, DifficultyA2, DifficultyB1, DifficultyB2, DifficultyC1:
		return true
	}
	return false
}

// ContentType classifies where a story's text came from.
type ContentType string

const (
	ContentTypeStory      ContentType = "story"
	ContentTypeNews       ContentType = "news"
	ContentTypeDialogue   ContentType = "dialogue"
	ContentTypeWikipedia  ContentType = "wikipedia"
	ContentTypeTranscript ContentType = "transcript"
	ContentTypeTranslate  ContentType = "translate"
)

func (c ContentType) String() string { return string(c) }

func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeStory, ContentTypeNews, ContentTypeDialogue,
		ContentTypeWikipedia, ContentTypeTranscript, ContentTypeTranslate:
		return true
	}
	return false
}

// StoryStatus is the per-user state of a story.
type StoryStatus string

const (
	StoryStatusRead       StoryStatus = "read"
	StoryStatusSaved      StoryStatus = "saved"
	StoryStatusInProgress StoryStatus = "in_progress"
)

func (s StoryStatus) String() string { return string(s) }

func (s StoryStatus) IsValid() bool {
	switch s {
	case StoryStatusRead, StoryStatusSaved, StoryStatusInProgress:
		return true
	}
	return false
}

// ExportMode selects which vocabulary entries go into an export.
type ExportMode string

const (
	// ExportModeNew includes only entries that were never exported.
	ExportModeNew ExportMode = "new"
	// ExportModeAll includes every entry.
	ExportModeAll ExportMode = "all"
)

func (m ExportMode) String() string { return string(m) }

func (m ExportMode) IsValid() bool {
	return m == ExportModeNew || m == ExportModeAll
}

// DayStatus is the calendar color state of a single day.
type DayStatus string

const (
	// DayStatusNone means nothing was read that day.
	DayStatusNone DayStatus = "none"
	// DayStatusReached means something was read and no goal was active.
	DayStatusReached DayStatus = "reached"
	// DayStatusMet means the active daily goal was reached.
	DayStatusMet DayStatus = "met"
	// DayStatusUnder means reading happened but stayed below the goal.
	DayStatusUnder DayStatus = "under"
)

func (s DayStatus) String() string { return string(s) }
