package rest

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/internal/service/export"
	"github.com/robdix/spanish-reading/internal/service/progress"
	"github.com/robdix/spanish-reading/internal/service/story"
	"github.com/robdix/spanish-reading/internal/service/vocabulary"
)

var _ progressService = &progressServiceMock{}

type progressServiceMock struct {
	LogReadingFunc     func(ctx context.Context, input progress.LogReadingInput) (domain.DailyStat, error)
	OverviewFunc       func(ctx context.Context) (domain.StatsOverview, error)
	CalendarFunc       func(ctx context.Context, input progress.CalendarInput) ([]domain.CalendarDay, error)
	SetDailyGoalFunc   func(ctx context.Context, input progress.SetGoalInput) (*domain.GoalEvent, error)
	SetOverallGoalFunc func(ctx context.Context, input progress.SetGoalInput) (*domain.UserSettings, error)
	SetTimezoneFunc    func(ctx context.Context, tz string) (*domain.UserSettings, error)

	calls struct {
		LogReading []struct {
			Ctx   context.Context
			Input progress.LogReadingInput
		}
		Overview []struct {
			Ctx context.Context
		}
		Calendar []struct {
			Ctx   context.Context
			Input progress.CalendarInput
		}
		SetDailyGoal []struct {
			Ctx   context.Context
			Input progress.SetGoalInput
		}
		SetOverallGoal []struct {
			Ctx   context.Context
			Input progress.SetGoalInput
		}
		SetTimezone []struct {
			Ctx context.Context
			Tz  string
		}
	}
	lockLogReading     sync.RWMutex
	lockOverview       sync.RWMutex
	lockCalendar       sync.RWMutex
	lockSetDailyGoal   sync.RWMutex
	lockSetOverallGoal sync.RWMutex
	lockSetTimezone    sync.RWMutex
}

func (mock *progressServiceMock) LogReading(ctx context.Context, input progress.LogReadingInput) (domain.DailyStat, error) {
	if mock.LogReadingFunc == nil {
		panic("progressServiceMock.LogReadingFunc: method is nil but progressService.LogReading was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.LogReadingInput
	}{Ctx: ctx, Input: input}
	mock.lockLogReading.Lock()
	mock.calls.LogReading = append(mock.calls.LogReading, callInfo)
	mock.lockLogReading.Unlock()
	return mock.LogReadingFunc(ctx, input)
}

func (mock *progressServiceMock) LogReadingCalls() []struct {
	Ctx   context.Context
	Input progress.LogReadingInput
} {
	mock.lockLogReading.RLock()
	calls := mock.calls.LogReading
	mock.lockLogReading.RUnlock()
	return calls
}

func (mock *progressServiceMock) Overview(ctx context.Context) (domain.StatsOverview, error) {
	if mock.OverviewFunc == nil {
		panic("progressServiceMock.OverviewFunc: method is nil but progressService.Overview was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockOverview.Lock()
	mock.calls.Overview = append(mock.calls.Overview, callInfo)
	mock.lockOverview.Unlock()
	return mock.OverviewFunc(ctx)
}

func (mock *progressServiceMock) OverviewCalls() []struct {
	Ctx context.Context
} {
	mock.lockOverview.RLock()
	calls := mock.calls.Overview
	mock.lockOverview.RUnlock()
	return calls
}

func (mock *progressServiceMock) Calendar(ctx context.Context, input progress.CalendarInput) ([]domain.CalendarDay, error) {
	if mock.CalendarFunc == nil {
		panic("progressServiceMock.CalendarFunc: method is nil but progressService.Calendar was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.CalendarInput
	}{Ctx: ctx, Input: input}
	mock.lockCalendar.Lock()
	mock.calls.Calendar = append(mock.calls.Calendar, callInfo)
	mock.lockCalendar.Unlock()
	return mock.CalendarFunc(ctx, input)
}

func (mock *progressServiceMock) CalendarCalls() []struct {
	Ctx   context.Context
	Input progress.CalendarInput
} {
	mock.lockCalendar.RLock()
	calls := mock.calls.Calendar
	mock.lockCalendar.RUnlock()
	return calls
}

func (mock *progressServiceMock) SetDailyGoal(ctx context.Context, input progress.SetGoalInput) (*domain.GoalEvent, error) {
	if mock.SetDailyGoalFunc == nil {
		panic("progressServiceMock.SetDailyGoalFunc: method is nil but progressService.SetDailyGoal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.SetGoalInput
	}{Ctx: ctx, Input: input}
	mock.lockSetDailyGoal.Lock()
	mock.calls.SetDailyGoal = append(mock.calls.SetDailyGoal, callInfo)
	mock.lockSetDailyGoal.Unlock()
	return mock.SetDailyGoalFunc(ctx, input)
}

func (mock *progressServiceMock) SetDailyGoalCalls() []struct {
	Ctx   context.Context
	Input progress.SetGoalInput
} {
	mock.lockSetDailyGoal.RLock()
	calls := mock.calls.SetDailyGoal
	mock.lockSetDailyGoal.RUnlock()
	return calls
}

func (mock *progressServiceMock) SetOverallGoal(ctx context.Context, input progress.SetGoalInput) (*domain.UserSettings, error) {
	if mock.SetOverallGoalFunc == nil {
		panic("progressServiceMock.SetOverallGoalFunc: method is nil but progressService.SetOverallGoal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.SetGoalInput
	}{Ctx: ctx, Input: input}
	mock.lockSetOverallGoal.Lock()
	mock.calls.SetOverallGoal = append(mock.calls.SetOverallGoal, callInfo)
	mock.lockSetOverallGoal.Unlock()
	return mock.SetOverallGoalFunc(ctx, input)
}

func (mock *progressServiceMock) SetOverallGoalCalls() []struct {
	Ctx   context.Context
	Input progress.SetGoalInput
} {
	mock.lockSetOverallGoal.RLock()
	calls := mock.calls.SetOverallGoal
	mock.lockSetOverallGoal.RUnlock()
	return calls
}

func (mock *progressServiceMock) SetTimezone(ctx context.Context, tz string) (*domain.UserSettings, error) {
	if mock.SetTimezoneFunc == nil {
		panic("progressServiceMock.SetTimezoneFunc: method is nil but progressService.SetTimezone was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tz  string
	}{Ctx: ctx, Tz: tz}
	mock.lockSetTimezone.Lock()
	mock.calls.SetTimezone = append(mock.calls.SetTimezone, callInfo)
	mock.lockSetTimezone.Unlock()
	return mock.SetTimezoneFunc(ctx, tz)
}

func (mock *progressServiceMock) SetTimezoneCalls() []struct {
	Ctx context.Context
	Tz  string
} {
	mock.lockSetTimezone.RLock()
	calls := mock.calls.SetTimezone
	mock.lockSetTimezone.RUnlock()
	return calls
}

var _ storyService = &storyServiceMock{}

type storyServiceMock struct {
	CreateFunc        func(ctx context.Context, input story.CreateInput) (*domain.Story, error)
	ImportArticleFunc func(ctx context.Context, input story.ImportInput) (*domain.Story, error)
	GetFunc           func(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	ListFunc          func(ctx context.Context, input story.ListInput) ([]domain.Story, error)
	TokensFunc        func(ctx context.Context, id uuid.UUID) ([]domain.Token, error)
	LookupFunc        func(ctx context.Context, id uuid.UUID, input story.LookupInput) (story.LookupResult, error)
	MarkAsReadFunc    func(ctx context.Context, id uuid.UUID) (story.MarkAsReadResult, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input story.CreateInput
		}
		ImportArticle []struct {
			Ctx   context.Context
			Input story.ImportInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input story.ListInput
		}
		Tokens []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Lookup []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input story.LookupInput
		}
		MarkAsRead []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockImportArticle sync.RWMutex
	lockGet           sync.RWMutex
	lockList          sync.RWMutex
	lockTokens        sync.RWMutex
	lockLookup        sync.RWMutex
	lockMarkAsRead    sync.RWMutex
}

func (mock *storyServiceMock) Create(ctx context.Context, input story.CreateInput) (*domain.Story, error) {
	if mock.CreateFunc == nil {
		panic("storyServiceMock.CreateFunc: method is nil but storyService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input story.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *storyServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input story.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *storyServiceMock) ImportArticle(ctx context.Context, input story.ImportInput) (*domain.Story, error) {
	if mock.ImportArticleFunc == nil {
		panic("storyServiceMock.ImportArticleFunc: method is nil but storyService.ImportArticle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input story.ImportInput
	}{Ctx: ctx, Input: input}
	mock.lockImportArticle.Lock()
	mock.calls.ImportArticle = append(mock.calls.ImportArticle, callInfo)
	mock.lockImportArticle.Unlock()
	return mock.ImportArticleFunc(ctx, input)
}

func (mock *storyServiceMock) ImportArticleCalls() []struct {
	Ctx   context.Context
	Input story.ImportInput
} {
	mock.lockImportArticle.RLock()
	calls := mock.calls.ImportArticle
	mock.lockImportArticle.RUnlock()
	return calls
}

func (mock *storyServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	if mock.GetFunc == nil {
		panic("storyServiceMock.GetFunc: method is nil but storyService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *storyServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *storyServiceMock) List(ctx context.Context, input story.ListInput) ([]domain.Story, error) {
	if mock.ListFunc == nil {
		panic("storyServiceMock.ListFunc: method is nil but storyService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input story.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *storyServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input story.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *storyServiceMock) Tokens(ctx context.Context, id uuid.UUID) ([]domain.Token, error) {
	if mock.TokensFunc == nil {
		panic("storyServiceMock.TokensFunc: method is nil but storyService.Tokens was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockTokens.Lock()
	mock.calls.Tokens = append(mock.calls.Tokens, callInfo)
	mock.lockTokens.Unlock()
	return mock.TokensFunc(ctx, id)
}

func (mock *storyServiceMock) TokensCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockTokens.RLock()
	calls := mock.calls.Tokens
	mock.lockTokens.RUnlock()
	return calls
}

func (mock *storyServiceMock) Lookup(ctx context.Context, id uuid.UUID, input story.LookupInput) (story.LookupResult, error) {
	if mock.LookupFunc == nil {
		panic("storyServiceMock.LookupFunc: method is nil but storyService.Lookup was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input story.LookupInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, id, input)
}

func (mock *storyServiceMock) LookupCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input story.LookupInput
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}

func (mock *storyServiceMock) MarkAsRead(ctx context.Context, id uuid.UUID) (story.MarkAsReadResult, error) {
	if mock.MarkAsReadFunc == nil {
		panic("storyServiceMock.MarkAsReadFunc: method is nil but storyService.MarkAsRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkAsRead.Lock()
	mock.calls.MarkAsRead = append(mock.calls.MarkAsRead, callInfo)
	mock.lockMarkAsRead.Unlock()
	return mock.MarkAsReadFunc(ctx, id)
}

func (mock *storyServiceMock) MarkAsReadCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkAsRead.RLock()
	calls := mock.calls.MarkAsRead
	mock.lockMarkAsRead.RUnlock()
	return calls
}

var _ vocabularyService = &vocabularyServiceMock{}

type vocabularyServiceMock struct {
	SaveFunc          func(ctx context.Context, input vocabulary.SaveInput) (*domain.VocabularyEntry, error)
	ListFunc          func(ctx context.Context, input vocabulary.ListInput) ([]domain.VocabularyEntry, error)
	GetFunc           func(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error)
	CountsFunc        func(ctx context.Context) (domain.VocabularyCounts, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	ResetExportedFunc func(ctx context.Context, ids []uuid.UUID) (int, error)

	calls struct {
		Save []struct {
			Ctx   context.Context
			Input vocabulary.SaveInput
		}
		List []struct {
			Ctx   context.Context
			Input vocabulary.ListInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Counts []struct {
			Ctx context.Context
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ResetExported []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
	}
	lockSave          sync.RWMutex
	lockList          sync.RWMutex
	lockGet           sync.RWMutex
	lockCounts        sync.RWMutex
	lockDelete        sync.RWMutex
	lockResetExported sync.RWMutex
}

func (mock *vocabularyServiceMock) Save(ctx context.Context, input vocabulary.SaveInput) (*domain.VocabularyEntry, error) {
	if mock.SaveFunc == nil {
		panic("vocabularyServiceMock.SaveFunc: method is nil but vocabularyService.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.SaveInput
	}{Ctx: ctx, Input: input}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, input)
}

func (mock *vocabularyServiceMock) SaveCalls() []struct {
	Ctx   context.Context
	Input vocabulary.SaveInput
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) List(ctx context.Context, input vocabulary.ListInput) ([]domain.VocabularyEntry, error) {
	if mock.ListFunc == nil {
		panic("vocabularyServiceMock.ListFunc: method is nil but vocabularyService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *vocabularyServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input vocabulary.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error) {
	if mock.GetFunc == nil {
		panic("vocabularyServiceMock.GetFunc: method is nil but vocabularyService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *vocabularyServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Counts(ctx context.Context) (domain.VocabularyCounts, error) {
	if mock.CountsFunc == nil {
		panic("vocabularyServiceMock.CountsFunc: method is nil but vocabularyService.Counts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCounts.Lock()
	mock.calls.Counts = append(mock.calls.Counts, callInfo)
	mock.lockCounts.Unlock()
	return mock.CountsFunc(ctx)
}

func (mock *vocabularyServiceMock) CountsCalls() []struct {
	Ctx context.Context
} {
	mock.lockCounts.RLock()
	calls := mock.calls.Counts
	mock.lockCounts.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("vocabularyServiceMock.DeleteFunc: method is nil but vocabularyService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *vocabularyServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) ResetExported(ctx context.Context, ids []uuid.UUID) (int, error) {
	if mock.ResetExportedFunc == nil {
		panic("vocabularyServiceMock.ResetExportedFunc: method is nil but vocabularyService.ResetExported was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{Ctx: ctx, IDs: ids}
	mock.lockResetExported.Lock()
	mock.calls.ResetExported = append(mock.calls.ResetExported, callInfo)
	mock.lockResetExported.Unlock()
	return mock.ResetExportedFunc(ctx, ids)
}

func (mock *vocabularyServiceMock) ResetExportedCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockResetExported.RLock()
	calls := mock.calls.ResetExported
	mock.lockResetExported.RUnlock()
	return calls
}

var _ exportService = &exportServiceMock{}

type exportServiceMock struct {
	AnkiFunc         func(ctx context.Context, req export.Request) (export.Result, error)
	XLSXFunc         func(ctx context.Context, req export.Request, w io.Writer) (export.Result, error)
	MarkExportedFunc func(ctx context.Context, ids []uuid.UUID) (int, error)

	calls struct {
		Anki []struct {
			Ctx context.Context
			Req export.Request
		}
		XLSX []struct {
			Ctx context.Context
			Req export.Request
			W   io.Writer
		}
		MarkExported []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
	}
	lockAnki         sync.RWMutex
	lockXLSX         sync.RWMutex
	lockMarkExported sync.RWMutex
}

func (mock *exportServiceMock) Anki(ctx context.Context, req export.Request) (export.Result, error) {
	if mock.AnkiFunc == nil {
		panic("exportServiceMock.AnkiFunc: method is nil but exportService.Anki was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req export.Request
	}{Ctx: ctx, Req: req}
	mock.lockAnki.Lock()
	mock.calls.Anki = append(mock.calls.Anki, callInfo)
	mock.lockAnki.Unlock()
	return mock.AnkiFunc(ctx, req)
}

func (mock *exportServiceMock) AnkiCalls() []struct {
	Ctx context.Context
	Req export.Request
} {
	mock.lockAnki.RLock()
	calls := mock.calls.Anki
	mock.lockAnki.RUnlock()
	return calls
}

func (mock *exportServiceMock) XLSX(ctx context.Context, req export.Request, w io.Writer) (export.Result, error) {
	if mock.XLSXFunc == nil {
		panic("exportServiceMock.XLSXFunc: method is nil but exportService.XLSX was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req export.Request
		W   io.Writer
	}{Ctx: ctx, Req: req, W: w}
	mock.lockXLSX.Lock()
	mock.calls.XLSX = append(mock.calls.XLSX, callInfo)
	mock.lockXLSX.Unlock()
	return mock.XLSXFunc(ctx, req, w)
}

func (mock *exportServiceMock) XLSXCalls() []struct {
	Ctx context.Context
	Req export.Request
	W   io.Writer
} {
	mock.lockXLSX.RLock()
	calls := mock.calls.XLSX
	mock.lockXLSX.RUnlock()
	return calls
}

func (mock *exportServiceMock) MarkExported(ctx context.Context, ids []uuid.UUID) (int, error) {
	if mock.MarkExportedFunc == nil {
		panic("exportServiceMock.MarkExportedFunc: method is nil but exportService.MarkExported was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{Ctx: ctx, IDs: ids}
	mock.lockMarkExported.Lock()
	mock.calls.MarkExported = append(mock.calls.MarkExported, callInfo)
	mock.lockMarkExported.Unlock()
	return mock.MarkExportedFunc(ctx, ids)
}

func (mock *exportServiceMock) MarkExportedCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockMarkExported.RLock()
	calls := mock.calls.MarkExported
	mock.lockMarkExported.RUnlock()
	return calls
}
