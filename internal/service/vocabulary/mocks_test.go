package vocabulary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
)

var _ vocabRepo = &vocabRepoMock{}

var _ storyReader = &storyReaderMock{}

type vocabRepoMock struct {
	UpsertFunc        func(ctx context.Context, entry domain.VocabularyEntry) (*domain.VocabularyEntry, error)
	GetByIDFunc       func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.VocabularyEntry, error)
	ListFunc          func(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyEntry, error)
	DeleteFunc        func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	ResetExportedFunc func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)
	CountsFunc        func(ctx context.Context, userID uuid.UUID) (domain.VocabularyCounts, error)

	calls struct {
		Upsert []struct {
			Ctx   context.Context
			Entry domain.VocabularyEntry
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.VocabularyFilter
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		ResetExported []struct {
			Ctx    context.Context
			UserID uuid.UUID
			IDs    []uuid.UUID
		}
		Counts []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockUpsert        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockList          sync.RWMutex
	lockDelete        sync.RWMutex
	lockResetExported sync.RWMutex
	lockCounts        sync.RWMutex
}

func (mock *vocabRepoMock) Upsert(ctx context.Context, entry domain.VocabularyEntry) (*domain.VocabularyEntry, error) {
	if mock.UpsertFunc == nil {
		panic("vocabRepoMock.UpsertFunc: method is nil but vocabRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.VocabularyEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, entry)
}

func (mock *vocabRepoMock) UpsertCalls() []struct {
	Ctx   context.Context
	Entry domain.VocabularyEntry
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *vocabRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.VocabularyEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("vocabRepoMock.GetByIDFunc: method is nil but vocabRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *vocabRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *vocabRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyEntry, error) {
	if mock.ListFunc == nil {
		panic("vocabRepoMock.ListFunc: method is nil but vocabRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.VocabularyFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *vocabRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.VocabularyFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *vocabRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("vocabRepoMock.DeleteFunc: method is nil but vocabRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *vocabRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *vocabRepoMock) ResetExported(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	if mock.ResetExportedFunc == nil {
		panic("vocabRepoMock.ResetExportedFunc: method is nil but vocabRepo.ResetExported was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		IDs    []uuid.UUID
	}{Ctx: ctx, UserID: userID, IDs: ids}
	mock.lockResetExported.Lock()
	mock.calls.ResetExported = append(mock.calls.ResetExported, callInfo)
	mock.lockResetExported.Unlock()
	return mock.ResetExportedFunc(ctx, userID, ids)
}

func (mock *vocabRepoMock) ResetExportedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	IDs    []uuid.UUID
} {
	mock.lockResetExported.RLock()
	calls := mock.calls.ResetExported
	mock.lockResetExported.RUnlock()
	return calls
}

func (mock *vocabRepoMock) Counts(ctx context.Context, userID uuid.UUID) (domain.VocabularyCounts, error) {
	if mock.CountsFunc == nil {
		panic("vocabRepoMock.CountsFunc: method is nil but vocabRepo.Counts was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCounts.Lock()
	mock.calls.Counts = append(mock.calls.Counts, callInfo)
	mock.lockCounts.Unlock()
	return mock.CountsFunc(ctx, userID)
}

func (mock *vocabRepoMock) CountsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCounts.RLock()
	calls := mock.calls.Counts
	mock.lockCounts.RUnlock()
	return calls
}

type storyReaderMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Story, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *storyReaderMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	if mock.GetByIDFunc == nil {
		panic("storyReaderMock.GetByIDFunc: method is nil but storyReader.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *storyReaderMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

