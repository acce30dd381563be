package progress

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
)

var _ statRepo = &statRepoMock{}

type statRepoMock struct {
	GetForUpdateFunc func(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyStat, error)
	InsertFunc       func(ctx context.Context, stat domain.DailyStat) (*domain.DailyStat, error)
	UpdateFunc       func(ctx context.Context, stat domain.DailyStat) (*domain.DailyStat, error)
	ListFunc         func(ctx context.Context, userID uuid.UUID, from *time.Time, to *time.Time) ([]domain.DailyStat, error)

	calls struct {
		GetForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
		Insert []struct {
			Ctx  context.Context
			Stat domain.DailyStat
		}
		Update []struct {
			Ctx  context.Context
			Stat domain.DailyStat
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   *time.Time
			To     *time.Time
		}
	}
	lockGetForUpdate sync.RWMutex
	lockInsert       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockList         sync.RWMutex
}

func (mock *statRepoMock) GetForUpdate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyStat, error) {
	if mock.GetForUpdateFunc == nil {
		panic("statRepoMock.GetForUpdateFunc: method is nil but statRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, Date: date}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, userID, date)
}

func (mock *statRepoMock) GetForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *statRepoMock) Insert(ctx context.Context, stat domain.DailyStat) (*domain.DailyStat, error) {
	if mock.InsertFunc == nil {
		panic("statRepoMock.InsertFunc: method is nil but statRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Stat domain.DailyStat
	}{Ctx: ctx, Stat: stat}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, stat)
}

func (mock *statRepoMock) InsertCalls() []struct {
	Ctx  context.Context
	Stat domain.DailyStat
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *statRepoMock) Update(ctx context.Context, stat domain.DailyStat) (*domain.DailyStat, error) {
	if mock.UpdateFunc == nil {
		panic("statRepoMock.UpdateFunc: method is nil but statRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Stat domain.DailyStat
	}{Ctx: ctx, Stat: stat}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, stat)
}

func (mock *statRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Stat domain.DailyStat
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *statRepoMock) List(ctx context.Context, userID uuid.UUID, from *time.Time, to *time.Time) ([]domain.DailyStat, error) {
	if mock.ListFunc == nil {
		panic("statRepoMock.ListFunc: method is nil but statRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   *time.Time
		To     *time.Time
	}{Ctx: ctx, UserID: userID, From: from, To: to}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, from, to)
}

func (mock *statRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   *time.Time
	To     *time.Time
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ goalRepo = &goalRepoMock{}

type goalRepoMock struct {
	AppendFunc    func(ctx context.Context, ev domain.GoalEvent) (*domain.GoalEvent, error)
	ListUntilFunc func(ctx context.Context, userID uuid.UUID, until time.Time) ([]domain.GoalEvent, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			Ev  domain.GoalEvent
		}
		ListUntil []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Until  time.Time
		}
	}
	lockAppend    sync.RWMutex
	lockListUntil sync.RWMutex
}

func (mock *goalRepoMock) Append(ctx context.Context, ev domain.GoalEvent) (*domain.GoalEvent, error) {
	if mock.AppendFunc == nil {
		panic("goalRepoMock.AppendFunc: method is nil but goalRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.GoalEvent
	}{Ctx: ctx, Ev: ev}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, ev)
}

func (mock *goalRepoMock) AppendCalls() []struct {
	Ctx context.Context
	Ev  domain.GoalEvent
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *goalRepoMock) ListUntil(ctx context.Context, userID uuid.UUID, until time.Time) ([]domain.GoalEvent, error) {
	if mock.ListUntilFunc == nil {
		panic("goalRepoMock.ListUntilFunc: method is nil but goalRepo.ListUntil was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Until  time.Time
	}{Ctx: ctx, UserID: userID, Until: until}
	mock.lockListUntil.Lock()
	mock.calls.ListUntil = append(mock.calls.ListUntil, callInfo)
	mock.lockListUntil.Unlock()
	return mock.ListUntilFunc(ctx, userID, until)
}

func (mock *goalRepoMock) ListUntilCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Until  time.Time
} {
	mock.lockListUntil.RLock()
	calls := mock.calls.ListUntil
	mock.lockListUntil.RUnlock()
	return calls
}

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetFunc               func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpsertOverallGoalFunc func(ctx context.Context, userID uuid.UUID, goal int) (*domain.UserSettings, error)
	UpsertTimezoneFunc    func(ctx context.Context, userID uuid.UUID, tz string) (*domain.UserSettings, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpsertOverallGoal []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Goal   int
		}
		UpsertTimezone []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Tz     string
		}
	}
	lockGet               sync.RWMutex
	lockUpsertOverallGoal sync.RWMutex
	lockUpsertTimezone    sync.RWMutex
}

func (mock *settingsRepoMock) Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	if mock.GetFunc == nil {
		panic("settingsRepoMock.GetFunc: method is nil but settingsRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *settingsRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *settingsRepoMock) UpsertOverallGoal(ctx context.Context, userID uuid.UUID, goal int) (*domain.UserSettings, error) {
	if mock.UpsertOverallGoalFunc == nil {
		panic("settingsRepoMock.UpsertOverallGoalFunc: method is nil but settingsRepo.UpsertOverallGoal was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Goal   int
	}{Ctx: ctx, UserID: userID, Goal: goal}
	mock.lockUpsertOverallGoal.Lock()
	mock.calls.UpsertOverallGoal = append(mock.calls.UpsertOverallGoal, callInfo)
	mock.lockUpsertOverallGoal.Unlock()
	return mock.UpsertOverallGoalFunc(ctx, userID, goal)
}

func (mock *settingsRepoMock) UpsertOverallGoalCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Goal   int
} {
	mock.lockUpsertOverallGoal.RLock()
	calls := mock.calls.UpsertOverallGoal
	mock.lockUpsertOverallGoal.RUnlock()
	return calls
}

func (mock *settingsRepoMock) UpsertTimezone(ctx context.Context, userID uuid.UUID, tz string) (*domain.UserSettings, error) {
	if mock.UpsertTimezoneFunc == nil {
		panic("settingsRepoMock.UpsertTimezoneFunc: method is nil but settingsRepo.UpsertTimezone was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Tz     string
	}{Ctx: ctx, UserID: userID, Tz: tz}
	mock.lockUpsertTimezone.Lock()
	mock.calls.UpsertTimezone = append(mock.calls.UpsertTimezone, callInfo)
	mock.lockUpsertTimezone.Unlock()
	return mock.UpsertTimezoneFunc(ctx, userID, tz)
}

func (mock *settingsRepoMock) UpsertTimezoneCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Tz     string
} {
	mock.lockUpsertTimezone.RLock()
	calls := mock.calls.UpsertTimezone
	mock.lockUpsertTimezone.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
