package community

import (
	"context"
	"sync"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

var _ transformationRepo = &transformationRepoMock{}

type transformationRepoMock struct {
	CreateFunc     func(ctx context.Context, t domain.NewTransformation) (*domain.Transformation, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.Transformation, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   domain.NewTransformation
		}
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockCreate     sync.RWMutex
	lockListRecent sync.RWMutex
}

func (mock *transformationRepoMock) Create(ctx context.Context, t domain.NewTransformation) (*domain.Transformation, error) {
	if mock.CreateFunc == nil {
		panic("transformationRepoMock.CreateFunc: method is nil but transformationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.NewTransformation
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *transformationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   domain.NewTransformation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *transformationRepoMock) ListRecent(ctx context.Context, limit int) ([]domain.Transformation, error) {
	if mock.ListRecentFunc == nil {
		panic("transformationRepoMock.ListRecentFunc: method is nil but transformationRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *transformationRepoMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}
