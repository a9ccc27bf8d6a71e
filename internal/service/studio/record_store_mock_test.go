package studio

import (
	"context"
	"sync"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	AppendFunc     func(ctx context.Context, t domain.NewTransformation) (*domain.Transformation, error)
	ListRecentFunc func(ctx context.Context, limit int) []domain.Transformation

	calls struct {
		Append []struct {
			Ctx context.Context
			T   domain.NewTransformation
		}
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockAppend     sync.RWMutex
	lockListRecent sync.RWMutex
}

func (mock *recordStoreMock) Append(ctx context.Context, t domain.NewTransformation) (*domain.Transformation, error) {
	if mock.AppendFunc == nil {
		panic("recordStoreMock.AppendFunc: method is nil but recordStore.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.NewTransformation
	}{Ctx: ctx, T: t}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, t)
}

func (mock *recordStoreMock) AppendCalls() []struct {
	Ctx context.Context
	T   domain.NewTransformation
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *recordStoreMock) ListRecent(ctx context.Context, limit int) []domain.Transformation {
	if mock.ListRecentFunc == nil {
		panic("recordStoreMock.ListRecentFunc: method is nil but recordStore.ListRecent was just called")
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

func (mock *recordStoreMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}
