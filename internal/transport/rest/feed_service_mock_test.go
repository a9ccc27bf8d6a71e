package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

var _ feedService = &feedServiceMock{}

type feedServiceMock struct {
	ListRecentFunc func(ctx context.Context, limit int) []domain.Transformation

	calls struct {
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockListRecent sync.RWMutex
}

func (mock *feedServiceMock) ListRecent(ctx context.Context, limit int) []domain.Transformation {
	if mock.ListRecentFunc == nil {
		panic("feedServiceMock.ListRecentFunc: method is nil but feedService.ListRecent was just called")
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

func (mock *feedServiceMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}
