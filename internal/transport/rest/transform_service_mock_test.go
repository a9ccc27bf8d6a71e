package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
	"github.com/heartmarshall/toneshift-backend/internal/service/transform"
)

var _ transformService = &transformServiceMock{}

type transformServiceMock struct {
	TransformFunc func(ctx context.Context, text string, tone domain.Tone) (*transform.Result, error)

	calls struct {
		Transform []struct {
			Ctx  context.Context
			Text string
			Tone domain.Tone
		}
	}
	lockTransform sync.RWMutex
}

func (mock *transformServiceMock) Transform(ctx context.Context, text string, tone domain.Tone) (*transform.Result, error) {
	if mock.TransformFunc == nil {
		panic("transformServiceMock.TransformFunc: method is nil but transformService.Transform was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
		Tone domain.Tone
	}{Ctx: ctx, Text: text, Tone: tone}
	mock.lockTransform.Lock()
	mock.calls.Transform = append(mock.calls.Transform, callInfo)
	mock.lockTransform.Unlock()
	return mock.TransformFunc(ctx, text, tone)
}

func (mock *transformServiceMock) TransformCalls() []struct {
	Ctx  context.Context
	Text string
	Tone domain.Tone
} {
	mock.lockTransform.RLock()
	calls := mock.calls.Transform
	mock.lockTransform.RUnlock()
	return calls
}
