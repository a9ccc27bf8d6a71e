package studio

import (
	"context"
	"sync"

	"github.com/heartmarshall/toneshift-backend/internal/service/transform"
)

var _ transformer = &transformerMock{}

type transformerMock struct {
	TransformFunc func(ctx context.Context, in transform.TransformInput) (*transform.Result, error)

	calls struct {
		Transform []struct {
			Ctx context.Context
			In  transform.TransformInput
		}
	}
	lockTransform sync.RWMutex
}

func (mock *transformerMock) Transform(ctx context.Context, in transform.TransformInput) (*transform.Result, error) {
	if mock.TransformFunc == nil {
		panic("transformerMock.TransformFunc: method is nil but transformer.Transform was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  transform.TransformInput
	}{Ctx: ctx, In: in}
	mock.lockTransform.Lock()
	mock.calls.Transform = append(mock.calls.Transform, callInfo)
	mock.lockTransform.Unlock()
	return mock.TransformFunc(ctx, in)
}

func (mock *transformerMock) TransformCalls() []struct {
	Ctx context.Context
	In  transform.TransformInput
} {
	mock.lockTransform.RLock()
	calls := mock.calls.Transform
	mock.lockTransform.RUnlock()
	return calls
}
