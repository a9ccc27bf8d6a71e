package transform

import (
	"context"
	"sync"
)

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	ModelFunc    func() string

	calls struct {
		Generate []struct {
			Ctx    context.Context
			Prompt string
		}
		Model []struct{}
	}
	lockGenerate sync.RWMutex
	lockModel    sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, prompt string) (string, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, prompt)
}

func (mock *generatorMock) GenerateCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *generatorMock) Model() string {
	if mock.ModelFunc == nil {
		panic("generatorMock.ModelFunc: method is nil but generator.Model was just called")
	}
	mock.lockModel.Lock()
	mock.calls.Model = append(mock.calls.Model, struct{}{})
	mock.lockModel.Unlock()
	return mock.ModelFunc()
}

func (mock *generatorMock) ModelCalls() []struct{} {
	mock.lockModel.RLock()
	calls := mock.calls.Model
	mock.lockModel.RUnlock()
	return calls
}
