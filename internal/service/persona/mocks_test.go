package persona

import (
	"context"
	"sync"

	"github.com/ndevr/contentseer/internal/domain"
)

var _ personaRepo = &personaRepoMock{}

type personaRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Persona, error)
	ListFunc    func(ctx context.Context) ([]domain.Persona, error)
	UpsertFunc  func(ctx context.Context, p *domain.Persona) (int64, error)

	calls struct {
		GetByID []struct {
			ID int64
		}
		List   []struct{}
		Upsert []struct {
			Persona *domain.Persona
		}
	}
	mu sync.Mutex
}

func (mock *personaRepoMock) GetByID(ctx context.Context, id int64) (*domain.Persona, error) {
	if mock.GetByIDFunc == nil {
		panic("personaRepoMock.GetByIDFunc: method is nil but personaRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID int64 }{id})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *personaRepoMock) GetByIDCalls() []struct{ ID int64 } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GetByID
}

func (mock *personaRepoMock) List(ctx context.Context) ([]domain.Persona, error) {
	if mock.ListFunc == nil {
		panic("personaRepoMock.ListFunc: method is nil but personaRepo.List was just called")
	}
	mock.mu.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.mu.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *personaRepoMock) ListCalls() []struct{} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.List
}

func (mock *personaRepoMock) Upsert(ctx context.Context, p *domain.Persona) (int64, error) {
	if mock.UpsertFunc == nil {
		panic("personaRepoMock.UpsertFunc: method is nil but personaRepo.Upsert was just called")
	}
	mock.mu.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct{ Persona *domain.Persona }{p})
	mock.mu.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *personaRepoMock) UpsertCalls() []struct{ Persona *domain.Persona } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Upsert
}

var _ personaProvider = &personaProviderMock{}

type personaProviderMock struct {
	GeneratePersonasFunc func(ctx context.Context) ([]domain.Persona, error)

	calls struct {
		GeneratePersonas []struct{}
	}
	mu sync.Mutex
}

func (mock *personaProviderMock) GeneratePersonas(ctx context.Context) ([]domain.Persona, error) {
	if mock.GeneratePersonasFunc == nil {
		panic("personaProviderMock.GeneratePersonasFunc: method is nil but personaProvider.GeneratePersonas was just called")
	}
	mock.mu.Lock()
	mock.calls.GeneratePersonas = append(mock.calls.GeneratePersonas, struct{}{})
	mock.mu.Unlock()
	return mock.GeneratePersonasFunc(ctx)
}

func (mock *personaProviderMock) GeneratePersonasCalls() []struct{} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GeneratePersonas
}
