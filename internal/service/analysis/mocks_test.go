package analysis

import (
	"context"
	"sync"

	"github.com/ndevr/contentseer/internal/domain"
)

var _ analysisRepo = &analysisRepoMock{}

type analysisRepoMock struct {
	UpsertFunc      func(ctx context.Context, a *domain.Analysis) error
	GetByPostIDFunc func(ctx context.Context, postID int64) (*domain.Analysis, error)

	calls struct {
		Upsert []struct {
			Analysis *domain.Analysis
		}
		GetByPostID []struct {
			PostID int64
		}
	}
	mu sync.Mutex
}

func (mock *analysisRepoMock) Upsert(ctx context.Context, a *domain.Analysis) error {
	if mock.UpsertFunc == nil {
		panic("analysisRepoMock.UpsertFunc: method is nil but analysisRepo.Upsert was just called")
	}
	mock.mu.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct{ Analysis *domain.Analysis }{a})
	mock.mu.Unlock()
	return mock.UpsertFunc(ctx, a)
}

func (mock *analysisRepoMock) UpsertCalls() []struct{ Analysis *domain.Analysis } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Upsert
}

func (mock *analysisRepoMock) GetByPostID(ctx context.Context, postID int64) (*domain.Analysis, error) {
	if mock.GetByPostIDFunc == nil {
		panic("analysisRepoMock.GetByPostIDFunc: method is nil but analysisRepo.GetByPostID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByPostID = append(mock.calls.GetByPostID, struct{ PostID int64 }{postID})
	mock.mu.Unlock()
	return mock.GetByPostIDFunc(ctx, postID)
}

func (mock *analysisRepoMock) GetByPostIDCalls() []struct{ PostID int64 } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GetByPostID
}

var _ personaRepo = &personaRepoMock{}

type personaRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Persona, error)

	calls struct {
		GetByID []struct {
			ID int64
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

var _ webhookClient = &webhookClientMock{}

type webhookClientMock struct {
	PostFunc func(ctx context.Context, url string, payload, out any) error

	calls struct {
		Post []struct {
			URL     string
			Payload any
		}
	}
	mu sync.Mutex
}

func (mock *webhookClientMock) Post(ctx context.Context, url string, payload, out any) error {
	if mock.PostFunc == nil {
		panic("webhookClientMock.PostFunc: method is nil but webhookClient.Post was just called")
	}
	mock.mu.Lock()
	mock.calls.Post = append(mock.calls.Post, struct {
		URL     string
		Payload any
	}{url, payload})
	mock.mu.Unlock()
	return mock.PostFunc(ctx, url, payload, out)
}

func (mock *webhookClientMock) PostCalls() []struct {
	URL     string
	Payload any
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Post
}
