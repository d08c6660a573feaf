package generation

import (
	"context"
	"sync"

	"github.com/ndevr/contentseer/internal/domain"
)

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

// markerMock satisfies both topicMarker and titleMarker.
var (
	_ topicMarker = &markerMock{}
	_ titleMarker = &markerMock{}
)

type markerMock struct {
	MarkUsedFunc       func(ctx context.Context, id, postID int64) error
	MarkUsedByTextFunc func(ctx context.Context, text string, postID int64) error

	calls struct {
		MarkUsed []struct {
			ID     int64
			PostID int64
		}
		MarkUsedByText []struct {
			Text   string
			PostID int64
		}
	}
	mu sync.Mutex
}

func (mock *markerMock) MarkUsed(ctx context.Context, id, postID int64) error {
	if mock.MarkUsedFunc == nil {
		panic("markerMock.MarkUsedFunc: method is nil but MarkUsed was just called")
	}
	mock.mu.Lock()
	mock.calls.MarkUsed = append(mock.calls.MarkUsed, struct {
		ID     int64
		PostID int64
	}{id, postID})
	mock.mu.Unlock()
	return mock.MarkUsedFunc(ctx, id, postID)
}

func (mock *markerMock) MarkUsedCalls() []struct {
	ID     int64
	PostID int64
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.MarkUsed
}

func (mock *markerMock) MarkUsedByText(ctx context.Context, text string, postID int64) error {
	if mock.MarkUsedByTextFunc == nil {
		panic("markerMock.MarkUsedByTextFunc: method is nil but MarkUsedByText was just called")
	}
	mock.mu.Lock()
	mock.calls.MarkUsedByText = append(mock.calls.MarkUsedByText, struct {
		Text   string
		PostID int64
	}{text, postID})
	mock.mu.Unlock()
	return mock.MarkUsedByTextFunc(ctx, text, postID)
}

func (mock *markerMock) MarkUsedByTextCalls() []struct {
	Text   string
	PostID int64
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.MarkUsedByText
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
