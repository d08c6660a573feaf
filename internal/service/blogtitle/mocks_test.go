package blogtitle

import (
	"context"
	"sync"

	"github.com/ndevr/contentseer/internal/domain"
)

var _ titleRepo = &titleRepoMock{}

type titleRepoMock struct {
	InsertIfAbsentFunc func(ctx context.Context, topicID int64, text string, source domain.Source) (bool, error)
	ListByTopicFunc    func(ctx context.Context, topicID int64, includeUsed bool) ([]domain.BlogTitle, error)
	SoftDeleteFunc     func(ctx context.Context, id int64) (bool, error)

	calls struct {
		InsertIfAbsent []struct {
			TopicID int64
			Text    string
			Source  domain.Source
		}
		ListByTopic []struct {
			TopicID     int64
			IncludeUsed bool
		}
		SoftDelete []struct {
			ID int64
		}
	}
	mu sync.Mutex
}

func (mock *titleRepoMock) InsertIfAbsent(ctx context.Context, topicID int64, text string, source domain.Source) (bool, error) {
	if mock.InsertIfAbsentFunc == nil {
		panic("titleRepoMock.InsertIfAbsentFunc: method is nil but titleRepo.InsertIfAbsent was just called")
	}
	mock.mu.Lock()
	mock.calls.InsertIfAbsent = append(mock.calls.InsertIfAbsent, struct {
		TopicID int64
		Text    string
		Source  domain.Source
	}{topicID, text, source})
	mock.mu.Unlock()
	return mock.InsertIfAbsentFunc(ctx, topicID, text, source)
}

func (mock *titleRepoMock) InsertIfAbsentCalls() []struct {
	TopicID int64
	Text    string
	Source  domain.Source
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.InsertIfAbsent
}

func (mock *titleRepoMock) ListByTopic(ctx context.Context, topicID int64, includeUsed bool) ([]domain.BlogTitle, error) {
	if mock.ListByTopicFunc == nil {
		panic("titleRepoMock.ListByTopicFunc: method is nil but titleRepo.ListByTopic was just called")
	}
	mock.mu.Lock()
	mock.calls.ListByTopic = append(mock.calls.ListByTopic, struct {
		TopicID     int64
		IncludeUsed bool
	}{topicID, includeUsed})
	mock.mu.Unlock()
	return mock.ListByTopicFunc(ctx, topicID, includeUsed)
}

func (mock *titleRepoMock) ListByTopicCalls() []struct {
	TopicID     int64
	IncludeUsed bool
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.ListByTopic
}

func (mock *titleRepoMock) SoftDelete(ctx context.Context, id int64) (bool, error) {
	if mock.SoftDeleteFunc == nil {
		panic("titleRepoMock.SoftDeleteFunc: method is nil but titleRepo.SoftDelete was just called")
	}
	mock.mu.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct{ ID int64 }{id})
	mock.mu.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *titleRepoMock) SoftDeleteCalls() []struct{ ID int64 } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.SoftDelete
}

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Topic, error)

	calls struct {
		GetByID []struct {
			ID int64
		}
	}
	mu sync.Mutex
}

func (mock *topicRepoMock) GetByID(ctx context.Context, id int64) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID int64 }{id})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *topicRepoMock) GetByIDCalls() []struct{ ID int64 } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GetByID
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
