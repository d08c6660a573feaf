package topic

import (
	"context"
	"sync"

	"github.com/ndevr/contentseer/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	InsertIfAbsentFunc func(ctx context.Context, personaID int64, text string, source domain.Source) (bool, error)
	ListByPersonaFunc  func(ctx context.Context, personaID int64, includeUsed bool) ([]domain.Topic, error)
	SoftDeleteFunc     func(ctx context.Context, id int64) (bool, error)

	calls struct {
		InsertIfAbsent []struct {
			PersonaID int64
			Text      string
			Source    domain.Source
		}
		ListByPersona []struct {
			PersonaID   int64
			IncludeUsed bool
		}
		SoftDelete []struct {
			ID int64
		}
	}
	mu sync.Mutex
}

func (mock *topicRepoMock) InsertIfAbsent(ctx context.Context, personaID int64, text string, source domain.Source) (bool, error) {
	if mock.InsertIfAbsentFunc == nil {
		panic("topicRepoMock.InsertIfAbsentFunc: method is nil but topicRepo.InsertIfAbsent was just called")
	}
	mock.mu.Lock()
	mock.calls.InsertIfAbsent = append(mock.calls.InsertIfAbsent, struct {
		PersonaID int64
		Text      string
		Source    domain.Source
	}{personaID, text, source})
	mock.mu.Unlock()
	return mock.InsertIfAbsentFunc(ctx, personaID, text, source)
}

func (mock *topicRepoMock) InsertIfAbsentCalls() []struct {
	PersonaID int64
	Text      string
	Source    domain.Source
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.InsertIfAbsent
}

func (mock *topicRepoMock) ListByPersona(ctx context.Context, personaID int64, includeUsed bool) ([]domain.Topic, error) {
	if mock.ListByPersonaFunc == nil {
		panic("topicRepoMock.ListByPersonaFunc: method is nil but topicRepo.ListByPersona was just called")
	}
	mock.mu.Lock()
	mock.calls.ListByPersona = append(mock.calls.ListByPersona, struct {
		PersonaID   int64
		IncludeUsed bool
	}{personaID, includeUsed})
	mock.mu.Unlock()
	return mock.ListByPersonaFunc(ctx, personaID, includeUsed)
}

func (mock *topicRepoMock) ListByPersonaCalls() []struct {
	PersonaID   int64
	IncludeUsed bool
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.ListByPersona
}

func (mock *topicRepoMock) SoftDelete(ctx context.Context, id int64) (bool, error) {
	if mock.SoftDeleteFunc == nil {
		panic("topicRepoMock.SoftDeleteFunc: method is nil but topicRepo.SoftDelete was just called")
	}
	mock.mu.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct{ ID int64 }{id})
	mock.mu.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *topicRepoMock) SoftDeleteCalls() []struct{ ID int64 } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.SoftDelete
}

var _ titleCascader = &titleCascaderMock{}

type titleCascaderMock struct {
	SoftDeleteByTopicFunc func(ctx context.Context, topicID int64) (int64, error)

	calls struct {
		SoftDeleteByTopic []struct {
			TopicID int64
		}
	}
	mu sync.Mutex
}

func (mock *titleCascaderMock) SoftDeleteByTopic(ctx context.Context, topicID int64) (int64, error) {
	if mock.SoftDeleteByTopicFunc == nil {
		panic("titleCascaderMock.SoftDeleteByTopicFunc: method is nil but titleCascader.SoftDeleteByTopic was just called")
	}
	mock.mu.Lock()
	mock.calls.SoftDeleteByTopic = append(mock.calls.SoftDeleteByTopic, struct{ TopicID int64 }{topicID})
	mock.mu.Unlock()
	return mock.SoftDeleteByTopicFunc(ctx, topicID)
}

func (mock *titleCascaderMock) SoftDeleteByTopicCalls() []struct{ TopicID int64 } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.SoftDeleteByTopic
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
