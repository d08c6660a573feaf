package persona

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndevr/contentseer/internal/domain"
)

func newTestService(personas *personaRepoMock, provider *personaProviderMock) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, personas, provider)
}

func TestGet_Success(t *testing.T) {
	t.Parallel()

	personas := &personaRepoMock{
		GetByIDFunc: func(_ context.Context, id int64) (*domain.Persona, error) {
			assert.Equal(t, int64(1), id)
			return &domain.Persona{ID: 1, JobTitle: "CTO"}, nil
		},
	}

	svc := newTestService(personas, nil)
	persona, err := svc.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "CTO", persona.JobTitle)
}

func TestGet_InvalidID(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil)

	_, err := svc.Get(context.Background(), 0)

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestList_Passthrough(t *testing.T) {
	t.Parallel()

	personas := &personaRepoMock{
		ListFunc: func(_ context.Context) ([]domain.Persona, error) {
			return []domain.Persona{{ID: 1}, {ID: 2}}, nil
		},
	}

	svc := newTestService(personas, nil)
	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestGenerateAndImport_UpsertsEach(t *testing.T) {
	t.Parallel()

	provider := &personaProviderMock{
		GeneratePersonasFunc: func(_ context.Context) ([]domain.Persona, error) {
			return []domain.Persona{
				{JobTitle: "CTO", Name: "Tech Leads"},
				{JobTitle: "Founder", Name: "Founders"},
			}, nil
		},
	}
	nextID := int64(0)
	personas := &personaRepoMock{
		UpsertFunc: func(_ context.Context, p *domain.Persona) (int64, error) {
			nextID++
			return nextID, nil
		},
	}

	svc := newTestService(personas, provider)
	stored, err := svc.GenerateAndImport(context.Background())

	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, int64(1), stored[0].ID)
	assert.Equal(t, "CTO", stored[0].JobTitle)
	assert.Equal(t, int64(2), stored[1].ID)
	assert.Len(t, personas.UpsertCalls(), 2)
}

func TestGenerateAndImport_EmptyResult(t *testing.T) {
	t.Parallel()

	provider := &personaProviderMock{
		GeneratePersonasFunc: func(_ context.Context) ([]domain.Persona, error) {
			return nil, nil
		},
	}
	personas := &personaRepoMock{}

	svc := newTestService(personas, provider)
	_, err := svc.GenerateAndImport(context.Background())

	require.ErrorIs(t, err, domain.ErrWebhookContract)
	assert.Empty(t, personas.UpsertCalls())
}

func TestGenerateAndImport_ProviderError(t *testing.T) {
	t.Parallel()

	providerErr := errors.New("api unavailable")
	provider := &personaProviderMock{
		GeneratePersonasFunc: func(_ context.Context) ([]domain.Persona, error) {
			return nil, providerErr
		},
	}

	svc := newTestService(nil, provider)
	_, err := svc.GenerateAndImport(context.Background())

	require.ErrorIs(t, err, providerErr)
}

func TestGenerateAndImport_StopsOnUpsertError(t *testing.T) {
	t.Parallel()

	provider := &personaProviderMock{
		GeneratePersonasFunc: func(_ context.Context) ([]domain.Persona, error) {
			return []domain.Persona{
				{JobTitle: "CTO"},
				{JobTitle: "Founder"},
			}, nil
		},
	}
	upsertErr := errors.New("db down")
	personas := &personaRepoMock{
		UpsertFunc: func(_ context.Context, p *domain.Persona) (int64, error) {
			if p.JobTitle == "Founder" {
				return 0, upsertErr
			}
			return 1, nil
		},
	}

	svc := newTestService(personas, provider)
	stored, err := svc.GenerateAndImport(context.Background())

	require.ErrorIs(t, err, upsertErr)
	assert.Len(t, stored, 1)
}
