package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/futdb-sync/internal/domain/endpoint"
	"github.com/riskibarqy/futdb-sync/internal/platform/logging"
)

type metaOnlyProvider struct {
	ReferenceDataProvider
	meta PageMeta
	err  error
}

func (p metaOnlyProvider) FetchPageMeta(context.Context, endpoint.Kind) (PageMeta, error) {
	return p.meta, p.err
}

// steppingClock advances by step on every read.
func steppingClock(step time.Duration) func() time.Time {
	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

func TestReferenceSyncService_DurationSetOnMetadataFailure(t *testing.T) {
	t.Parallel()

	provider := metaOnlyProvider{err: fmt.Errorf("%w: page envelope missing items", ErrDecode)}
	service := NewReferenceSyncService(provider, nil, nil, nil, ReferenceSyncConfig{}, logging.NewNop())
	service.now = steppingClock(time.Second)

	result, err := service.Run(context.Background())
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if len(result.Kinds) != 1 {
		t.Fatalf("expected only the failed kind, got=%d", len(result.Kinds))
	}
	if got := result.Kinds[0].Duration; got != time.Second {
		t.Fatalf("unexpected duration: %s", got)
	}
}

func TestReferenceSyncService_DurationSetOnPageFailure(t *testing.T) {
	t.Parallel()

	provider := metaOnlyProvider{meta: PageMeta{PageTotal: 1, ItemsPerPage: 3}}
	service := NewReferenceSyncService(provider, nil, nil, nil, ReferenceSyncConfig{}, logging.NewNop())
	service.now = steppingClock(time.Second)
	service.ingesters[endpoint.KindNation] = func(_ context.Context, page int) (int, error) {
		if page == 2 {
			return 1, fmt.Errorf("%w: insert nation", ErrStorage)
		}
		return 2, nil
	}

	result, err := service.Run(context.Background())
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	got := result.Kinds[0]
	if got.Pages != 1 || got.Records != 3 {
		t.Fatalf("unexpected progress: %+v", got)
	}
	if got.Duration != time.Second {
		t.Fatalf("unexpected duration: %s", got.Duration)
	}
}
