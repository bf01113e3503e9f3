package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/riskibarqy/futdb-sync/internal/domain/club"
	"github.com/riskibarqy/futdb-sync/internal/domain/endpoint"
	"github.com/riskibarqy/futdb-sync/internal/domain/nation"
	"github.com/riskibarqy/futdb-sync/internal/domain/player"
	clubmock "github.com/riskibarqy/futdb-sync/internal/mocks/domain/club"
	nationmock "github.com/riskibarqy/futdb-sync/internal/mocks/domain/nation"
	playermock "github.com/riskibarqy/futdb-sync/internal/mocks/domain/player"
	usecasemock "github.com/riskibarqy/futdb-sync/internal/mocks/usecase"
	"github.com/riskibarqy/futdb-sync/internal/platform/logging"
	"github.com/riskibarqy/futdb-sync/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type syncFixture struct {
	provider   *usecasemock.ReferenceDataProvider
	nationRepo *nationmock.Repository
	clubRepo   *clubmock.Repository
	playerRepo *playermock.Repository
	events     []string
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	return &syncFixture{
		provider:   usecasemock.NewReferenceDataProvider(t),
		nationRepo: nationmock.NewRepository(t),
		clubRepo:   clubmock.NewRepository(t),
		playerRepo: playermock.NewRepository(t),
	}
}

func (f *syncFixture) service(policy usecase.PageBoundPolicy) *usecase.ReferenceSyncService {
	return usecase.NewReferenceSyncService(
		f.provider,
		f.nationRepo,
		f.clubRepo,
		f.playerRepo,
		usecase.ReferenceSyncConfig{PageBound: policy},
		logging.NewNop(),
	)
}

func (f *syncFixture) record(format string, args ...any) func(mock.Arguments) {
	return func(mock.Arguments) {
		f.events = append(f.events, fmt.Sprintf(format, args...))
	}
}

func (f *syncFixture) expectMeta(kind endpoint.Kind, meta usecase.PageMeta) {
	f.provider.
		On("FetchPageMeta", mock.Anything, kind).
		Run(f.record("meta %s", kind)).
		Return(meta, nil).
		Once()
}

func strPtr(v string) *string { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestReferenceSyncService_Run_ItemsPerPageBoundInOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newSyncFixture(t)

	f.expectMeta(endpoint.KindNation, usecase.PageMeta{PageTotal: 1, ItemsPerPage: 3})
	pages := map[int][]nation.Nation{
		1: {{ID: 1, Name: strPtr("Argentina")}, {ID: 2}},
		2: {{ID: 3, Name: strPtr("Chile")}},
		3: {},
	}
	for page := 1; page <= 3; page++ {
		f.provider.
			On("FetchNations", mock.Anything, page).
			Run(f.record("fetch nations %d", page)).
			Return(pages[page], nil).
			Once()
		for _, item := range pages[page] {
			f.nationRepo.
				On("Insert", mock.Anything, item).
				Run(f.record("insert nation %d", item.ID)).
				Return(nil).
				Once()
		}
	}
	f.expectMeta(endpoint.KindClub, usecase.PageMeta{PageTotal: 4, ItemsPerPage: 0})
	f.expectMeta(endpoint.KindPlayer, usecase.PageMeta{})

	result, err := f.service(usecase.PageBoundItemsPerPage).Run(ctx)
	if err != nil {
		t.Fatalf("run sync: %v", err)
	}

	want := []string{
		"meta nations",
		"fetch nations 1",
		"insert nation 1",
		"insert nation 2",
		"fetch nations 2",
		"insert nation 3",
		"fetch nations 3",
		"meta clubs",
		"meta players",
	}
	if !reflect.DeepEqual(f.events, want) {
		t.Fatalf("unexpected call order:\nwant: %v\ngot:  %v", want, f.events)
	}

	if len(result.Kinds) != 3 {
		t.Fatalf("expected a result per kind, got=%d", len(result.Kinds))
	}
	if result.Kinds[0].Bound != 3 || result.Kinds[0].Pages != 3 || result.Kinds[0].Records != 3 {
		t.Fatalf("unexpected nation result: %+v", result.Kinds[0])
	}
	if result.Kinds[1].Bound != 0 || result.Kinds[1].Pages != 0 {
		t.Fatalf("items_per_page=0 must fetch no club pages: %+v", result.Kinds[1])
	}
	if result.Records() != 3 {
		t.Fatalf("unexpected total records: %d", result.Records())
	}
}

func TestReferenceSyncService_Run_PageTotalBound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newSyncFixture(t)

	f.expectMeta(endpoint.KindNation, usecase.PageMeta{PageTotal: 0, ItemsPerPage: 20})
	f.expectMeta(endpoint.KindClub, usecase.PageMeta{PageTotal: 0, ItemsPerPage: 20})
	f.expectMeta(endpoint.KindPlayer, usecase.PageMeta{PageTotal: 2, ItemsPerPage: 20})

	first := player.Player{ID: 10, Name: strPtr("A. Smith"), Position: strPtr("GK"), NationID: int64Ptr(5)}
	second := player.Player{ID: 11}
	f.provider.On("FetchPlayers", mock.Anything, 1).Return([]player.Player{first}, nil).Once()
	f.provider.On("FetchPlayers", mock.Anything, 2).Return([]player.Player{second}, nil).Once()
	f.playerRepo.On("Insert", mock.Anything, first).Return(nil).Once()
	f.playerRepo.On("Insert", mock.Anything, second).Return(nil).Once()

	result, err := f.service(usecase.PageBoundPageTotal).Run(ctx)
	if err != nil {
		t.Fatalf("run sync: %v", err)
	}
	if got := result.Kinds[2]; got.Pages != 2 || got.Records != 2 {
		t.Fatalf("unexpected player result: %+v", got)
	}
}

func TestReferenceSyncService_Run_StopsOnNetworkFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newSyncFixture(t)

	f.expectMeta(endpoint.KindNation, usecase.PageMeta{ItemsPerPage: 1})
	f.provider.On("FetchNations", mock.Anything, 1).Return([]nation.Nation{{ID: 1}}, nil).Once()
	f.nationRepo.On("Insert", mock.Anything, nation.Nation{ID: 1}).Return(nil).Once()

	f.expectMeta(endpoint.KindClub, usecase.PageMeta{ItemsPerPage: 2})
	f.provider.On("FetchClubs", mock.Anything, 1).Return([]club.Club{{ID: 7}}, nil).Once()
	f.clubRepo.On("Insert", mock.Anything, club.Club{ID: 7}).Return(nil).Once()
	f.provider.
		On("FetchClubs", mock.Anything, 2).
		Return(nil, fmt.Errorf("%w: connection reset", usecase.ErrNetwork)).
		Once()

	result, err := f.service(usecase.PageBoundItemsPerPage).Run(ctx)
	if !errors.Is(err, usecase.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if len(result.Kinds) != 2 {
		t.Fatalf("players must not be processed after a club failure, got kinds=%d", len(result.Kinds))
	}
	if got := result.Kinds[1]; got.Pages != 1 || got.Records != 1 {
		t.Fatalf("unexpected club progress: %+v", got)
	}
	f.provider.AssertNotCalled(t, "FetchPageMeta", mock.Anything, endpoint.KindPlayer)
}

func TestReferenceSyncService_Run_FailureLeavesErrorReportToCaller(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newSyncFixture(t)

	f.expectMeta(endpoint.KindNation, usecase.PageMeta{ItemsPerPage: 1})
	f.provider.
		On("FetchNations", mock.Anything, 1).
		Return(nil, fmt.Errorf("%w: connection reset", usecase.ErrNetwork)).
		Once()

	var buf bytes.Buffer
	service := usecase.NewReferenceSyncService(
		f.provider,
		f.nationRepo,
		f.clubRepo,
		f.playerRepo,
		usecase.ReferenceSyncConfig{PageBound: usecase.PageBoundItemsPerPage},
		logging.New(&buf, logging.LevelDebug),
	)

	if _, err := service.Run(ctx); !errors.Is(err, usecase.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if !strings.Contains(buf.String(), `"msg":"reference sync endpoint started"`) {
		t.Fatalf("expected progress logs, got:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), `"level":"ERROR"`) {
		t.Fatalf("run failure must be left to the caller to log, got:\n%s", buf.String())
	}
}

func TestReferenceSyncService_Run_DuplicateIDIsStorageError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newSyncFixture(t)

	items := []nation.Nation{{ID: 1}, {ID: 1}, {ID: 2}}
	f.expectMeta(endpoint.KindNation, usecase.PageMeta{ItemsPerPage: 2})
	f.provider.On("FetchNations", mock.Anything, 1).Return(items, nil).Once()
	f.nationRepo.On("Insert", mock.Anything, nation.Nation{ID: 1}).Return(nil).Once()
	f.nationRepo.
		On("Insert", mock.Anything, nation.Nation{ID: 1}).
		Return(fmt.Errorf("%w: insert nations id=1: duplicate id", usecase.ErrStorage)).
		Once()

	result, err := f.service("").Run(ctx)
	if !errors.Is(err, usecase.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	if got := result.Kinds[0]; got.Records != 1 || got.Pages != 0 {
		t.Fatalf("unexpected nation progress: %+v", got)
	}
	f.provider.AssertNotCalled(t, "FetchNations", mock.Anything, 2)
	f.nationRepo.AssertNotCalled(t, "Insert", mock.Anything, nation.Nation{ID: 2})
}

func TestReferenceSyncService_Run_MetadataDecodeFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newSyncFixture(t)

	f.provider.
		On("FetchPageMeta", mock.Anything, endpoint.KindNation).
		Return(usecase.PageMeta{}, fmt.Errorf("%w: page envelope: unexpected token", usecase.ErrDecode)).
		Once()

	result, err := f.service(usecase.PageBoundItemsPerPage).Run(ctx)
	if !errors.Is(err, usecase.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if len(result.Kinds) != 1 || result.Records() != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestReferenceSyncService_Run_PageDecodeFailureStopsBeforeInsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newSyncFixture(t)

	f.expectMeta(endpoint.KindNation, usecase.PageMeta{ItemsPerPage: 5})
	f.provider.
		On("FetchNations", mock.Anything, 1).
		Return(nil, fmt.Errorf("%w: items[0]: id is required", usecase.ErrDecode)).
		Once()

	_, err := f.service(usecase.PageBoundItemsPerPage).Run(ctx)
	if !errors.Is(err, usecase.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	f.nationRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
