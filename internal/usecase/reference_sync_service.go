package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/futdb-sync/internal/domain/club"
	"github.com/riskibarqy/futdb-sync/internal/domain/endpoint"
	"github.com/riskibarqy/futdb-sync/internal/domain/nation"
	"github.com/riskibarqy/futdb-sync/internal/domain/player"
	"github.com/riskibarqy/futdb-sync/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// ReferenceDataProvider fetches and decodes reference-data pages. A page
// number <= 0 is never passed to the Fetch* methods; metadata comes from
// FetchPageMeta, which requests the endpoint without a page parameter.
type ReferenceDataProvider interface {
	FetchPageMeta(ctx context.Context, kind endpoint.Kind) (PageMeta, error)
	FetchNations(ctx context.Context, page int) ([]nation.Nation, error)
	FetchClubs(ctx context.Context, page int) ([]club.Club, error)
	FetchPlayers(ctx context.Context, page int) ([]player.Player, error)
}

type ReferenceSyncConfig struct {
	PageBound PageBoundPolicy
}

type SyncResult struct {
	Kinds []KindResult
}

type KindResult struct {
	Kind     endpoint.Kind
	Bound    int
	Pages    int
	Records  int
	Duration time.Duration
}

func (r SyncResult) Records() int {
	total := 0
	for _, item := range r.Kinds {
		total += item.Records
	}
	return total
}

// pageIngester fetches one page of a kind and inserts its records in order.
// It returns how many records were inserted, including on failure.
type pageIngester func(ctx context.Context, page int) (int, error)

type ReferenceSyncService struct {
	provider   ReferenceDataProvider
	nationRepo nation.Repository
	clubRepo   club.Repository
	playerRepo player.Repository
	cfg        ReferenceSyncConfig
	logger     *logging.Logger
	ingesters  map[endpoint.Kind]pageIngester
	now        func() time.Time
}

func NewReferenceSyncService(
	provider ReferenceDataProvider,
	nationRepo nation.Repository,
	clubRepo club.Repository,
	playerRepo player.Repository,
	cfg ReferenceSyncConfig,
	logger *logging.Logger,
) *ReferenceSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.PageBound == "" {
		cfg.PageBound = DefaultPageBoundPolicy
	}

	s := &ReferenceSyncService{
		provider:   provider,
		nationRepo: nationRepo,
		clubRepo:   clubRepo,
		playerRepo: playerRepo,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
	// One entry per endpoint.All() kind; syncKind does not handle a miss.
	s.ingesters = map[endpoint.Kind]pageIngester{
		endpoint.KindNation: func(ctx context.Context, page int) (int, error) {
			return ingestPage(ctx, page, s.provider.FetchNations, s.nationRepo.Insert)
		},
		endpoint.KindClub: func(ctx context.Context, page int) (int, error) {
			return ingestPage(ctx, page, s.provider.FetchClubs, s.clubRepo.Insert)
		},
		endpoint.KindPlayer: func(ctx context.Context, page int) (int, error) {
			return ingestPage(ctx, page, s.provider.FetchPlayers, s.playerRepo.Insert)
		},
	}
	return s
}

// Run syncs every endpoint in endpoint.All() order and stops at the first
// error. The returned result holds the progress made up to that point. A
// failure is returned, not logged; the caller owns the error report.
func (s *ReferenceSyncService) Run(ctx context.Context) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceSyncService.Run",
		attribute.String("page_bound_policy", s.cfg.PageBound.String()),
	)
	defer span.End()

	var result SyncResult
	for _, kind := range endpoint.All() {
		item, err := s.syncKind(ctx, kind)
		result.Kinds = append(result.Kinds, item)
		if err != nil {
			span.RecordError(err)
			return result, fmt.Errorf("sync %s: %w", kind, err)
		}
	}

	return result, nil
}

func (s *ReferenceSyncService) syncKind(ctx context.Context, kind endpoint.Kind) (out KindResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceSyncService.syncKind",
		attribute.String("kind", kind.String()),
	)
	defer span.End()

	start := s.now()
	out = KindResult{Kind: kind}
	defer func() {
		out.Duration = s.now().Sub(start)
	}()

	meta, err := s.provider.FetchPageMeta(ctx, kind)
	if err != nil {
		return out, fmt.Errorf("fetch page metadata: %w", err)
	}

	out.Bound = s.cfg.PageBound.Bound(meta)
	s.logger.InfoContext(ctx, "reference sync endpoint started",
		"kind", kind,
		"page_bound_policy", s.cfg.PageBound.String(),
		"page_bound", out.Bound,
		"page_total", meta.PageTotal,
		"items_per_page", meta.ItemsPerPage,
		"count_total", meta.CountTotal,
	)
	if out.Bound != meta.PageTotal {
		s.logger.WarnContext(ctx, "page bound differs from page_total",
			"kind", kind,
			"page_bound", out.Bound,
			"page_total", meta.PageTotal,
		)
	}

	ingest := s.ingesters[kind]
	for page := 1; page <= out.Bound; page++ {
		inserted, err := ingest(ctx, page)
		out.Records += inserted
		if err != nil {
			return out, fmt.Errorf("page %d: %w", page, err)
		}
		out.Pages++
		s.logger.DebugContext(ctx, "reference page ingested",
			"kind", kind,
			"page", page,
			"records", inserted,
		)
	}

	s.logger.InfoContext(ctx, "reference sync endpoint finished",
		"kind", kind,
		"pages", out.Pages,
		"records", out.Records,
		"duration", s.now().Sub(start),
	)
	return out, nil
}

func ingestPage[T any](
	ctx context.Context,
	page int,
	fetch func(context.Context, int) ([]T, error),
	insert func(context.Context, T) error,
) (int, error) {
	items, err := fetch(ctx, page)
	if err != nil {
		return 0, err
	}
	for idx, item := range items {
		if err := insert(ctx, item); err != nil {
			return idx, err
		}
	}
	return len(items), nil
}
