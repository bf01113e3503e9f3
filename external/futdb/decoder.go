package futdb

import (
	"fmt"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/futdb-sync/internal/domain/club"
	"github.com/riskibarqy/futdb-sync/internal/domain/nation"
	"github.com/riskibarqy/futdb-sync/internal/domain/player"
	"github.com/riskibarqy/futdb-sync/internal/usecase"
)

// The decoders below are pure: they only read raw. Every body must be a
// complete page envelope: all five counters and items present and non-null,
// and page_total >= 1. Item order is kept and absent or null optional fields
// stay nil.

type pageEnvelope[T any] struct {
	Count        *int  `json:"count"`
	CountTotal   *int  `json:"count_total"`
	Page         *int  `json:"page"`
	PageTotal    *int  `json:"page_total"`
	ItemsPerPage *int  `json:"items_per_page"`
	Items        *[]*T `json:"items"`
}

type namedItem struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

type playerItem struct {
	ID       *int64  `json:"id"`
	Name     *string `json:"name"`
	Position *string `json:"position"`
	Nation   *int64  `json:"nation"`
	Club     *int64  `json:"club"`
}

func DecodeMeta(raw []byte) (usecase.PageMeta, error) {
	meta, _, err := decodeEnvelope[struct{}](raw)
	return meta, err
}

func DecodeNations(raw []byte) ([]nation.Nation, error) {
	items, err := decodeItems[namedItem](raw)
	if err != nil {
		return nil, err
	}

	out := make([]nation.Nation, 0, len(items))
	for idx, item := range items {
		if item.ID == nil {
			return nil, missingIDError(idx)
		}
		out = append(out, nation.Nation{ID: *item.ID, Name: item.Name})
	}
	return out, nil
}

func DecodeClubs(raw []byte) ([]club.Club, error) {
	items, err := decodeItems[namedItem](raw)
	if err != nil {
		return nil, err
	}

	out := make([]club.Club, 0, len(items))
	for idx, item := range items {
		if item.ID == nil {
			return nil, missingIDError(idx)
		}
		out = append(out, club.Club{ID: *item.ID, Name: item.Name})
	}
	return out, nil
}

func DecodePlayers(raw []byte) ([]player.Player, error) {
	items, err := decodeItems[playerItem](raw)
	if err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(items))
	for idx, item := range items {
		if item.ID == nil {
			return nil, missingIDError(idx)
		}
		out = append(out, player.Player{
			ID:       *item.ID,
			Name:     item.Name,
			Position: item.Position,
			NationID: item.Nation,
			ClubID:   item.Club,
		})
	}
	return out, nil
}

func decodeItems[T any](raw []byte) ([]T, error) {
	_, items, err := decodeEnvelope[T](raw)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(items))
	for idx, item := range items {
		if item == nil {
			return nil, fmt.Errorf("%w: items[%d] is null", usecase.ErrDecode, idx)
		}
		out[idx] = *item
	}
	return out, nil
}

func decodeEnvelope[T any](raw []byte) (usecase.PageMeta, []*T, error) {
	var envelope pageEnvelope[T]
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return usecase.PageMeta{}, nil, fmt.Errorf("%w: page envelope: %v", usecase.ErrDecode, err)
	}

	var missing []string
	counter := func(name string, v *int) int {
		if v == nil {
			missing = append(missing, name)
			return 0
		}
		return *v
	}
	meta := usecase.PageMeta{
		Count:        counter("count", envelope.Count),
		CountTotal:   counter("count_total", envelope.CountTotal),
		Page:         counter("page", envelope.Page),
		PageTotal:    counter("page_total", envelope.PageTotal),
		ItemsPerPage: counter("items_per_page", envelope.ItemsPerPage),
	}
	if envelope.Items == nil {
		missing = append(missing, "items")
	}
	if len(missing) > 0 {
		return usecase.PageMeta{}, nil, fmt.Errorf("%w: page envelope missing %s", usecase.ErrDecode, strings.Join(missing, ", "))
	}

	if meta.Count < 0 || meta.CountTotal < 0 || meta.Page < 0 || meta.ItemsPerPage < 0 {
		return usecase.PageMeta{}, nil, fmt.Errorf("%w: page envelope has negative counters: %+v", usecase.ErrDecode, meta)
	}
	if meta.PageTotal < 1 {
		return usecase.PageMeta{}, nil, fmt.Errorf("%w: page envelope page_total=%d, want >= 1", usecase.ErrDecode, meta.PageTotal)
	}
	return meta, *envelope.Items, nil
}

func missingIDError(idx int) error {
	return fmt.Errorf("%w: items[%d]: id is required", usecase.ErrDecode, idx)
}
