package usecase

import (
	"context"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

const (
	DefaultPageSize = 15
	MaxPageSize     = 100

	// When a residual predicate is active each scan round over-fetches to
	// amortize the cost of rows discarded in memory.
	residualFetchFactor = 3

	// Budget for the exhaustive counting pass under a residual predicate.
	// Past it the count is returned as an explicit lower bound instead of
	// scanning without bound.
	countScanBatch     = 100
	countScanMaxRounds = 20
)

// Paginator produces pages satisfying the full compiled filter (native plus
// residual) from a store whose scan only guarantees the native portion.
type Paginator struct {
	store LeadStore
}

func NewPaginator(store LeadStore) *Paginator {
	return &Paginator{store: store}
}

// Page returns one page of at most limit leads plus an opaque continuation
// cursor and the total count of matching leads. There is no consistency
// guarantee across pages: writes between two fetches can duplicate or skip
// a boundary row.
func (p *Paginator) Page(ctx context.Context, filter CompiledFilter, limit int, cursor string) (*PageResult, error) {
	startAfter := ""
	if cursor != "" {
		decoded, err := decodeCursor(cursor)
		if err != nil {
			return nil, err
		}
		startAfter = decoded.LastKey
	}

	fetch := limit
	if filter.Residual != nil {
		fetch = limit * residualFetchFactor
	}

	matched := make([]*entity.Lead, 0, limit)
	token := startAfter
	storeHasMore := false

	for {
		batch, next, err := p.store.Scan(ctx, filter.Native, fetch, token)
		if err != nil {
			return nil, &StoreError{Op: "scan", Err: err}
		}

		for _, lead := range batch {
			if filter.Residual == nil || filter.Residual(lead) {
				matched = append(matched, lead)
			}
		}

		if next == "" {
			break
		}
		token = next
		if len(matched) >= limit {
			storeHasMore = true
			break
		}
	}

	leads := matched
	truncated := false
	if len(matched) > limit {
		leads = matched[:limit]
		truncated = true
	}

	nextCursor := ""
	switch {
	case truncated:
		// Surviving rows were discarded beyond the page: resume right after
		// the last row actually returned.
		nextCursor = encodeCursor(leads[len(leads)-1].ID)
	case storeHasMore:
		nextCursor = encodeCursor(token)
	}

	total, estimate, err := p.total(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &PageResult{
		Leads:           leads,
		NextCursor:      nextCursor,
		TotalCount:      total,
		TotalIsEstimate: estimate,
	}, nil
}

// total is exact. Without a residual predicate the store counts natively;
// with one, the whole matching set is scanned and filtered, bounded by the
// scan budget. The returned bool reports whether the budget ran out.
func (p *Paginator) total(ctx context.Context, filter CompiledFilter) (int, bool, error) {
	if filter.Residual == nil {
		n, err := p.store.Count(ctx, filter.Native)
		if err != nil {
			return 0, false, &StoreError{Op: "count", Err: err}
		}
		return n, false, nil
	}

	count := 0
	token := ""
	for round := 0; round < countScanMaxRounds; round++ {
		batch, next, err := p.store.Scan(ctx, filter.Native, countScanBatch, token)
		if err != nil {
			return 0, false, &StoreError{Op: "count scan", Err: err}
		}
		for _, lead := range batch {
			if filter.Residual(lead) {
				count++
			}
		}
		if next == "" {
			return count, false, nil
		}
		token = next
	}

	return count, true, nil
}
