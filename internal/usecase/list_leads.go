package usecase

import (
	"context"
)

type ListLeadsUseCase struct {
	Paginator *Paginator
}

func NewListLeadsUseCase(paginator *Paginator) *ListLeadsUseCase {
	return &ListLeadsUseCase{Paginator: paginator}
}

// Execute answers a filtered, paginated query over the lead collection.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, req FilterRequest) (*PageResult, error) {
	limit := req.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 1 || limit > MaxPageSize {
		return nil, ValidationError{"limit", "must be between 1 and 100"}
	}

	filter, err := CompileFilter(req)
	if err != nil {
		return nil, err
	}

	return uc.Paginator.Page(ctx, filter, limit, req.Cursor)
}
