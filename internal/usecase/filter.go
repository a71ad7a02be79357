package usecase

import (
	"strings"
	"time"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

// CompiledFilter splits a FilterRequest into the conditions the store can
// evaluate during its own scan and a residual predicate applied in memory
// after retrieval.
type CompiledFilter struct {
	Native entity.ScanFilter
	// Residual is nil when the whole filter is store-native.
	Residual func(*entity.Lead) bool
}

// CompileFilter is deterministic and side-effect free. An empty request
// compiles to "all non-archived leads".
func CompileFilter(req FilterRequest) (CompiledFilter, error) {
	var cf CompiledFilter

	for _, s := range req.Statuses {
		if !entity.IsValidStatus(s) {
			return cf, ValidationError{"status", "unknown status " + string(s)}
		}
	}
	for _, t := range req.Temperatures {
		if !entity.IsValidTemperature(t) {
			return cf, ValidationError{"temperature", "unknown temperature " + string(t)}
		}
	}

	if len(req.Statuses) > 0 {
		// An explicit selection is honored as given, whether or not it
		// includes ARCHIVED.
		cf.Native.Statuses = req.Statuses
	} else if !req.IncludeArchived {
		cf.Native.Statuses = entity.PipelineStatuses
	}

	cf.Native.Temperatures = req.Temperatures
	cf.Native.AssigneeID = req.AssigneeID

	if req.DateFrom != "" {
		from, err := time.Parse("2006-01-02", req.DateFrom)
		if err != nil {
			return cf, ValidationError{"from", "must be a valid date (YYYY-MM-DD)"}
		}
		cf.Native.CreatedFrom = from
	}
	if req.DateTo != "" {
		to, err := time.Parse("2006-01-02", req.DateTo)
		if err != nil {
			return cf, ValidationError{"to", "must be a valid date (YYYY-MM-DD)"}
		}
		// Inclusive at day granularity.
		cf.Native.CreatedUntil = to.AddDate(0, 0, 1)
	}

	// Case-insensitive substring search cannot be pushed down to the store,
	// so it always lands in the residual predicate.
	if search := strings.ToLower(strings.TrimSpace(req.Search)); search != "" {
		cf.Residual = func(l *entity.Lead) bool {
			return strings.Contains(searchableText(l), search)
		}
	}

	return cf, nil
}

func searchableText(l *entity.Lead) string {
	fields := []string{l.FirstName, l.LastName, l.Email, l.Company, l.Message}
	nonEmpty := fields[:0]
	for _, f := range fields {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.ToLower(strings.Join(nonEmpty, " "))
}
