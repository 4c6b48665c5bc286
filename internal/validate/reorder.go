package validate

import (
	"fmt"

	"github.com/030106mia/Roadmap-Feedback/internal/types"
)

// ReorderUpdate is one tuple of a reorder batch. Status is only meaningful
// for roadmap items (cross-column drags); feedback reorders ignore it.
type ReorderUpdate struct {
	ID        string                 `json:"id"`
	Status    types.Optional[string] `json:"status"`
	SortOrder types.FlexInt          `json:"sortOrder"`
}

// ReorderInput is the POST /api/items/reorder and /api/feedback/reorder body.
type ReorderInput struct {
	Updates []ReorderUpdate `json:"updates"`
}

// Validate checks the batch shape. withStatus permits the optional status
// field and constrains it to the four non-legacy columns.
func (in *ReorderInput) Validate(withStatus bool) error {
	if len(in.Updates) == 0 {
		return fail("updates must contain at least one entry")
	}
	if len(in.Updates) > MaxReorderBatch {
		return fail(fmt.Sprintf("updates exceeds the batch limit of %d", MaxReorderBatch))
	}
	for i, u := range in.Updates {
		if u.ID == "" {
			return fail(fmt.Sprintf("updates[%d].id is required", i))
		}
		if status, ok := u.Status.Get(); ok && status != "" {
			if !withStatus {
				return fail(fmt.Sprintf("updates[%d].status is not supported here", i))
			}
			if !reorderStatuses[status] {
				return fail(fmt.Sprintf("updates[%d].status: unknown value %q", i, status))
			}
		}
	}
	return nil
}
