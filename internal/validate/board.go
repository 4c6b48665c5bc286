package validate

import (
	"strings"

	"github.com/030106mia/Roadmap-Feedback/internal/types"
)

// BoardCreateInput is the POST /api/boards payload.
type BoardCreateInput struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	SortOrder   types.FlexInt `json:"sortOrder"`
}

// Validate trims and checks field rules, returning the first violation.
func (in *BoardCreateInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := checkLen("name", in.Name, 1, 80); err != nil {
		return err
	}
	if err := checkLen("description", in.Description, 0, 2000); err != nil {
		return err
	}
	return nil
}

// BoardUpdateInput is the PATCH /api/boards/:id payload. Absent fields stay
// untouched in storage.
type BoardUpdateInput struct {
	Name        types.Optional[string]        `json:"name"`
	Description types.Optional[string]        `json:"description"`
	SortOrder   types.Optional[types.FlexInt] `json:"sortOrder"`
}

// Validate trims and checks the provided fields, returning the first violation.
func (in *BoardUpdateInput) Validate() error {
	if name, ok := in.Name.Get(); ok {
		in.Name.Value = strings.TrimSpace(name)
		if err := checkLen("name", in.Name.Value, 1, 80); err != nil {
			return err
		}
	}
	if desc, ok := in.Description.Get(); ok {
		in.Description.Value = strings.TrimSpace(desc)
		if err := checkLen("description", in.Description.Value, 0, 2000); err != nil {
			return err
		}
	}
	return nil
}
