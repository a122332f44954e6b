package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError lists every problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content: %d problem(s): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Validate checks the struct rules on every section and that ids are unique.
func Validate(c *Catalog) error {
	var problems []string
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s: failed %s", fe.Namespace(), rule(fe)))
		}
	}

	categoryIDs := make([]string, 0, len(c.Menu.Categories))
	for _, cat := range c.Menu.Categories {
		categoryIDs = append(categoryIDs, cat.ID)
	}
	problems = append(problems, duplicates("menu category", categoryIDs)...)

	tabIDs := make([]string, 0, len(c.Tasting.Tabs))
	for _, tab := range c.Tasting.Tabs {
		tabIDs = append(tabIDs, tab.ID)
	}
	problems = append(problems, duplicates("tasting tab", tabIDs)...)

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func rule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

func duplicates(kind string, ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if seen[id] {
			out = append(out, fmt.Sprintf("%s %q is defined more than once", kind, id))
		}
		seen[id] = true
	}
	return out
}
