package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrSearchGroupsQueryIsNotConstructed = errors.New(
	"SearchGroupsQuery must be created via NewSearchGroupsQuery constructor",
)

// SearchGroupsQuery retrieves product groups whose name contains a
// fragment, case-insensitive.
type SearchGroupsQuery struct {
	fragment string

	guard guard.ConstructorGuard
}

// NewSearchGroupsQuery builds the query. The fragment is required.
func NewSearchGroupsQuery(fragment string) (SearchGroupsQuery, error) {
	if fragment == "" {
		return SearchGroupsQuery{}, errs.NewValueIsRequiredError("fragment")
	}

	return SearchGroupsQuery{
		fragment: fragment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchGroupsQuery) Validate() error {
	return q.guard.Validate(ErrSearchGroupsQueryIsNotConstructed)
}

// Fragment returns the name fragment being searched.
func (q SearchGroupsQuery) Fragment() string {
	return q.fragment
}

// SearchGroupsQueryResponse is one matching group with its product count.
type SearchGroupsQueryResponse struct {
	ID           int64
	Name         string
	Active       bool
	ProductCount int64
}
