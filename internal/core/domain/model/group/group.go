// Package group contains the product group entity. Groups are plain
// classification buckets; a group cannot be removed while any product
// still references it.
package group

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrGroupIsNotConstructed is returned when a Group instance was not
// created through NewGroup or RestoreGroup.
var ErrGroupIsNotConstructed = errors.New("Group must be created via NewGroup constructor")

// Group is a named product classification.
type Group struct {
	id     int64
	name   string
	active bool

	guard guard.ConstructorGuard
}

// NewGroup creates an active group. Name is required.
func NewGroup(name string) (*Group, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Group{
		name:   name,
		active: true,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreGroup rebuilds a group from its persisted state.
func RestoreGroup(id int64, name string, active bool) (*Group, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	return &Group{
		id:     id,
		name:   name,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the group was created through a constructor.
func (g *Group) Validate() error {
	return g.guard.Validate(ErrGroupIsNotConstructed)
}

// ID returns the surrogate key, or zero before the first insert.
func (g *Group) ID() int64 {
	return g.id
}

// BindID attaches the database-generated identifier after insert.
func (g *Group) BindID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if g.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("group already bound to id %d", g.id))
	}
	g.id = id
	return nil
}

// Name returns the searchable group name.
func (g *Group) Name() string {
	return g.name
}

// Active reports whether the group is in use.
func (g *Group) Active() bool {
	return g.active
}

// Deactivate hides the group without removing it.
func (g *Group) Deactivate() {
	g.active = false
}
