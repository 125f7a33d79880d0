package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the product catalog with the owning group
// name joined in, newest first.
//
// Example:
//
//	query := NewGetProductsQuery()
//	handler := NewGetProductsQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list products: %w", err)
//	}
//	fmt.Printf("catalog has %d products\n", len(products))
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates the parameterless catalog query.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse is one catalog row. Image fields carry stable
// storage references; display URL resolution happens at the edge.
type GetProductsQueryResponse struct {
	ID           int64
	Name         string
	Price        float64
	Description  string
	Status       string
	GroupID      *int64
	GroupName    *string
	SpecialPrice *float64
	Images       []string
}
