package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductQueryHandler reads one product detail with direct SQL and
// resolves image references to display URLs through the image store.
type GetProductQueryHandler struct {
	db    *gorm.DB
	store ports.ImageStore
}

// NewGetProductQueryHandler creates a handler over a GORM connection and
// the image store used for URL resolution.
func NewGetProductQueryHandler(db *gorm.DB, store ports.ImageStore) GetProductQueryHandler {
	return GetProductQueryHandler{db: db, store: store}
}

// Handle returns the product with its tiers, or ObjectNotFoundError.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductQueryResponse{}, err
	}

	var response GetProductQueryResponse
	var images [4]*string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.price,
			p.description,
			p.status,
			p.group_id,
			g.name AS group_name,
			p.special_price,
			p.image1,
			p.image2,
			p.image3,
			p.image4
		FROM products p
		LEFT JOIN product_groups g ON g.id = p.group_id
		WHERE p.id = ?
	`, query.ProductID()).Row()

	err := row.Scan(
		&response.ID,
		&response.Name,
		&response.Price,
		&response.Description,
		&response.Status,
		&response.GroupID,
		&response.GroupName,
		&response.SpecialPrice,
		&images[0],
		&images[1],
		&images[2],
		&images[3],
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProductQueryResponse{}, errs.NewObjectNotFoundError("productId", query.ProductID())
	}
	if err != nil {
		return GetProductQueryResponse{}, err
	}

	for _, img := range images {
		if img != nil {
			response.ImageURLs = append(response.ImageURLs, h.store.ResolveDisplayURL(*img, query.ImageOptions()))
		}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT quantity, rate
		FROM moqs
		WHERE product_id = ?
		ORDER BY quantity ASC
	`, query.ProductID()).Rows()
	if err != nil {
		return GetProductQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var tier GetProductQueryTier
		if err = rows.Scan(&tier.Quantity, &tier.Rate); err != nil {
			return GetProductQueryResponse{}, err
		}
		response.Tiers = append(response.Tiers, tier)
	}

	if err = rows.Err(); err != nil {
		return GetProductQueryResponse{}, err
	}

	return response, nil
}
