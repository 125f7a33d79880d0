package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProductsQueryHandler reads the catalog with direct SQL, bypassing the
// aggregate layer on the read side.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler over a GORM connection.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle returns every product with its group name joined, id descending.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY p.id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var product GetProductsQueryResponse
		var images [4]*string

		err = rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Description,
			&product.Status,
			&product.GroupID,
			&product.GroupName,
			&product.SpecialPrice,
			&images[0],
			&images[1],
			&images[2],
			&images[3],
		)
		if err != nil {
			return nil, err
		}

		for _, img := range images {
			if img != nil {
				product.Images = append(product.Images, *img)
			}
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
