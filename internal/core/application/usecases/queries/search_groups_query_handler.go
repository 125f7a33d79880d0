package queries

import (
	"context"

	"gorm.io/gorm"
)

// SearchGroupsQueryHandler searches groups by name fragment with direct
// SQL, joining each group's product count.
type SearchGroupsQueryHandler struct {
	db *gorm.DB
}

// NewSearchGroupsQueryHandler creates a handler over a GORM connection.
func NewSearchGroupsQueryHandler(db *gorm.DB) SearchGroupsQueryHandler {
	return SearchGroupsQueryHandler{db: db}
}

// Handle returns groups whose name contains the fragment, newest first.
func (h SearchGroupsQueryHandler) Handle(
	ctx context.Context,
	query SearchGroupsQuery,
) ([]SearchGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	groups := make([]SearchGroupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			g.id,
			g.name,
			g.active,
			COUNT(p.id) AS product_count
		FROM product_groups g
		LEFT JOIN products p ON p.group_id = g.id
		WHERE g.name ILIKE ?
		GROUP BY g.id, g.name, g.active
		ORDER BY g.id DESC
	`, "%"+query.Fragment()+"%").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var g SearchGroupsQueryResponse

		err = rows.Scan(
			&g.ID,
			&g.Name,
			&g.Active,
			&g.ProductCount,
		)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
