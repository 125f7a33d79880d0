// Package product contains the product aggregate and its MOQ pricing
// tiers. A product owns its image references and its tier set: tiers are
// only ever replaced as a whole, and stored images are released when the
// product that references them is deleted or updated.
package product
