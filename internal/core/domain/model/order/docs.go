// Package order contains the order aggregate, its itemized detail lines
// and the order status state machine. An order exclusively owns its detail
// rows: they are created in one batch with the order and deleted with it.
package order
