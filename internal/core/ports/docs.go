// Package ports defines the contracts between the application core and
// infrastructure: one repository interface per table, the unit of work
// that binds repositories to a shared transaction, the image store the
// product lifecycle depends on, and the event publisher used after
// successful commits.
package ports
