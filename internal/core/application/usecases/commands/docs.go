// Package commands contains the write operations of the storefront core.
// Every operation that touches more than one table, or a table plus the
// external image store, lives here as a command plus a handler.
//
// All handlers follow the same protocol: validate the command, stage any
// external side effects that must precede the transaction, run every
// statement of the operation inside one unit of work, and commit or roll
// back as a whole. External effects the rollback cannot undo are
// compensated best-effort; a compensation failure is logged and parked in
// the orphan image ledger, never silently dropped. Domain events publish
// only after a successful commit and never fail the operation.
package commands
