// Package kernel provides the shared domain primitives of the escrow service.
//
// The package includes:
//   - UUID: identifier of orders, ledger entries and outbox messages
//   - Address: canonical identity of a party (sender or carrier)
//   - Amount: non-negative decimal money backed by shopspring/decimal
//   - ErrorKind / KindError: the error taxonomy callers branch on
//
// All values are immutable and safe for concurrent use.
package kernel
