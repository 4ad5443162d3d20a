// Package services provides domain services that coordinate more than one
// aggregate.
//
// The package includes:
//   - EscrowCustody: moves value between party accounts and order escrow and
//     produces the matching ledger entries
package services
