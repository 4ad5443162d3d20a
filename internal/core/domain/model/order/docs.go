// Package order implements the escrow Order aggregate: an order that holds
// custody of goodsValue + serviceFee from creation until a carrier is paid out
// on finalize.
//
// The package includes:
//   - Order: the aggregate root, changed only through its guarded transitions
//   - Status: the lifecycle state machine
//   - Role: the party an agreement is recorded for
//   - Event and Snapshot: what the aggregate publishes and persists
//
// Key business rules:
//   - The escrowed amount is fixed at creation and only finalize moves it
//   - Both parties agree before the sender may confirm delivery
//   - Finalize requires a confirmed delivery and is terminal
//   - Every failed guard reports exactly one kernel.ErrorKind
//
// Lifecycle:
//
//	Created --agree(either)--> PartiallyAgreed --agree(other)--> FullyAgreed
//	FullyAgreed --confirmDelivery(sender)--> DeliveryConfirmed
//	DeliveryConfirmed --finalize(any)--> Finalized
package order
