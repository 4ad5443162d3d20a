package http

import (
	"github.com/M-ayank2005/Carryaptos/internal/core/application/submission"
	"github.com/M-ayank2005/Carryaptos/internal/core/application/usecases/queries"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/ledger"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/generated/servers"
)

func toSubmissionRequest(caller kernel.Address, req servers.TransactionRequest) submission.Request {
	out := submission.Request{
		Caller:    caller,
		Operation: submission.Operation(req.Operation),
		OrderID:   valueOf(req.OrderId),
	}
	if req.Arguments != nil {
		out.Arguments = *req.Arguments
	}
	return out
}

func toTransactionResult(res submission.Result) servers.TransactionResult {
	out := servers.TransactionResult{Success: res.Success}
	if res.Order != nil {
		o := toOrder(*res.Order)
		out.Order = &o
	}
	if res.ErrorKind != "" {
		kind := servers.ErrorKind(res.ErrorKind)
		out.ErrorKind = &kind
	}
	if res.Message != "" {
		out.Message = &res.Message
	}
	return out
}

func toOrder(s order.Snapshot) servers.Order {
	return servers.Order{
		Id:                s.ID.Bytes(),
		Sender:            s.Sender.String(),
		Carrier:           addressOf(s.Carrier),
		GoodsValue:        s.GoodsValue.String(),
		ServiceFee:        s.ServiceFee.String(),
		EscrowedAmount:    s.EscrowedAmount.String(),
		CarrierAgreed:     s.CarrierAgreed,
		SenderAgreed:      s.SenderAgreed,
		DeliveryConfirmed: s.DeliveryConfirmed,
		State:             servers.OrderState(s.Status.String()),
		Version:           s.Version,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func toLedgerEntry(e ledger.Entry) servers.LedgerEntry {
	out := servers.LedgerEntry{
		Id:         e.ID.Bytes(),
		Kind:       servers.LedgerEntryKind(e.Kind),
		From:       addressOf(e.From),
		To:         addressOf(e.To),
		Amount:     e.Amount.String(),
		OccurredAt: e.OccurredAt,
	}
	if e.OrderID != nil {
		id := e.OrderID.Bytes()
		out.OrderId = &id
	}
	return out
}

func toAccount(address kernel.Address, balance kernel.Amount) servers.Account {
	return servers.Account{Address: address.String(), Balance: balance.String()}
}

func toCustodySummary(res queries.GetCustodySummaryQueryResponse) servers.CustodySummary {
	return servers.CustodySummary{
		Locked:    res.Locked.String(),
		Released:  res.Released.String(),
		Escrowed:  res.Escrowed.String(),
		Deposited: res.Deposited.String(),
	}
}

func addressOf(a *kernel.Address) *string {
	if a == nil {
		return nil
	}
	s := a.String()
	return &s
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
