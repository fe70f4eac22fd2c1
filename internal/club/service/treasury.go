package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"clubledger/internal/club/authz"
	id "clubledger/pkg/domain"
	dErrors "clubledger/pkg/domain-errors"
	"clubledger/pkg/platform/audit"
)

// WithdrawFees moves amount from the treasury to destination. The treasury
// keeps its existential deposit, so the whole free balance cannot be drawn.
// Only the privileged caller may withdraw.
func (s *Service) WithdrawFees(ctx context.Context, caller authz.Caller, destination id.AccountID, amount id.Balance) (err error) {
	ctx, finish := s.startOp(ctx, "withdraw_fees", attribute.String("destination", destination.String()))
	defer func() { finish(err) }()

	if err := authz.RequirePrivileged(caller); err != nil {
		return err
	}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return wrapTransferErr(s.fees.Transfer(txCtx, s.params.Treasury, destination, amount))
	})
	if err != nil {
		return err
	}

	audit.LogAudit(ctx, s.logger, "fees_withdrawn",
		"actor", caller.String(),
		"destination", destination.String(),
		"amount", uint64(amount),
	)
	if s.metrics != nil {
		s.metrics.AddFeesWithdrawn(uint64(amount))
	}
	return nil
}

// TreasuryBalance returns the treasury's free balance.
func (s *Service) TreasuryBalance(ctx context.Context) (id.Balance, error) {
	balance, err := s.fees.Balance(ctx, s.params.Treasury)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read treasury balance")
	}
	return balance, nil
}
