package service

import (
	"errors"

	dErrors "clubledger/pkg/domain-errors"
	"clubledger/pkg/platform/sentinel"
)

// wrapClubErr translates store errors for club lookups.
func wrapClubErr(err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "club not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+action)
}

// wrapMembershipErr translates store errors for membership lookups.
func wrapMembershipErr(err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "membership not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+action)
}

// wrapTransferErr keeps fee refusals as transfer failures and treats anything
// else from the gateway as an internal error.
func wrapTransferErr(err error) error {
	if err == nil {
		return nil
	}
	if dErrors.HasCode(err, dErrors.CodeTransferFailed) {
		return dErrors.Wrap(err, dErrors.CodeTransferFailed, "fee transfer failed")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "fee gateway unavailable")
}

// isTransferRefusal reports whether the gateway declined the transfer.
func isTransferRefusal(err error) bool {
	return dErrors.HasCode(err, dErrors.CodeTransferFailed)
}
