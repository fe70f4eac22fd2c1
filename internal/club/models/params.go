package models

import (
	id "clubledger/pkg/domain"
	dErrors "clubledger/pkg/domain-errors"
)

// Default parameter values, matching a six second block time.
const (
	DefaultMaxNameLength       = 256
	DefaultMaxMembershipYears  = 100
	DefaultClubCreationDeposit = 10
	DefaultYearLength          = 5_256_000
	DefaultTreasurySeed        = "membersp"
)

// Params are the constants the club engine is configured with.
type Params struct {
	// MaxNameLength bounds club and member names, in bytes.
	MaxNameLength uint32
	// MaxMembershipYears bounds the years argument of admission and renewal.
	MaxMembershipYears uint8
	// ClubCreationDeposit is charged from the new owner to the treasury.
	ClubCreationDeposit id.Balance
	// YearLength is the number of blocks in a membership year.
	YearLength id.BlockNumber
	// Treasury collects deposits and fees. Only the privileged caller can draw from it.
	Treasury id.AccountID
}

// DefaultParams returns the production defaults.
func DefaultParams() Params {
	return Params{
		MaxNameLength:       DefaultMaxNameLength,
		MaxMembershipYears:  DefaultMaxMembershipYears,
		ClubCreationDeposit: DefaultClubCreationDeposit,
		YearLength:          DefaultYearLength,
		Treasury:            id.DeriveAccountID(DefaultTreasurySeed),
	}
}

// ValidateYears enforces 1 <= years <= MaxMembershipYears.
func (p Params) ValidateYears(years uint8) error {
	if years == 0 || years > p.MaxMembershipYears {
		return dErrors.New(dErrors.CodeValidation, "membership period must be between 1 and the maximum number of years")
	}
	return nil
}

func (p Params) ValidateName(name string) error {
	if uint64(len(name)) > uint64(p.MaxNameLength) {
		return dErrors.New(dErrors.CodeValidation, "name exceeds the maximum length")
	}
	return nil
}

// Validate checks the parameters themselves at startup.
func (p Params) Validate() error {
	if p.MaxMembershipYears == 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "max membership years must be positive")
	}
	if p.Treasury.IsNil() {
		return dErrors.New(dErrors.CodeInvariantViolation, "treasury account is required")
	}
	return nil
}
