package domain

import (
	dErrors "credlens/pkg/domain-errors"
)

// AccountType distinguishes individual from business onboarding, which
// selects the bureau product queried and is echoed on score results.
type AccountType string

const (
	AccountTypeIndividual AccountType = "individual"
	AccountTypeBusiness   AccountType = "business"
)

// ParseAccountType validates a raw account type string.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case AccountTypeIndividual, AccountTypeBusiness:
		return AccountType(s), nil
	}
	return "", dErrors.New(dErrors.CodeBadRequest, "account_type must be individual or business")
}

func (a AccountType) String() string {
	return string(a)
}
