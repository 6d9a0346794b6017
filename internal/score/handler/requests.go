package handler

import (
	"strings"

	id "credlens/pkg/domain"
)

// CalculateRequest is the HTTP request body for POST /score/calculate.
// The BVN is deliberately absent: it is resolved server-side from the
// authenticated user, never taken from the caller.
type CalculateRequest struct {
	AccountType string `json:"account_type"`

	parsedAccountType id.AccountType
}

// Prepare validates and parses the request. An empty account type defaults
// to individual.
func (r *CalculateRequest) Prepare() error {
	r.AccountType = strings.TrimSpace(r.AccountType)
	if r.AccountType == "" {
		r.parsedAccountType = id.AccountTypeIndividual
		return nil
	}
	parsed, err := id.ParseAccountType(r.AccountType)
	if err != nil {
		return err
	}
	r.parsedAccountType = parsed
	return nil
}

// ParsedAccountType returns the account type parsed by Prepare.
func (r *CalculateRequest) ParsedAccountType() id.AccountType {
	return r.parsedAccountType
}
