// Package address provides a rule-based address checking service backing the
// address validation collaborator of the place-order workflow.
package address

import (
	"context"
	"strings"

	"github.com/ordertaking/backend/internal/domain/ordering"
	"github.com/samber/lo"
)

// Checker validates addresses against a set of local rules. Addresses with a
// missing first line or city are malformed; addresses whose zip code appears
// in the unknown list do not exist.
type Checker struct {
	unknownZips map[string]struct{}
}

// NewChecker creates a Checker that rejects the given zip codes as unknown
func NewChecker(unknownZips []string) *Checker {
	return &Checker{
		unknownZips: lo.SliceToMap(unknownZips, func(zip string) (string, struct{}) {
			return strings.TrimSpace(zip), struct{}{}
		}),
	}
}

// CheckAddress verifies an address and returns its checked form. It satisfies
// the ordering.CheckAddressExists contract, reporting malformed addresses as
// ordering.ErrAddressInvalidFormat and unknown ones as
// ordering.ErrAddressNotFound.
func (c *Checker) CheckAddress(_ context.Context, addr ordering.UnvalidatedAddress) (ordering.CheckedAddress, error) {
	if strings.TrimSpace(addr.AddressLine1) == "" || strings.TrimSpace(addr.City) == "" {
		return ordering.CheckedAddress{}, ordering.ErrAddressInvalidFormat
	}
	if _, unknown := c.unknownZips[strings.TrimSpace(addr.ZipCode)]; unknown {
		return ordering.CheckedAddress{}, ordering.ErrAddressNotFound
	}
	return ordering.CheckedAddress(addr), nil
}
