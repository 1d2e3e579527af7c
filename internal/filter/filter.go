package filter

import (
	"fmt"

	"github.com/josephtaylor/tensorians-sales/internal/config"
	"github.com/josephtaylor/tensorians-sales/internal/domain"
)

// Filter decides whether a transaction is worth notifying about
//
//go:generate mockgen -source=filter.go -destination=../mocks/filter.go -package=mocks -mock_names=Filter=MockFilter
type Filter interface {
	// Accepts reports whether the transaction passes. An error means the
	// transaction could not be judged and the event must be dropped loudly.
	Accepts(tx *domain.Transaction) (bool, error)
}

// TraitGate accepts transactions whose mint carries an allow-listed value
// for one configured trait
type TraitGate struct {
	trait   string
	allowed map[string]struct{}
}

// NewTraitGate builds a gate for the given trait name and allow-list
func NewTraitGate(trait string, values []string) *TraitGate {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return &TraitGate{trait: trait, allowed: allowed}
}

// Accepts checks the gate trait against the allow-list. A mint without the
// gate trait is a hard failure so malformed metadata never passes silently.
func (g *TraitGate) Accepts(tx *domain.Transaction) (bool, error) {
	if tx.Mint == nil {
		return false, fmt.Errorf("transaction %s has no mint: %w", tx.ID, domain.ErrTraitMissing)
	}

	value, ok := tx.Mint.Traits.Get(g.trait)
	if !ok {
		return false, fmt.Errorf("mint %s has no %q trait: %w", tx.Mint.Address, g.trait, domain.ErrTraitMissing)
	}

	_, allowed := g.allowed[value]
	return allowed, nil
}

// AcceptAll passes every transaction. Used when no gate trait is configured.
type AcceptAll struct{}

func (AcceptAll) Accepts(*domain.Transaction) (bool, error) {
	return true, nil
}

// FromConfig builds the filter described by cfg
func FromConfig(cfg config.FilterConfig) Filter {
	if cfg.Trait == "" {
		return AcceptAll{}
	}
	return NewTraitGate(cfg.Trait, cfg.ValueList())
}
