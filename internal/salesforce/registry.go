package salesforce

import (
	"fmt"

	"github.com/flowhost/sfbridge/internal/domain"
)

// registry maps every operation tag to its single tool descriptor. Built
// once at package init and validated for exhaustiveness over the operation
// catalog; there is no default fallback tool.
var registry = func() map[domain.Operation]*domain.Descriptor {
	groups := [][]*domain.Descriptor{
		accountTools,
		contactTools,
		leadTools,
		opportunityTools,
		caseTools,
		taskTools,
		reportTools,
		dashboardTools,
		queryTools,
	}

	m := make(map[domain.Operation]*domain.Descriptor)
	for _, group := range groups {
		for _, desc := range group {
			if _, dup := m[desc.Operation]; dup {
				panic(fmt.Sprintf("salesforce: duplicate descriptor for operation %q", desc.Operation))
			}
			m[desc.Operation] = desc
		}
	}

	for _, op := range domain.Operations() {
		if _, ok := m[op]; !ok {
			panic(fmt.Sprintf("salesforce: no descriptor for operation %q", op))
		}
	}
	if len(m) != len(domain.Operations()) {
		panic("salesforce: descriptor registered for an operation outside the catalog")
	}
	return m
}()

// Resolve returns the descriptor serving an operation tag.
func Resolve(op domain.Operation) (*domain.Descriptor, error) {
	desc, ok := registry[op]
	if !ok {
		return nil, &domain.UnknownOperationError{Operation: string(op)}
	}
	return desc, nil
}

// Catalog adapts the static registry to the dispatcher's resolver seam.
type Catalog struct{}

func (Catalog) Resolve(op domain.Operation) (*domain.Descriptor, error) {
	return Resolve(op)
}

// Descriptors returns the catalog in operation order.
func Descriptors() []*domain.Descriptor {
	ops := domain.Operations()
	out := make([]*domain.Descriptor, 0, len(ops))
	for _, op := range ops {
		out = append(out, registry[op])
	}
	return out
}
