package order

import (
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/errs"
)

// HandlerKind tags the party responsible for acting on an order.
type HandlerKind int

const (
	// HandlerKindUnknown represents an invalid or undefined handler.
	HandlerKindUnknown HandlerKind = iota

	// HandlerKindAdministrator means any administrator may act.
	HandlerKindAdministrator

	// HandlerKindDistributor means only the one distributor identified by
	// the handler's distributor id may act.
	HandlerKindDistributor
)

// String returns the human-readable name of the handler kind.
func (k HandlerKind) String() string {
	switch k {
	case HandlerKindAdministrator:
		return "Administrator"
	case HandlerKindDistributor:
		return "Distributor"
	default:
		return "Unknown"
	}
}

// Handler identifies the party authorized to review, accept, or reject an
// order. It is a tagged variant: either "any administrator" or one
// specific distributor. A distributor handler without an id, or an
// administrator handler carrying one, cannot be built.
type Handler struct {
	kind          HandlerKind
	distributorID kernel.UUID
}

// AdministratorHandler returns the handler variant under which any
// administrator may act on the order.
func AdministratorHandler() Handler {
	return Handler{kind: HandlerKindAdministrator}
}

// DistributorHandler returns the handler variant bound to one distributor.
func DistributorHandler(distributorID kernel.UUID) (Handler, error) {
	if err := distributorID.Validate(); err != nil {
		return Handler{}, err
	}
	return Handler{kind: HandlerKindDistributor, distributorID: distributorID}, nil
}

// RestoreHandler reconstructs a handler from its persisted representation.
func RestoreHandler(kind HandlerKind, distributorID *kernel.UUID) (Handler, error) {
	switch kind {
	case HandlerKindAdministrator:
		return AdministratorHandler(), nil
	case HandlerKindDistributor:
		if distributorID == nil {
			return Handler{}, errs.NewValueIsRequiredError("handler distributor id")
		}
		return DistributorHandler(*distributorID)
	default:
		return Handler{}, errs.NewValueIsInvalidError("handler kind")
	}
}

// Kind returns the handler variant tag.
func (h Handler) Kind() HandlerKind {
	return h.kind
}

// DistributorID returns the bound distributor id. The second return is
// false for the administrator variant.
func (h Handler) DistributorID() (kernel.UUID, bool) {
	if h.kind != HandlerKindDistributor {
		return kernel.UUID{}, false
	}
	return h.distributorID, true
}

// Validate checks that the handler was built through one of the variant
// constructors.
func (h Handler) Validate() error {
	switch h.kind {
	case HandlerKindAdministrator:
		return nil
	case HandlerKindDistributor:
		return h.distributorID.Validate()
	default:
		return errs.NewValueIsInvalidError("handler kind")
	}
}
