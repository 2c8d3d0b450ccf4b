// Package actor models the identity acting on a request. Identity and
// session issuance live outside this core; every coordinator call receives
// an explicit Actor value instead of reading ambient request state.
package actor

import (
	"fmt"

	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/errs"
	"agrilease/internal/pkg/guard"
)

// Role is the active role of the acting identity.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdministrator is the platform administrator.
	RoleAdministrator

	// RoleDistributor is a village-level entrepreneur who leases equipment
	// from the platform and rents it onward to farmers.
	RoleDistributor

	// RoleFarmer is an end customer renting equipment from a distributor.
	RoleFarmer
)

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdministrator: "Administrator",
		RoleDistributor:   "Distributor",
		RoleFarmer:        "Farmer",
	}
}

// RoleFromString parses a role name as carried by the identity boundary.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if s, ok := getValidRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ErrActorIsNotConstructed is returned when attempting to use an
// improperly initialized Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Actor is the per-request acting identity: who is calling and in which
// active role. Phone is carried for notification addressing only.
type Actor struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	role  Role
	phone string
	guard guard.ConstructorGuard
}

// NewActor creates an Actor with a validated identity and role.
// Phone may be empty when the identity boundary did not supply one.
func NewActor(id kernel.UUID, role Role, phone string) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the acting identity's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the active role the identity is acting under.
func (a Actor) Role() Role {
	return a.role
}

// Phone returns the identity's phone number, possibly empty.
func (a Actor) Phone() string {
	return a.phone
}

// Validate checks that the actor was created via NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
