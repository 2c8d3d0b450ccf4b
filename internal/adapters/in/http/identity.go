package http

import (
	"github.com/labstack/echo/v4"

	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/pkg/errs"
)

// Identity headers set by the authentication gateway in front of this
// service. Token issuance and verification happen there; this adapter
// only reads the verified result.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// RequestActor reads the authenticated actor from the identity headers.
func RequestActor(ctx echo.Context) (actor.Actor, error) {
	rawID := ctx.Request().Header.Get(HeaderActorID)
	if rawID == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError(HeaderActorID)
	}
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause(HeaderActorID, err)
	}

	rawRole := ctx.Request().Header.Get(HeaderActorRole)
	if rawRole == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError(HeaderActorRole)
	}
	role, err := actor.RoleFromString(rawRole)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, role, ctx.Request().Header.Get("X-Actor-Phone"))
}
