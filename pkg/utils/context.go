package utils

import (
	"context"

	"github.com/google/uuid"
)

// Actor identifies who is performing an operation. It is resolved once by
// the auth middleware and passed explicitly into service calls, so the core
// never reads request-scoped globals.
type Actor struct {
	UserID    uuid.UUID
	Role      string
	PartnerID *uuid.UUID // set for partner-scoped users
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}

// SystemActor is used by background jobs (reconciliation worker).
var SystemActor = Actor{Role: "admin"}

type contextKey string

const (
	ActorKey contextKey = "actor"
	TokenKey contextKey = "token"
)

func SetActorContext(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}

func GetActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(Actor)
	return actor, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
