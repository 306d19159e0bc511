package provision

import (
	"fmt"

	"github.com/google/uuid"
)

// Identity names one provisioning run's service. It is created once at the
// start of a run and never changed.
type Identity struct {
	// Token is a random unique identifier.
	Token string
	// Level is the child's level (the caller's level plus one).
	Level Level
	// Name is "{Token}_level_{Level}".
	Name string
}

// TokenSource returns a fresh unique token on every call.
type TokenSource func() string

// RandomToken draws a random (version 4) UUID. uuid.NewString panics if the
// system entropy source fails, which is an environment failure rather than a
// workflow failure.
func RandomToken() string {
	return uuid.NewString()
}

// Generate derives the identity of the service provisioned by an instance at
// current. A nil tokens falls back to RandomToken.
func Generate(current Level, tokens TokenSource) Identity {
	if tokens == nil {
		tokens = RandomToken
	}
	token := tokens()
	next := current.Next()
	return Identity{
		Token: token,
		Level: next,
		Name:  ServiceName(token, next),
	}
}

// ServiceName formats the display name of a service.
func ServiceName(token string, level Level) string {
	return fmt.Sprintf("%s_level_%d", token, level)
}
