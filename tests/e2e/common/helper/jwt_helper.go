//go:build e2e

package helper

import (
	"testing"
	"time"

	"registrar/internal/domain/actor"
	"registrar/internal/pkg/config"
	"registrar/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// MintToken issues a bearer token for the given actor, signed with the
// test config secret. Identity lives outside the service, so there is no
// login flow to drive; tests mint tokens directly.
func MintToken(t *testing.T, cfg config.Config, actorID uuid.UUID, role actor.Role) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err, "invalid JWT duration in test config")

	token, err := jwt.NewService(cfg.JWT.Secret, duration).GenerateToken(actorID, role)
	require.NoError(t, err, "failed to mint token")

	return token
}

func StudentToken(t *testing.T, cfg config.Config, studentID uuid.UUID) string {
	return MintToken(t, cfg, studentID, actor.RoleStudent)
}

func InstructorToken(t *testing.T, cfg config.Config, instructorID uuid.UUID) string {
	return MintToken(t, cfg, instructorID, actor.RoleInstructor)
}

func RegistrarToken(t *testing.T, cfg config.Config) string {
	return MintToken(t, cfg, uuid.New(), actor.RoleRegistrar)
}
