//go:build e2e

package helper

import (
	"testing"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/config"
	"salon-booking/tests/common/authtest"
	"salon-booking/tests/common/dbtest"

	"github.com/google/uuid"
)

// JWTTestHelper creates users in the database and issues tokens for them.
type JWTTestHelper struct {
	db  dbtest.DBLike
	jwt *authtest.JWTHelper
}

func NewJWTTestHelper(db dbtest.DBLike, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{db: db, jwt: authtest.NewJWTHelper(cfg)}
}

func (h *JWTTestHelper) CreateUserWithToken(t *testing.T, email string, role user.Role) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, h.db, email, role)
	return id, h.jwt.GenerateToken(t, id, role)
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.jwt.GenerateToken(t, userID, role)
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.jwt.CreateExpiredToken(t, userID, role)
}
