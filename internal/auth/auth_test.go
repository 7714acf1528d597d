package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/evike/scooter-service/internal/models"
)

func testUser(role models.Role) *models.User {
	return &models.User{
		ID:       primitive.NewObjectID(),
		Username: "wrench",
		Role:     role,
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("workbench-42")
	assert.NoError(t, err)
	assert.NotEqual(t, "workbench-42", hash)

	assert.True(t, CheckPassword("workbench-42", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	service := &Service{secret: []byte("test-secret"), tokenTTL: time.Hour}
	user := testUser(models.RoleTechnician)

	token, err := service.GenerateToken(user)
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "wrench", claims.Username)
	assert.Equal(t, models.RoleTechnician, claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	service := &Service{secret: []byte("test-secret"), tokenTTL: -time.Minute}

	token, err := service.GenerateToken(testUser(models.RoleViewer))
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := &Service{secret: []byte("one"), tokenTTL: time.Hour}
	verifier := &Service{secret: []byte("two"), tokenTTL: time.Hour}

	token, err := issuer.GenerateToken(testUser(models.RoleAdmin))
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := &Service{secret: []byte("test-secret"), tokenTTL: time.Hour}

	_, err := service.ValidateToken("not-a-token")
	assert.Equal(t, ErrInvalidToken, err)
}

func TestNewService_InvalidExpiry(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "sideways")

	_, err := NewService()
	assert.Error(t, err)
}

func TestValidateRegistration(t *testing.T) {
	valid := func() models.RegisterRequest {
		return models.RegisterRequest{
			Username: "technician1",
			Email:    "tech@example.com",
			Password: "long-enough",
			Role:     models.RoleTechnician,
		}
	}

	req := valid()
	assert.NoError(t, ValidateRegistration(&req))
	assert.Equal(t, models.RoleTechnician, req.Role)

	req = valid()
	req.Username = "ab"
	assert.Error(t, ValidateRegistration(&req), "short username")

	req = valid()
	req.Email = "not-an-email"
	assert.Error(t, ValidateRegistration(&req), "malformed email")

	req = valid()
	req.Password = "short"
	assert.Error(t, ValidateRegistration(&req), "weak password")

	req = valid()
	req.Role = models.Role("janitor")
	assert.Error(t, ValidateRegistration(&req), "unknown role")
}

func TestValidateRegistration_DefaultsToViewer(t *testing.T) {
	req := models.RegisterRequest{
		Username: "newcomer",
		Email:    "new@example.com",
		Password: "long-enough",
	}

	assert.NoError(t, ValidateRegistration(&req))
	assert.Equal(t, models.RoleViewer, req.Role)
}
