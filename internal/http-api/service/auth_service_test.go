package service

import (
	"testing"
	"time"

	"bookshelf/internal/config"
	"bookshelf/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret-test-secret-test-secret!",
		JWTExpiry: time.Hour,
	}
}

func TestRegister_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	authService := NewAuthService(mockUserRepo, testConfig())

	mockUserRepo.On("FindByEmail", "test@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := authService.Register("testuser", "test@example.com", "password123")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "test@example.com", user.Email)
	// stored password is a hash, never the plaintext
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockUserRepo.AssertExpectations(t)
}

func TestRegister_EmailWithoutAtSign(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	authService := NewAuthService(mockUserRepo, testConfig())

	user, err := authService.Register("testuser", "not-an-email", "password123")

	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Nil(t, user)
	mockUserRepo.AssertNotCalled(t, "Create")
}

func TestRegister_EmailExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	authService := NewAuthService(mockUserRepo, testConfig())

	existing := &models.User{ID: "user-1", Email: "test@example.com"}
	mockUserRepo.On("FindByEmail", "test@example.com").Return(existing, nil)

	user, err := authService.Register("testuser", "test@example.com", "password123")

	assert.ErrorIs(t, err, ErrEmailInUse)
	assert.Nil(t, user)
	mockUserRepo.AssertNotCalled(t, "Create")
}

func TestLogin_Success_TokenCarriesIdentity(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	authService := NewAuthService(mockUserRepo, testConfig())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Username: "alice",
		Email:    "a@x.com",
		Password: string(hashed),
	}
	mockUserRepo.On("FindByEmail", "a@x.com").Return(user, nil)

	token, err := authService.Login("a@x.com", "pw123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "alice", claims.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	authService := NewAuthService(mockUserRepo, testConfig())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Email: "a@x.com", Password: string(hashed)}
	mockUserRepo.On("FindByEmail", "a@x.com").Return(user, nil)

	token, err := authService.Login("a@x.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	authService := NewAuthService(mockUserRepo, testConfig())

	mockUserRepo.On("FindByEmail", "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)

	token, err := authService.Login("nobody@x.com", "pw123")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, token)
}

func TestValidateToken_Garbage(t *testing.T) {
	authService := NewAuthService(new(MockUserRepository), testConfig())

	claims, err := authService.ValidateToken("not.a.token")

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	cfg := testConfig()
	cfg.JWTExpiry = -time.Minute // already expired when issued
	authService := NewAuthService(mockUserRepo, cfg)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Email: "a@x.com", Password: string(hashed)}
	mockUserRepo.On("FindByEmail", "a@x.com").Return(user, nil)

	token, err := authService.Login("a@x.com", "pw123")
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestGetSelf_NotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	authService := NewAuthService(mockUserRepo, testConfig())

	mockUserRepo.On("FindByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	user, err := authService.GetSelf("missing")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, user)
}
