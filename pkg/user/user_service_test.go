package user

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/jwt"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return db
}

func newTestService(t *testing.T) (UserService, UserRepository) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	return NewUserService(repo, jwt.NewJWTService()), repo
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	req := domain.RegisterRequest{Email: "ana@example.com", Password: "secret123", Name: "Ana"}
	res, err := service.Register(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "ana@example.com", res.User.Email)

	_, err = service.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	users, err := repo.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	res, err := service.Register(ctx, domain.RegisterRequest{
		Email: "bob@example.com", Password: "plaintext-password", Name: "Bob",
	})
	require.NoError(t, err)

	stored, err := repo.GetUserByID(ctx, res.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext-password", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	_, err := service.Register(ctx, domain.RegisterRequest{
		Email: "ana@example.com", Password: "secret123", Name: "Ana",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, domain.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// unknown email is indistinguishable from a wrong password
	_, err = service.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	registered, err := service.Register(ctx, domain.RegisterRequest{
		Email: "ana@example.com", Password: "secret123", Name: "Ana",
	})
	require.NoError(t, err)

	res, err := service.Login(ctx, domain.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, res.User.ID)
	assert.NotEmpty(t, res.Token)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	ana, err := service.Register(ctx, domain.RegisterRequest{
		Email: "ana@example.com", Password: "secret123", Name: "Ana",
	})
	require.NoError(t, err)
	bob, err := service.Register(ctx, domain.RegisterRequest{
		Email: "bob@example.com", Password: "secret123", Name: "Bob",
	})
	require.NoError(t, err)

	_, err = service.DeleteUser(ctx, ana.User.ID, ana.User.ID)
	assert.ErrorIs(t, err, domain.ErrDeleteOwnAccount)

	deleted, err := service.DeleteUser(ctx, bob.User.ID, ana.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", deleted.Email)

	_, err = service.Me(ctx, bob.User.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
