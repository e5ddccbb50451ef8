package service

import (
	"context"
	"testing"

	"github.com/sharer-labs/shareit-server/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	e := newEnv()

	user, err := e.userSvc.Create(context.Background(), dto.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	e := newEnv()
	e.addUser(t, "Alice", "alice@example.com")

	_, err := e.userSvc.Create(context.Background(), dto.CreateUserRequest{Name: "Bob", Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestCreateUser_MissingFields(t *testing.T) {
	e := newEnv()

	_, err := e.userSvc.Create(context.Background(), dto.CreateUserRequest{Name: "Alice"})
	assert.ErrorIs(t, err, ErrInvalidUser)

	_, err = e.userSvc.Create(context.Background(), dto.CreateUserRequest{Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestGetUser_NotFound(t *testing.T) {
	e := newEnv()

	_, err := e.userSvc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser_SameEmailShortCircuits(t *testing.T) {
	e := newEnv()
	user := e.addUser(t, "Alice", "alice@example.com")

	// Supplying the current email ignores the whole payload, new name
	// included.
	updated, err := e.userSvc.Update(context.Background(), user.ID, dto.UpdateUserRequest{
		Name:  strPtr("Someone Else"),
		Email: strPtr("alice@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)

	stored, err := e.userSvc.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.Name)
}

func TestUpdateUser_PartialFields(t *testing.T) {
	e := newEnv()
	user := e.addUser(t, "Alice", "alice@example.com")

	updated, err := e.userSvc.Update(context.Background(), user.ID, dto.UpdateUserRequest{Name: strPtr("Alicia")})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)

	updated, err = e.userSvc.Update(context.Background(), user.ID, dto.UpdateUserRequest{Email: strPtr("alicia@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "alicia@example.com", updated.Email)
}

func TestUpdateUser_EmailCollision(t *testing.T) {
	e := newEnv()
	e.addUser(t, "Alice", "alice@example.com")
	bob := e.addUser(t, "Bob", "bob@example.com")

	_, err := e.userSvc.Update(context.Background(), bob.ID, dto.UpdateUserRequest{Email: strPtr("alice@example.com")})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestDeleteUser_Idempotent(t *testing.T) {
	e := newEnv()
	user := e.addUser(t, "Alice", "alice@example.com")

	require.NoError(t, e.userSvc.Delete(context.Background(), user.ID))
	require.NoError(t, e.userSvc.Delete(context.Background(), user.ID))

	_, err := e.userSvc.GetByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	e := newEnv()
	e.addUser(t, "Alice", "alice@example.com")
	e.addUser(t, "Bob", "bob@example.com")

	users, err := e.userSvc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
}
