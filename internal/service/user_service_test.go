package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notenest/internal/contract"
)

func TestUserRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	m := &fakeMirror{}
	users := newUserService(db, m)

	registered, apierr := users.Register(&contract.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "hunter22",
	})
	require.Nil(t, apierr)
	assert.NotEmpty(t, registered.ID)
	assert.NotEmpty(t, registered.PasswordHash)
	assert.Contains(t, m.upserts, "users:"+registered.ID)

	login, apierr := users.Login(&contract.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.Nil(t, apierr)
	assert.NotEmpty(t, login.Token)
	require.NotNil(t, login.User)
	assert.Equal(t, registered.ID, login.User.ID)
	require.NotNil(t, login.User.Token)
	assert.Equal(t, login.Token, *login.User.Token)
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db, &fakeMirror{})

	_, apierr := users.Register(&contract.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "hunter22",
	})
	require.Nil(t, apierr)

	_, apierr = users.Register(&contract.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Other Alice",
		Password: "different",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusConflict, apierr.Code())
}

func TestUserLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db, &fakeMirror{})

	_, apierr := users.Register(&contract.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "hunter22",
	})
	require.Nil(t, apierr)

	// Wrong password and unknown email produce the same response.
	_, apierr = users.Login(&contract.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusUnauthorized, apierr.Code())

	_, apierr = users.Login(&contract.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusUnauthorized, apierr.Code())
}

func TestUserLogout(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db, &fakeMirror{})

	_, apierr := users.Register(&contract.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "hunter22",
	})
	require.Nil(t, apierr)

	login, apierr := users.Login(&contract.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.Nil(t, apierr)

	require.Nil(t, users.Logout(login.Token))

	// The token is dead after logout.
	apierr = users.Logout(login.Token)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusUnauthorized, apierr.Code())

	apierr = users.Logout("")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusUnauthorized, apierr.Code())
}

func TestUserGetByIDDerivesToken(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db, &fakeMirror{})

	registered, apierr := users.Register(&contract.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "hunter22",
	})
	require.Nil(t, apierr)

	before, apierr := users.GetByID(registered.ID)
	require.Nil(t, apierr)
	assert.Nil(t, before.Token)

	login, apierr := users.Login(&contract.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.Nil(t, apierr)

	after, apierr := users.GetByID(registered.ID)
	require.Nil(t, apierr)
	require.NotNil(t, after.Token)
	assert.Equal(t, login.Token, *after.Token)
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	db := newTestDB(t)
	m := &fakeMirror{}
	users := newUserService(db, m)

	registered, apierr := users.Register(&contract.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "hunter22",
	})
	require.Nil(t, apierr)

	updated, apierr := users.Update(registered.ID, &contract.UpdateUserRequest{
		Name:     strptr("Alice B."),
		Password: strptr("newsecret"),
	})
	require.Nil(t, apierr)
	assert.Equal(t, "Alice B.", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)

	_, apierr = users.Login(&contract.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NotNil(t, apierr)

	login, apierr := users.Login(&contract.LoginRequest{
		Email:    "alice@example.com",
		Password: "newsecret",
	})
	require.Nil(t, apierr)
	assert.NotEmpty(t, login.Token)
}

func TestUserListNeverExposesTokens(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db, &fakeMirror{})

	_, apierr := users.Register(&contract.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "hunter22",
	})
	require.Nil(t, apierr)

	_, apierr = users.Login(&contract.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.Nil(t, apierr)

	all, apierr := users.GetAll()
	require.Nil(t, apierr)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Token)
}
