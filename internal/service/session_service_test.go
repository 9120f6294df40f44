package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notenest/internal/contract"
)

func intptr(n int) *int { return &n }

func TestSessionCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	m := &fakeMirror{}
	sessions := newSessionService(db, m)
	user := seedUser(t, db, "alice@example.com")

	session, apierr := sessions.Create(&contract.CreateSessionRequest{UserID: user.ID})
	require.Nil(t, apierr)
	assert.NotEmpty(t, session.ID)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, user.ID, session.UserID)
	assert.Contains(t, m.upserts, "sessions:"+session.ID)
}

func TestSessionCreateReplacesExisting(t *testing.T) {
	db := newTestDB(t)
	m := &fakeMirror{}
	sessions := newSessionService(db, m)
	user := seedUser(t, db, "alice@example.com")

	first, apierr := sessions.Create(&contract.CreateSessionRequest{UserID: user.ID})
	require.Nil(t, apierr)

	second, apierr := sessions.Create(&contract.CreateSessionRequest{UserID: user.ID})
	require.Nil(t, apierr)
	assert.NotEqual(t, first.Token, second.Token)

	// The first session is gone from the primary and queued for mirror
	// deletion; only one session per user survives.
	all, apierr := sessions.GetAll()
	require.Nil(t, apierr)
	require.Len(t, all, 1)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Contains(t, m.deletes, "sessions:"+first.ID)
}

func TestSessionValidate(t *testing.T) {
	db := newTestDB(t)
	sessions := newSessionService(db, &fakeMirror{})
	user := seedUser(t, db, "alice@example.com")

	created, apierr := sessions.Create(&contract.CreateSessionRequest{UserID: user.ID})
	require.Nil(t, apierr)

	valid, apierr := sessions.ValidateToken(created.Token)
	require.Nil(t, apierr)
	assert.Equal(t, created.ID, valid.ID)
}

func TestSessionValidateMissingToken(t *testing.T) {
	db := newTestDB(t)
	sessions := newSessionService(db, &fakeMirror{})

	_, apierr := sessions.ValidateToken("")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}

func TestSessionValidateUnknownToken(t *testing.T) {
	db := newTestDB(t)
	sessions := newSessionService(db, &fakeMirror{})

	_, apierr := sessions.ValidateToken("nope")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestSessionLazyExpiry(t *testing.T) {
	db := newTestDB(t)
	m := &fakeMirror{}
	sessions := newSessionService(db, m)
	user := seedUser(t, db, "alice@example.com")

	// Duration 0 expires at the creation instant.
	created, apierr := sessions.Create(&contract.CreateSessionRequest{
		UserID:   user.ID,
		Duration: intptr(0),
	})
	require.Nil(t, apierr)

	_, apierr = sessions.ValidateToken(created.Token)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusUnauthorized, apierr.Code())
	assert.Contains(t, m.deletes, "sessions:"+created.ID)

	// First validation deleted the row, so the token is now unknown.
	_, apierr = sessions.ValidateToken(created.Token)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestSessionDeleteByUser(t *testing.T) {
	db := newTestDB(t)
	m := &fakeMirror{}
	sessions := newSessionService(db, m)
	user := seedUser(t, db, "alice@example.com")

	created, apierr := sessions.Create(&contract.CreateSessionRequest{UserID: user.ID})
	require.Nil(t, apierr)

	require.Nil(t, sessions.DeleteByUser(user.ID))
	assert.Contains(t, m.deletes, "sessions:"+created.ID)

	apierr = sessions.DeleteByUser(user.ID)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestTokenForUser(t *testing.T) {
	db := newTestDB(t)
	sessions := newSessionService(db, &fakeMirror{})
	user := seedUser(t, db, "alice@example.com")

	assert.Nil(t, sessions.TokenForUser(user.ID))

	created, apierr := sessions.Create(&contract.CreateSessionRequest{UserID: user.ID})
	require.Nil(t, apierr)

	token := sessions.TokenForUser(user.ID)
	require.NotNil(t, token)
	assert.Equal(t, created.Token, *token)
}
