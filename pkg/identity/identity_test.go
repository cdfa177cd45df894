package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blizbi/blizbi/pkg/domain"
)

func TestTokens_IssueVerify(t *testing.T) {
	tokens, err := NewTokens("secret", "blizbi", time.Hour)
	require.NoError(t, err)

	token, err := tokens.Issue(domain.User{ID: "user_1", Name: "Kari"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "bare", token: token},
		{name: "bearer", token: "Bearer " + token},
		{name: "lowercase bearer", token: "bearer " + token},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := tokens.Verify(tt.token)
			require.NoError(t, err)
			assert.Equal(t, domain.User{ID: "user_1", Name: "Kari"}, user)
		})
	}
}

func TestTokens_AdminClaim(t *testing.T) {
	tokens, err := NewTokens("secret", "blizbi", time.Hour)
	require.NoError(t, err)

	token, err := tokens.Issue(domain.User{ID: "admin_1", Name: "Ada", Admin: true})
	require.NoError(t, err)

	user, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.True(t, user.Admin)

	unverified, err := ReadUnverified(token)
	require.NoError(t, err)
	assert.Equal(t, user, unverified)
}

func TestTokens_VerifyRejects(t *testing.T) {
	tokens, err := NewTokens("secret", "blizbi", time.Hour)
	require.NoError(t, err)

	other, err := NewTokens("other-secret", "blizbi", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Issue(domain.User{ID: "user_1"})
	require.NoError(t, err)

	wrongIssuer, err := NewTokens("secret", "someone", time.Hour)
	require.NoError(t, err)
	wrongIss, err := wrongIssuer.Issue(domain.User{ID: "user_1"})
	require.NoError(t, err)

	expired, err := NewTokens("secret", "blizbi", time.Hour)
	require.NoError(t, err)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Issue(domain.User{ID: "user_1"})
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user_1"}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"wrong secret": foreign,
		"wrong issuer": wrongIss,
		"expired":      old,
		"alg none":     unsigned,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Verify(token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewTokens_Validation(t *testing.T) {
	_, err := NewTokens("", "blizbi", time.Hour)
	require.Error(t, err)

	tokens, err := NewTokens("secret", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, tokens.ttl)

	_, err = tokens.Issue(domain.User{})
	require.Error(t, err)
}

func TestSession(t *testing.T) {
	tokens, err := NewTokens("secret", "blizbi", time.Hour)
	require.NoError(t, err)
	token, err := tokens.Issue(domain.User{ID: "user_1", Name: "Kari"})
	require.NoError(t, err)

	s := NewSession()
	assert.Nil(t, s.User())
	assert.Empty(t, s.Token())

	var changes []*domain.User
	s.OnChange(func(u *domain.User) { changes = append(changes, u) })

	s.SignOut() // no-op when signed out
	assert.Empty(t, changes)

	require.Error(t, s.SignIn("junk"))
	assert.Nil(t, s.User())

	require.NoError(t, s.SignIn("Bearer "+token))
	require.NotNil(t, s.User())
	assert.Equal(t, "user_1", s.User().ID)
	assert.Equal(t, "Kari", s.User().Name)
	assert.Equal(t, token, s.Token())

	s.SignOut()
	assert.Nil(t, s.User())
	assert.Empty(t, s.Token())

	require.Len(t, changes, 2)
	assert.Equal(t, "user_1", changes[0].ID)
	assert.Nil(t, changes[1])
}
