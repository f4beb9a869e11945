package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articles-api/internal/config"
	"articles-api/internal/domain/entity"
)

const testSecret = "k7Qp2xV9mZr4Lw8sTb3Nh6Yc1Fd5Gj0Ue"

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: testSecret, Issuer: "articles-api", Audience: "articles-api", TTL: time.Hour}
}

func TestTokens_IssueAndVerify(t *testing.T) {
	tokens := NewTokens(testJWTConfig())
	u := &entity.User{ID: 7, Username: "alice", Role: entity.RoleAdmin}

	raw, err := tokens.Issue(u)
	require.NoError(t, err)

	claims, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, int64(7), claims.ID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "articles-api", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"articles-api"}, claims.Audience)
}

func TestTokens_VerifyRejects(t *testing.T) {
	now := time.Now()
	tokens := NewTokens(testJWTConfig())
	u := &entity.User{ID: 1, Username: "alice", Role: entity.RoleUser}

	sign := func(c Claims, method jwt.SigningMethod, key any) string {
		s, err := jwt.NewWithClaims(method, c).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "articles-api",
			Audience:  jwt.ClaimStrings{"articles-api"},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
	wrongIss := valid
	wrongIss.Issuer = "someone-else"
	wrongAud := valid
	wrongAud.Audience = jwt.ClaimStrings{"other"}
	noExp := valid
	noExp.ExpiresAt = nil
	noUser := valid
	noUser.Username = ""

	other := NewTokens(config.JWTConfig{Secret: "another-secret-another-secret-xyz", Issuer: "articles-api", Audience: "articles-api", TTL: time.Hour})
	foreign, err := other.Issue(u)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":        "not.a.token",
		"wrong secret":   foreign,
		"expired":        sign(expired, jwt.SigningMethodHS256, []byte(testSecret)),
		"wrong issuer":   sign(wrongIss, jwt.SigningMethodHS256, []byte(testSecret)),
		"wrong audience": sign(wrongAud, jwt.SigningMethodHS256, []byte(testSecret)),
		"no expiry":      sign(noExp, jwt.SigningMethodHS256, []byte(testSecret)),
		"no username":    sign(noUser, jwt.SigningMethodHS256, []byte(testSecret)),
		"hs512":          sign(valid, jwt.SigningMethodHS512, []byte(testSecret)),
		"alg none":       sign(valid, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType),
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Verify(raw)
			assert.Error(t, err)
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer abc", "abc", false},
		{"Bearer    ", "", true},
		{"Basic dXNlcjpwYXNz", "", true},
		{"", "", true},
		{"Bearer", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := bearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingBearer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
