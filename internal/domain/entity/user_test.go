package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "USER", want: RoleUser},
		{in: "admin", want: RoleAdmin},
		{in: " Admin ", want: RoleAdmin},
		{in: "root", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUser_With(t *testing.T) {
	u := User{ID: 1, Username: "alice", Email: "a@x.com", Role: RoleUser}

	u2 := u.WithUsername("alice2").WithRole(RoleAdmin)

	assert.Equal(t, "alice", u.Username)
	assert.False(t, u.IsAdmin())
	assert.Equal(t, "alice2", u2.Username)
	assert.True(t, u2.IsAdmin())
	assert.Equal(t, u.Email, u2.Email)
}

func TestNewAuthorships_DropsRepeatedIDs(t *testing.T) {
	got := NewAuthorships(9, []int64{1, 2, 1, 3, 2})

	assert.Equal(t, []Authorship{
		{ArticleID: 9, AuthorID: 1},
		{ArticleID: 9, AuthorID: 2},
		{ArticleID: 9, AuthorID: 3},
	}, got)

	assert.Empty(t, NewAuthorships(9, nil))
}
