//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"toolshare/internal/domain/user"
	"toolshare/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		name, _ := user.NewName("Test User")
		email, _ := user.NewEmail("test@example.com")
		expected := user.NewUser(name, email, "hashed_password", user.RoleUser, actual.CreatedAt())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Test User", actual.Name().String())
		assert.Equal(t, user.DefaultSecurityScore, actual.SecurityScore())
		assert.Nil(t, actual.Bio())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "大文字は小文字に正規化OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Mixed@Example.COM") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "user ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("user") },
			},
			{
				name:   "空のロールはuserOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("owner") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "100文字OK",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength)) },
			},
			{
				name:   "101文字NG",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength+1)) },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "空白のみNG",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrInvalidName,
			},
		})
	})

	t.Run("プロフィール更新", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		name, _ := user.NewName("Renamed")
		email, _ := user.NewEmail("renamed@example.com")
		bio := "I fix bikes"
		later := u.CreatedAt().Add(time.Hour)
		u.UpdateProfile(name, email, &bio, later)

		assert.Equal(t, "Renamed", u.Name().String())
		assert.Equal(t, "renamed@example.com", u.Email().Value())
		require.NotNil(t, u.Bio())
		assert.Equal(t, bio, *u.Bio())
		assert.Equal(t, later, u.UpdatedAt())
	})
}

func TestCredentials(t *testing.T) {
	_, err := user.NewCredentials("test@example.com", "short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	creds, err := user.NewCredentials(" Test@Example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", creds.Email().Value())
	assert.Equal(t, "password123", creds.Password().Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
