package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid user",
			userName: "Joe Smith",
			email:    "joe@smith.com",
			password: "joepassword",
			wantErr:  nil,
		},
		{
			name:     "empty name",
			userName: "",
			email:    "joe@smith.com",
			password: "joepassword",
			wantErr:  ErrEmptyName,
		},
		{
			name:     "empty email",
			userName: "Joe Smith",
			email:    "",
			password: "joepassword",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "email without domain dot",
			userName: "Joe Smith",
			email:    "joe@smith",
			password: "joepassword",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "email without local part",
			userName: "Joe Smith",
			email:    "@smith.com",
			password: "joepassword",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "password beyond bcrypt limit",
			userName: "Joe Smith",
			email:    "joe@smith.com",
			password: string(make([]byte, 73)),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.userName, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.Equal(t, tt.userName, user.Name)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestNewUserNormalizesEmail(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Sally", "  Sally@Example.COM ", "sallypassword")
	require.NoError(t, err)
	assert.Equal(t, "sally@example.com", user.Email)
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a@x.com", NormalizeEmail("A@X.Com"))
	assert.Equal(t, "a@x.com", NormalizeEmail("  a@x.com\t"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has only the hash.
	user := &User{
		ID:             uuid.New(),
		Name:           "Joe Smith",
		Email:          "joe@smith.com",
		HashedPassword: "$2a$10$somethinghashed",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
