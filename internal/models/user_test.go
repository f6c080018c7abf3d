package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw     string
		want    Role
		wantErr bool
	}{
		{"student", RoleStudent, false},
		{"teacher", RoleTeacher, false},
		{"admin", RoleAdmin, false},
		// legacy spelling used by older records
		{"instructor", RoleTeacher, false},
		{"Teacher", RoleTeacher, false},
		{" admin ", RoleAdmin, false},
		{"superuser", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			role, err := ParseRole(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, role)
		})
	}
}

func TestCreateUserRequestValidate(t *testing.T) {
	valid := CreateUserRequest{Email: "alex@example.edu", Password: "hunter22", DisplayName: "Alex"}
	assert.NoError(t, valid.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())

	shortPassword := valid
	shortPassword.Password = "abc"
	assert.Error(t, shortPassword.Validate())

	noName := valid
	noName.DisplayName = ""
	assert.Error(t, noName.Validate())
}

func TestValidateID(t *testing.T) {
	assert.Error(t, ValidateID(""))
	assert.NoError(t, ValidateID("abc123"))

	long := make([]byte, 129)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, ValidateID(string(long)))
}
