package models

import (
	"fmt"
	"strings"
)

const (
	FirestoreUserProfilesCollection = "user_profiles"
)

// Role is the closed set of roles a user can hold. Legacy records use a few
// alternate spellings ("instructor"); ParseRole normalizes them so the rest
// of the codebase only ever sees these three values.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ParseRole normalizes a raw role string into a Role. Unknown values are
// rejected so a bad record can never sneak an unrecognized role past the
// authentication boundary.
func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "student":
		return RoleStudent, nil
	case "teacher", "instructor":
		return RoleTeacher, nil
	case "admin":
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

// Profile is a collection of standard profile information for a user.
// This struct separates client-safe profile information from internal user metadata.
type Profile struct {
	DisplayName string `json:"displayName" mapstructure:"displayName"`
	Email       string `json:"email" mapstructure:"email"`
	PhotoURL    string `json:"photoUrl,omitempty" mapstructure:"photoUrl"`
	Role        Role   `json:"role" mapstructure:"role"`
}

// User represents a registered user.
type User struct {
	*Profile
	ID                 string `json:"id" mapstructure:"id"`
	Disabled           bool   `json:"-"`
	CreationTimestamp  int64  `json:"-"`
	LastLogInTimestamp int64  `json:"-"`
}

// CreateUserRequest is the parameter struct for the CreateUser function.
type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// Validate checks a CreateUserRequest struct for errors.
func (u *CreateUserRequest) Validate() error {
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}

	if len(u.Password) < 6 {
		return fmt.Errorf("password must be a string at least 6 characters long")
	}

	if u.DisplayName == "" {
		return fmt.Errorf("display name must be a non-empty string")
	}

	return nil
}

// UpdateUserRequest is the parameter struct for the UpdateUser function.
type UpdateUserRequest struct {
	UserID      string `json:"userID,omitempty"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
}

// SetRoleByEmailRequest is the parameter struct for the SetUserRoleByEmail function.
type SetRoleByEmailRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ValidateEmail checks that an email string is well formed.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email must be a non-empty string")
	}
	if parts := strings.Split(email, "@"); len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("malformed email string: %q", email)
	}
	return nil
}

// ValidateID checks that a document id is usable as a Firestore key.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("id must be a non-empty string")
	}
	if len(id) > 128 {
		return fmt.Errorf("id string must not be longer than 128 characters")
	}
	return nil
}
