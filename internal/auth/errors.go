package auth

import (
	"errors"
)

var (
	UserNotFoundError = errors.New("user not found in request context")
)
