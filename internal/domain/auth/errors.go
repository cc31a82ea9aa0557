package auth

import "errors"

// ErrUsernameExists indicates a duplicate username.
var ErrUsernameExists = errors.New("username already exists")
