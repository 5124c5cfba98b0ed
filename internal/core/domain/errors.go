package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("username already exists")
var ErrProtectedEntity = errors.New("default entities cannot be deleted")
