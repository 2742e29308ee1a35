package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// failure envelopes; anything else is treated as an internal fault.
var (
	ErrCodeNotFound   = errors.New("verification code not found")
	ErrCodeMismatch   = errors.New("verification code mismatch")
	ErrMemberNotFound = errors.New("member not found")
	ErrTargetNotFound = errors.New("target member not found")
	ErrEdgeNotFound   = errors.New("friend not found")
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrNicknameTaken  = errors.New("nickname is already in use")
	ErrEmailTaken     = errors.New("email is already in use")
)
