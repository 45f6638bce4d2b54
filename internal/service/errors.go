package service

import "errors"

// Errors surfaced to the request layer. State-machine violations come from
// the model package and pass through wrapped, so callers can match both kinds
// with errors.Is.
var (
	ErrNotFound              = errors.New("not found")
	ErrForbidden             = errors.New("not the game owner")
	ErrActiveGameExists      = errors.New("user already has a game in progress")
	ErrInsufficientQuestions = errors.New("question bank cannot fill every level")
)
