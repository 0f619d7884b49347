package util

import "errors"

var (
	ErrDomainNotFound       = errors.New("assessment domain not found")
	ErrQuestionsUnavailable = errors.New("questions not loaded")
	ErrSinkUnavailable      = errors.New("result store not connected")
	ErrLeaderboardDisabled  = errors.New("leaderboard not available")
	ErrEmailRequired        = errors.New("email is required")
	ErrPermissionDenied     = errors.New("permission denied")
)
