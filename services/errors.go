package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrInvalidToken    = errors.New("invalid token")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnauthorized    = errors.New("unauthorized access")

	// Content errors
	ErrPostNotFound     = errors.New("post not found")
	ErrSlugTaken        = errors.New("slug already in use")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTagNotFound      = errors.New("tag not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrUserNotFound     = errors.New("user not found")

	// Comment errors
	ErrCommentsDisabled = errors.New("comments are disabled")
	ErrInvalidStatus    = errors.New("invalid status")

	// Config errors
	ErrConfigUnavailable = errors.New("site config unavailable")
)
