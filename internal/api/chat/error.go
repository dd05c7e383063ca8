package chat

import "HorologeGolang/pkg/response"

var (
	ErrSessionNotFound = response.NewError(404, "chat session not found")
	ErrEmptyMessage    = response.NewError(400, "message must not be empty")
)
