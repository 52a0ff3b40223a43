package service

import "errors"

// Sentinel kinds for analysis errors.
var (
	// ErrNoDonationColumns rejects a table carrying neither an income nor a
	// gift-count column; nothing can be scored.
	ErrNoDonationColumns = errors.New("no donation columns recognized")
)
