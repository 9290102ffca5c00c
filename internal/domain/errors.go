package domain

import "errors"

// Sentinel errors used across all layers. Adapters wrap provider failures
// into the matching sentinel; transport maps sentinels to HTTP statuses
// with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")

	// ErrSynthesis covers every speech-provider failure: non-2xx status,
	// network error, or timeout. Subtypes are not distinguished and the
	// call is never retried.
	ErrSynthesis = errors.New("synthesis provider failure")

	// ErrUpload is a terminal object-storage failure.
	ErrUpload = errors.New("artifact upload failed")

	// ErrRecord is a failed history insert. When it happens after a
	// successful upload the artifact stays in storage with no history
	// row; that window is accepted and not reconciled.
	ErrRecord = errors.New("history record failed")

	// ErrHistory is a failed history read.
	ErrHistory = errors.New("history fetch failed")
)
