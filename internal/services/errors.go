package services

import "errors"

// Sentinel errors for the failure categories handlers map onto HTTP statuses.
var (
	// ErrNotFound covers missing users and papers, including papers that
	// exist but belong to another user. Cross-owner access must look
	// identical to a missing record.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when signing up with an already registered email.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login failure. It deliberately does
	// not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrQuotaExceeded is returned when a free-tier user already holds the
	// maximum number of papers.
	ErrQuotaExceeded = errors.New("free users can only upload 3 papers, upgrade to premium")

	// ErrInvalidInput covers malformed uploads: an empty filename or a
	// non-PDF extension.
	ErrInvalidInput = errors.New("invalid upload")

	// ErrExtractionFailed is returned when a PDF yields no usable text.
	ErrExtractionFailed = errors.New("could not extract text from PDF")
)
