// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when an operation targets a user document
	// that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrCartEntryNotFound is returned when a delete targets a cart entry
	// that does not exist.
	ErrCartEntryNotFound = errors.New("item not found")

	// ErrInvalidID is returned when an identifier cannot be parsed into the
	// datastore's native document id format.
	ErrInvalidID = errors.New("invalid document id")
)

// Low-level datastore operation errors. These wrap the driver error when a
// MongoDB call fails before any domain logic can be applied.
var (
	// ErrInsertingDocument is returned when InsertOne fails.
	ErrInsertingDocument = errors.New("error inserting document")

	// ErrFindingDocuments is returned when a Find or FindOne call fails.
	ErrFindingDocuments = errors.New("error finding documents")

	// ErrDecodingDocuments is returned when cursor results cannot be decoded
	// into the model type.
	ErrDecodingDocuments = errors.New("error decoding documents")

	// ErrDeletingDocument is returned when DeleteOne fails.
	ErrDeletingDocument = errors.New("error deleting document")

	// ErrUpdatingDocument is returned when UpdateOne fails.
	ErrUpdatingDocument = errors.New("error updating document")
)
