// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the access level of a registered user.
// The zero value is the default role every user gets on registration.
type Role string

const (
	// RoleDefault is assigned to every newly registered user.
	RoleDefault Role = ""

	// RoleAdmin is granted only through the promotion endpoint.
	RoleAdmin Role = "admin"
)

// User represents a registered customer of the restaurant site.
// The email is the unique identity key of the account.
type User struct {
	// ID is the document identifier assigned by the datastore on insert.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitzero"`

	// Name is the display name of the user.
	Name string `bson:"name,omitempty" json:"name,omitempty"`

	// Email is the unique user identity. Used to scope cart entries.
	Email string `bson:"email" json:"email" validate:"required,email"`

	// PhotoURL is an optional avatar link shown by the front end.
	PhotoURL string `bson:"photoURL,omitempty" json:"photoURL,omitempty"`

	// Role is empty for regular users and "admin" after promotion.
	Role Role `bson:"role,omitempty" json:"role,omitempty"`
}

// CollectionName returns the name of the collection
// associated with the User model.
func (u User) CollectionName() string {
	return "users"
}

// IsAdmin reports whether the user was promoted to the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
