// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson"

// CartEntry is one menu item placed into a user's shopping cart.
//
// The entry is a snapshot of whatever the client sent (menu item id, name,
// image, price, quantity and so on) and is stored without reshaping. Only
// "email" has a meaning to the service: carts are listed by it. Entries are
// only created and deleted, never updated.
type CartEntry bson.M

// CollectionName returns the name of the collection
// associated with the CartEntry model.
func (c CartEntry) CollectionName() string {
	return "carts"
}

// Email returns the owner of the entry, or "" when the entry has no
// string email.
func (c CartEntry) Email() string {
	email, _ := c["email"].(string)
	return email
}
