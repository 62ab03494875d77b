// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson"

// MenuItem is a dish listed on the restaurant menu (name, recipe, image,
// category, price). The documents are maintained outside of the service and
// returned exactly as stored.
type MenuItem bson.M

// CollectionName returns the name of the collection
// associated with the MenuItem model.
func (m MenuItem) CollectionName() string {
	return "menu"
}
