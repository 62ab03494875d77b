// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson"

// Review is a customer testimonial shown on the landing page. Like menu
// items, reviews are read-only and returned exactly as stored.
type Review bson.M

// CollectionName returns the name of the collection
// associated with the Review model.
func (r Review) CollectionName() string {
	return "reviews"
}
