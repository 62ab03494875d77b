// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bistro-boss/internal/logger"
	"github.com/MKhiriev/bistro-boss/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewUserRepository returns a UserRepository backed by the users collection of db.
func NewUserRepository(db *DB, log *logger.Logger) UserRepository {
	return &userRepository{
		collection: db.Collection(models.User{}.CollectionName()),
		logger:     log,
	}
}

func (u *userRepository) CreateUser(ctx context.Context, user models.User) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	res, err := u.collection.InsertOne(ctx, user)
	if err != nil {
		if isDuplicateKey(err) {
			log.Warn().Str("func", "userRepository.CreateUser").Str("email", user.Email).Msg("user already exists")
			return models.InsertResult{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("error inserting user")
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrInsertingDocument, err)
	}

	return insertResult(res), nil
}

func (u *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	cursor, err := u.collection.Find(ctx, bson.D{})
	if err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("error finding users")
		return nil, fmt.Errorf("%w: %w", ErrFindingDocuments, err)
	}

	users := make([]models.User, 0)
	if err = cursor.All(ctx, &users); err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("error decoding users")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocuments, err)
	}

	return users, nil
}

func (u *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User

	err := u.collection.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrFindingDocuments, err)
	}

	return user, nil
}

func (u *userRepository) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	objectID, err := ParseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	res, err := u.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: objectID}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userRepository.DeleteUser").Msg("error deleting user")
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrDeletingDocument, err)
	}
	if res.DeletedCount == 0 {
		return deleteResult(res), ErrUserNotFound
	}

	return deleteResult(res), nil
}

func (u *userRepository) PromoteUser(ctx context.Context, id string) (models.UpdateResult, error) {
	objectID, err := ParseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	filter := bson.D{{Key: "_id", Value: objectID}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: models.RoleAdmin}}}}

	res, err := u.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userRepository.PromoteUser").Msg("error promoting user")
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrUpdatingDocument, err)
	}
	// already-admin users match without modification
	if res.MatchedCount == 0 {
		return updateResult(res), ErrUserNotFound
	}

	return updateResult(res), nil
}
