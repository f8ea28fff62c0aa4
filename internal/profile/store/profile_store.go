/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/govsupport/welfare-matching-service/internal/profile/model"
)

const (
	personalCollection = "user_data"
	businessCollection = "business_data"

	opTimeout = 5 * time.Second
)

// ProfileStore persists requester answer sheets in the document store, one
// collection per audience.
type ProfileStore struct {
	db *mongo.Database
}

// NewProfileStore creates a profile store over the given database handle.
func NewProfileStore(db *mongo.Database) *ProfileStore {

	return &ProfileStore{db: db}
}

// GetPersonalBySub returns the personal profile for the subject, or
// (nil, nil) when the subject never saved one.
func (ps *ProfileStore) GetPersonalBySub(ctx context.Context, sub string) (*model.PersonalProfile, error) {

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var profile model.PersonalProfile
	err := ps.db.Collection(personalCollection).FindOne(ctx, bson.M{"sub": sub}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "fetching personal profile for subject %q", sub)
	}
	return &profile, nil
}

// GetBusinessBySub returns the business profile for the subject, or
// (nil, nil) when the subject never saved one.
func (ps *ProfileStore) GetBusinessBySub(ctx context.Context, sub string) (*model.BusinessProfile, error) {

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var profile model.BusinessProfile
	err := ps.db.Collection(businessCollection).FindOne(ctx, bson.M{"sub": sub}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "fetching business profile for subject %q", sub)
	}
	return &profile, nil
}

// UpsertPersonal writes the personal profile keyed by subject and returns the
// stored document. A profile id is minted on first insert and never changes.
func (ps *ProfileStore) UpsertPersonal(ctx context.Context, profile *model.PersonalProfile) (*model.PersonalProfile, error) {

	profile.UpdatedAt = time.Now().UTC()

	var stored model.PersonalProfile
	err := ps.upsert(ctx, personalCollection, profile.Sub, profile, &stored)
	if err != nil {
		return nil, errors.Wrapf(err, "upserting personal profile for subject %q", profile.Sub)
	}
	return &stored, nil
}

// UpsertBusiness writes the business profile keyed by subject and returns the
// stored document.
func (ps *ProfileStore) UpsertBusiness(ctx context.Context, profile *model.BusinessProfile) (*model.BusinessProfile, error) {

	profile.UpdatedAt = time.Now().UTC()

	var stored model.BusinessProfile
	err := ps.upsert(ctx, businessCollection, profile.Sub, profile, &stored)
	if err != nil {
		return nil, errors.Wrapf(err, "upserting business profile for subject %q", profile.Sub)
	}
	return &stored, nil
}

// upsert replaces the subject's document with the given profile, preserving
// the profile id minted on first insert.
func (ps *ProfileStore) upsert(ctx context.Context, collection, sub string, profile, out interface{}) error {

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	raw, err := bson.Marshal(profile)
	if err != nil {
		return errors.Wrap(err, "encoding profile document")
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return errors.Wrap(err, "decoding profile document")
	}
	// profile_id comes from $setOnInsert only, so an update never clears it.
	delete(fields, "profile_id")

	update := bson.M{
		"$set":         fields,
		"$setOnInsert": bson.M{"profile_id": uuid.NewString()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	return ps.db.Collection(collection).FindOneAndUpdate(ctx, bson.M{"sub": sub}, update, opts).Decode(out)
}
