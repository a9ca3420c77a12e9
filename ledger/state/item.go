// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package state

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gooption/cbor"
)

// Item is a typed accessor for a single value stored under a fixed key. Values are
// CBOR encoded
type Item[T any] struct {
	key      string
	typeName string
}

// NewItem returns an accessor for the value stored under key
func NewItem[T any](key string) Item[T] {
	var zero T
	return Item[T]{
		key:      key,
		typeName: fmt.Sprintf("%T", zero),
	}
}

func (i Item[T]) Key() string {
	return i.key
}

// Load returns the stored value or a NotFoundError if it does not exist
func (i Item[T]) Load(store KVStore) (T, error) {
	ret, err := i.MayLoad(store)
	if err != nil {
		var zero T
		return zero, err
	}
	if ret == nil {
		var zero T
		return zero, NotFoundError{Key: i.key, Type: i.typeName}
	}
	return *ret, nil
}

// MayLoad returns the stored value, or nil if it does not exist
func (i Item[T]) MayLoad(store KVStore) (*T, error) {
	data, err := store.Get([]byte(i.key))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, StorageError{Op: "get", Key: i.key, Err: err}
	}
	ret := new(T)
	if _, err := cbor.Decode(data, ret); err != nil {
		return nil, StorageError{
			Op:  "decode",
			Key: i.key,
			Err: fmt.Errorf("failed to decode %s: %w", i.typeName, err),
		}
	}
	return ret, nil
}

// Exists reports whether a value is stored under the key
func (i Item[T]) Exists(store KVStore) (bool, error) {
	ok, err := store.Has([]byte(i.key))
	if err != nil {
		return false, StorageError{Op: "has", Key: i.key, Err: err}
	}
	return ok, nil
}

// Save overwrites the stored value
func (i Item[T]) Save(store KVStore, value *T) error {
	data, err := cbor.Encode(value)
	if err != nil {
		return StorageError{
			Op:  "encode",
			Key: i.key,
			Err: fmt.Errorf("failed to encode %s: %w", i.typeName, err),
		}
	}
	if err := store.Set([]byte(i.key), data); err != nil {
		return StorageError{Op: "set", Key: i.key, Err: err}
	}
	return nil
}

// Update loads the value, applies fn and saves the result. Nothing is written when the
// value is missing or fn returns an error, and that error is returned unmodified
func (i Item[T]) Update(store KVStore, fn func(T) (T, error)) (T, error) {
	var zero T
	value, err := i.Load(store)
	if err != nil {
		return zero, err
	}
	value, err = fn(value)
	if err != nil {
		return zero, err
	}
	if err := i.Save(store, &value); err != nil {
		return zero, err
	}
	return value, nil
}

// Remove deletes the stored value. Removing a missing value is not an error
func (i Item[T]) Remove(store KVStore) error {
	if err := store.Delete([]byte(i.key)); err != nil {
		return StorageError{Op: "delete", Key: i.key, Err: err}
	}
	return nil
}
