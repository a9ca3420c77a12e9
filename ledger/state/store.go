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

// Package state provides the key-value storage that contracts persist their records into.
package state

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned (possibly wrapped) when a key does not exist
var ErrNotFound = errors.New("not found")

// ErrStorage is matched by every StorageError so callers can use errors.Is
var ErrStorage = errors.New("storage error")

// KVStore is the minimal durable store contracts run against. Get returns ErrNotFound
// for missing keys. Implementations must not retain the slices passed to Set
type KVStore interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Set(key []byte, value []byte) error
	Delete(key []byte) error
}

// Batch collects writes that are applied together by Commit
type Batch interface {
	Set(key []byte, value []byte) error
	Delete(key []byte) error
	Commit() error
	Close() error
}

// Batcher is implemented by stores that can apply a group of writes atomically
type Batcher interface {
	NewBatch() Batch
}

// NotFoundError indicates that a typed record is absent from the store
type NotFoundError struct {
	Key  string
	Type string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Type)
}

func (NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StorageError wraps a failure of the underlying store or of the record codec
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("storage %s failed for key %q: %v", e.Op, e.Key, e.Err)
}

func (e StorageError) Unwrap() error { return e.Err }

func (StorageError) Is(target error) bool {
	return target == ErrStorage
}
