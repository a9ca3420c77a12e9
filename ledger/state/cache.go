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
	"maps"
	"slices"
)

type cacheEntry struct {
	value   []byte
	deleted bool
}

// CacheStore buffers writes on top of a parent store. Nothing reaches the parent until
// Write is called, and Discard drops everything buffered so far. The host wraps every
// transaction in one of these to get all-or-nothing semantics
type CacheStore struct {
	parent KVStore
	writes map[string]cacheEntry
}

var _ KVStore = (*CacheStore)(nil)

func NewCacheStore(parent KVStore) *CacheStore {
	return &CacheStore{
		parent: parent,
		writes: make(map[string]cacheEntry),
	}
}

func (c *CacheStore) Get(key []byte) ([]byte, error) {
	if entry, ok := c.writes[string(key)]; ok {
		if entry.deleted {
			return nil, ErrNotFound
		}
		return slices.Clone(entry.value), nil
	}
	return c.parent.Get(key)
}

func (c *CacheStore) Has(key []byte) (bool, error) {
	if entry, ok := c.writes[string(key)]; ok {
		return !entry.deleted, nil
	}
	return c.parent.Has(key)
}

func (c *CacheStore) Set(key []byte, value []byte) error {
	c.writes[string(key)] = cacheEntry{value: slices.Clone(value)}
	return nil
}

func (c *CacheStore) Delete(key []byte) error {
	c.writes[string(key)] = cacheEntry{deleted: true}
	return nil
}

// Dirty reports whether any writes are buffered
func (c *CacheStore) Dirty() bool {
	return len(c.writes) > 0
}

// Write flushes the buffered writes to the parent in key order. When the parent
// supports batches the flush is atomic
func (c *CacheStore) Write() error {
	keys := slices.Sorted(maps.Keys(c.writes))
	if batcher, ok := c.parent.(Batcher); ok {
		batch := batcher.NewBatch()
		defer batch.Close()
		for _, key := range keys {
			if err := applyEntry(batch, key, c.writes[key]); err != nil {
				return StorageError{Op: "write", Key: key, Err: err}
			}
		}
		if err := batch.Commit(); err != nil {
			return StorageError{Op: "commit", Err: err}
		}
	} else {
		for _, key := range keys {
			if err := applyEntry(c.parent, key, c.writes[key]); err != nil {
				return StorageError{Op: "write", Key: key, Err: err}
			}
		}
	}
	c.Discard()
	return nil
}

// Discard drops all buffered writes
func (c *CacheStore) Discard() {
	clear(c.writes)
}

type entryWriter interface {
	Set(key []byte, value []byte) error
	Delete(key []byte) error
}

func applyEntry(w entryWriter, key string, entry cacheEntry) error {
	if entry.deleted {
		return w.Delete([]byte(key))
	}
	return w.Set([]byte(key), entry.value)
}
