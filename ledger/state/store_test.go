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

package state_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gooption/cbor"
	"github.com/blinklabs-io/gooption/ledger/state"
)

// plainStore hides the Batcher implementation of the wrapped store
type plainStore struct {
	state.KVStore
}

// failingStore fails every read and write
type failingStore struct {
	state.KVStore
}

var errDisk = errors.New("disk error")

func (failingStore) Get([]byte) ([]byte, error) { return nil, errDisk }
func (failingStore) Has([]byte) (bool, error)   { return false, errDisk }
func (failingStore) Set([]byte, []byte) error   { return errDisk }
func (failingStore) Delete([]byte) error        { return errDisk }

type testRecord struct {
	cbor.StructAsArray
	Name  string
	Count uint64
}

func testKVStore(t *testing.T, store state.KVStore) {
	_, err := store.Get([]byte("missing"))
	assert.ErrorIs(t, err, state.ErrNotFound)
	ok, err := store.Has([]byte("missing"))
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte("value")
	require.NoError(t, store.Set([]byte("key"), value))
	// The store must not retain the caller's slice
	value[0] = 'X'
	got, err := store.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)
	ok, err = store.Has([]byte("key"))
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Delete([]byte("key")))
	_, err = store.Get([]byte("key"))
	assert.ErrorIs(t, err, state.ErrNotFound)
	// Deleting a missing key is fine
	require.NoError(t, store.Delete([]byte("key")))
}

func TestMemoryStore(t *testing.T) {
	testKVStore(t, state.NewMemoryStore())
}

func TestMemoryStoreBatch(t *testing.T) {
	store := state.NewMemoryStore()
	require.NoError(t, store.Set([]byte("old"), []byte("1")))
	batch := store.NewBatch()
	require.NoError(t, batch.Set([]byte("new"), []byte("2")))
	require.NoError(t, batch.Delete([]byte("old")))
	// Nothing is visible before commit
	assert.Equal(t, 1, store.Len())
	ok, _ := store.Has([]byte("new"))
	assert.False(t, ok)
	require.NoError(t, batch.Commit())
	require.NoError(t, batch.Close())
	assert.Equal(t, 1, store.Len())
	got, err := store.Get([]byte("new"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
}

func TestCacheStore(t *testing.T) {
	testDefs := []struct {
		name   string
		parent func(*state.MemoryStore) state.KVStore
	}{
		{
			name:   "batch parent",
			parent: func(m *state.MemoryStore) state.KVStore { return m },
		},
		{
			name:   "plain parent",
			parent: func(m *state.MemoryStore) state.KVStore { return plainStore{m} },
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			backing := state.NewMemoryStore()
			require.NoError(t, backing.Set([]byte("a"), []byte("1")))
			require.NoError(t, backing.Set([]byte("b"), []byte("2")))
			cache := state.NewCacheStore(testDef.parent(backing))

			testKVStore(t, cache)

			require.NoError(t, cache.Set([]byte("a"), []byte("10")))
			require.NoError(t, cache.Delete([]byte("b")))
			require.NoError(t, cache.Set([]byte("c"), []byte("3")))
			assert.True(t, cache.Dirty())

			// Reads see the buffered writes
			got, err := cache.Get([]byte("a"))
			require.NoError(t, err)
			assert.Equal(t, []byte("10"), got)
			ok, err := cache.Has([]byte("b"))
			require.NoError(t, err)
			assert.False(t, ok)

			// The parent is untouched
			got, err = backing.Get([]byte("a"))
			require.NoError(t, err)
			assert.Equal(t, []byte("1"), got)

			require.NoError(t, cache.Write())
			assert.False(t, cache.Dirty())
			got, err = backing.Get([]byte("a"))
			require.NoError(t, err)
			assert.Equal(t, []byte("10"), got)
			_, err = backing.Get([]byte("b"))
			assert.ErrorIs(t, err, state.ErrNotFound)
			got, err = backing.Get([]byte("c"))
			require.NoError(t, err)
			assert.Equal(t, []byte("3"), got)
		})
	}
}

func TestCacheStoreDiscard(t *testing.T) {
	backing := state.NewMemoryStore()
	require.NoError(t, backing.Set([]byte("a"), []byte("1")))
	cache := state.NewCacheStore(backing)
	require.NoError(t, cache.Delete([]byte("a")))
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	cache.Discard()
	assert.False(t, cache.Dirty())
	got, err := cache.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)
	require.NoError(t, cache.Write())
	assert.Equal(t, 1, backing.Len())
}

func TestCacheStoreWriteError(t *testing.T) {
	cache := state.NewCacheStore(failingStore{})
	require.NoError(t, cache.Set([]byte("a"), []byte("1")))
	err := cache.Write()
	assert.ErrorIs(t, err, state.ErrStorage)
	assert.ErrorIs(t, err, errDisk)
}

func TestItem(t *testing.T) {
	store := state.NewMemoryStore()
	item := state.NewItem[testRecord]("record")
	assert.Equal(t, "record", item.Key())

	_, err := item.Load(store)
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrNotFound)
	var notFound state.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "record", notFound.Key)
	assert.Equal(t, "state_test.testRecord not found", err.Error())

	loaded, err := item.MayLoad(store)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	record := testRecord{Name: "option", Count: 1}
	require.NoError(t, item.Save(store, &record))
	exists, err := item.Exists(store)
	require.NoError(t, err)
	assert.True(t, exists)
	got, err := item.Load(store)
	require.NoError(t, err)
	assert.Equal(t, record, got)

	updated, err := item.Update(store, func(r testRecord) (testRecord, error) {
		r.Count++
		return r, nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), updated.Count)

	// A failing update leaves the stored value alone
	errUpdate := errors.New("rejected")
	_, err = item.Update(store, func(r testRecord) (testRecord, error) {
		r.Count = 100
		return r, errUpdate
	})
	assert.Equal(t, errUpdate, err)
	got, err = item.Load(store)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.Count)

	require.NoError(t, item.Remove(store))
	_, err = item.Load(store)
	assert.ErrorIs(t, err, state.ErrNotFound)
}

func TestItemStorageErrors(t *testing.T) {
	item := state.NewItem[testRecord]("record")

	_, err := item.Load(failingStore{})
	assert.ErrorIs(t, err, state.ErrStorage)
	assert.ErrorIs(t, err, errDisk)
	assert.NotErrorIs(t, err, state.ErrNotFound)

	assert.ErrorIs(t, item.Save(failingStore{}, &testRecord{}), state.ErrStorage)
	assert.ErrorIs(t, item.Remove(failingStore{}), state.ErrStorage)

	store := state.NewMemoryStore()
	require.NoError(t, store.Set([]byte("record"), []byte{0xff}))
	_, err = item.Load(store)
	assert.ErrorIs(t, err, state.ErrStorage)
}
