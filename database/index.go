package database

import (
	"github.com/google/btree"

	"github.com/fulldump/gamedb/games"
)

// indexEntry is one bucket of a secondary index: a field value and the
// uids of the games carrying it, in load order.
type indexEntry struct {
	Key  string
	UIDs []uint32
}

// index is an ordered multimap from field value to game uids. The btree
// keeps the keys sorted, so listing all values of a category needs no
// extra sort.
type index struct {
	tree *btree.BTreeG[*indexEntry]
}

func newIndex() *index {
	return &index{
		tree: btree.NewG(16, func(a, b *indexEntry) bool {
			return a.Key < b.Key
		}),
	}
}

// add appends uid to the bucket of key, creating the bucket if needed.
func (i *index) add(key string, uid uint32) {
	entry, ok := i.tree.Get(&indexEntry{Key: key})
	if !ok {
		i.tree.ReplaceOrInsert(&indexEntry{Key: key, UIDs: []uint32{uid}})
		return
	}
	entry.UIDs = append(entry.UIDs, uid)
}

// get returns the bucket of key in load order, or nil.
func (i *index) get(key string) []uint32 {
	entry, ok := i.tree.Get(&indexEntry{Key: key})
	if !ok {
		return nil
	}
	return entry.UIDs
}

// keys returns every key in ascending order.
func (i *index) keys() []string {
	keys := make([]string, 0, i.tree.Len())
	i.tree.Ascend(func(entry *indexEntry) bool {
		keys = append(keys, entry.Key)
		return true
	})
	return keys
}

// entries returns every (key, bucket) pair in ascending key order.
// Buckets stay in load order.
func (i *index) entries() []IndexEntry {
	entries := make([]IndexEntry, 0, i.tree.Len())
	i.tree.Ascend(func(entry *indexEntry) bool {
		entries = append(entries, IndexEntry{Key: entry.Key, UIDs: entry.UIDs})
		return true
	})
	return entries
}

// IndexEntry is the exported form of one index bucket.
type IndexEntry struct {
	Key  string   `json:"key"`
	UIDs []uint32 `json:"uids"`
}

// indexGame adds every value of every indexable category of the game to
// the matching index.
func indexGame(indexes map[games.Category]*index, game *games.Game) {
	for _, c := range games.Categories {
		for _, value := range game.Values(c) {
			indexes[c].add(value, game.UID)
		}
	}
}
