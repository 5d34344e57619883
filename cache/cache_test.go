package cache

import (
	"strconv"
	"sync"
	"testing"
)

func newStringCache(capacity int) *ShardedCache[string, int] {
	return NewSharded[string, int](capacity, StringHasher)
}

// singleShard routes every key to shard 0.
func singleShard(string) uint64 { return 0 }

func TestNewSharded(t *testing.T) {
	c := newStringCache(0)
	if c.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", c.Capacity(), DefaultCapacity)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCacheGetSet(t *testing.T) {
	c := newStringCache(10)
	c.Set("key1", 42)

	if val, ok := c.Get("key1"); !ok || val != 42 {
		t.Errorf("Get(key1) = (%d, %v), want (42, true)", val, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("Get(nonexistent) found a value")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("Get(key1) after update = %d, want 7", val)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := newStringCache(10)
	calls := 0
	create := func() int {
		calls++
		return 100 * calls
	}

	if got := c.GetOrCreate("k", create); got != 100 {
		t.Errorf("first GetOrCreate = %d, want 100", got)
	}
	if got := c.GetOrCreate("k", create); got != 100 {
		t.Errorf("second GetOrCreate = %d, want cached 100", got)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.HitRate() != 0.5 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss", st)
	}
}

func TestCacheEvictionOrder(t *testing.T) {
	c := NewSharded[string, int](2, singleShard)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // b is now the oldest
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s was evicted", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestCacheDeleteClear(t *testing.T) {
	c := newStringCache(10)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Error("Delete(a) = false")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Error("cache unusable after Clear")
	}
}

func TestLRUList(t *testing.T) {
	var l lruList[string, int]
	if l.removeOldest() != nil {
		t.Error("removeOldest on empty list returned a node")
	}
	a := l.pushFront("a", 1)
	l.pushFront("b", 2)
	l.pushFront("c", 3)
	l.moveToFront(a)

	var order []string
	for n := l.head; n != nil; n = n.next {
		order = append(order, n.key)
	}
	if got := order; len(got) != 3 || got[0] != "a" || got[1] != "c" || got[2] != "b" {
		t.Errorf("order = %v, want [a c b]", got)
	}
	if n := l.removeOldest(); n.key != "b" {
		t.Errorf("removeOldest() = %s, want b", n.key)
	}
	if l.len != 2 || l.tail.key != "c" {
		t.Errorf("len = %d tail = %s, want 2 and c", l.len, l.tail.key)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := newStringCache(64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := strconv.Itoa(i % 50)
				c.GetOrCreate(k, func() int { return i })
				c.Get(k)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() != 50 {
		t.Errorf("Len() = %d, want 50", c.Len())
	}
}
