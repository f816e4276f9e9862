package wsdl

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGet(t *testing.T) {
	cache := NewCache(NewLoader("testdata"))

	first, err := cache.Get("stockquote.wsdl")
	require.NoError(t, err)
	second, err := cache.Get("stockquote.wsdl")
	require.NoError(t, err)
	assert.Same(t, first, second, "repeated gets should share the extracted model")
}

func TestCacheRemove(t *testing.T) {
	cache := NewCache(NewLoader("testdata"))

	first, err := cache.Get("stockquote.wsdl")
	require.NoError(t, err)

	cache.Remove("stockquote.wsdl")
	second, err := cache.Get("stockquote.wsdl")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first, second)
}

func TestCacheClear(t *testing.T) {
	cache := NewCache(NewLoader("testdata"))

	first, err := cache.Get("stockquote.wsdl")
	require.NoError(t, err)

	cache.Clear()
	second, err := cache.Get("stockquote.wsdl")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestCacheError(t *testing.T) {
	cache := NewCache(NewLoader("testdata"))

	_, err := cache.Get("no-such.wsdl")
	require.Error(t, err)

	// The failure is memoized too.
	_, again := cache.Get("no-such.wsdl")
	assert.Equal(t, err, again)
}

func TestCacheConcurrentGet(t *testing.T) {
	cache := NewCache(NewLoader("testdata"))

	var wg sync.WaitGroup
	results := make([]*Definitions, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defs, err := cache.Get("stockquote.wsdl")
			assert.NoError(t, err)
			results[i] = defs
		}(i)
	}
	wg.Wait()

	for _, defs := range results[1:] {
		assert.Same(t, results[0], defs)
	}
}
