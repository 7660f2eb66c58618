package urlutil

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRelativeURL(t *testing.T) {
	assert.Equal(t, "/accounts/", GetRelativeURL("http://api.example.org/accounts/"))
	assert.Equal(t, "/accounts/?page=2", GetRelativeURL("https://api.example.org:8443/accounts/?page=2"))
	assert.Equal(t, "/accounts/", GetRelativeURL("/accounts/"))

	t.Run("lazy url", func(t *testing.T) {
		lazy := NewLazy(func() string { return "http://api.example.org/accounts/" })
		assert.Equal(t, "/accounts/", GetRelativeURL(lazy))
	})
}

func TestSetQueryParameters(t *testing.T) {
	someURL := "http://api.example.org/accounts/"

	got, err := SetQueryParameters(someURL, "foo", "123")
	require.NoError(t, err)
	assert.Equal(t, someURL+"?foo=123", got)

	t.Run("replaces existing key", func(t *testing.T) {
		got, err := SetQueryParameters(someURL+"?foo=1", "foo", "123")
		require.NoError(t, err)
		assert.Equal(t, someURL+"?foo=123", got)
	})

	t.Run("merges with other keys", func(t *testing.T) {
		got, err := SetQueryParameters(someURL+"?bar=1", "foo", "123")
		require.NoError(t, err)
		assert.Equal(t, someURL+"?bar=1&foo=123", got)
	})

	t.Run("odd pair count", func(t *testing.T) {
		_, err := SetQueryParameters(someURL, "foo")
		require.Error(t, err)
	})

	t.Run("lazy url", func(t *testing.T) {
		lazy := NewLazy(func() string { return someURL })
		got, err := SetQueryParameters(lazy, "foo", "123")
		require.NoError(t, err)
		assert.Equal(t, someURL+"?foo=123", got)
	})
}

func TestLazyEvaluatesOnce(t *testing.T) {
	var calls atomic.Int32
	lazy := NewLazy(func() string {
		calls.Add(1)
		return "computed"
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "computed", lazy.String())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}
