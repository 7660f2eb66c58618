package urlutil

import (
	"fmt"
	"net/url"
	"sync"
)

// Lazy is a deferred string whose value is computed once on first use.
// It satisfies fmt.Stringer, so it is accepted anywhere a URL string is.
type Lazy struct {
	once  sync.Once
	fn    func() string
	value string
}

// NewLazy creates a deferred string around fn. fn runs at most once.
func NewLazy(fn func() string) *Lazy {
	return &Lazy{fn: fn}
}

func (l *Lazy) String() string {
	l.once.Do(func() {
		l.value = l.fn()
	})
	return l.value
}

// forceString evaluates a plain string or a deferred string wrapper.
func forceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

// GetRelativeURL strips the scheme and host from a URL, returning the
// path with any query string attached. Deferred strings are evaluated
// before processing.
func GetRelativeURL(rawURL any) string {
	u, err := url.Parse(forceString(rawURL))
	if err != nil {
		return forceString(rawURL)
	}
	u.Scheme = ""
	u.Opaque = ""
	u.User = nil
	u.Host = ""
	return u.String()
}

// SetQueryParameters merges query parameters into a URL, given as
// alternating key/value pairs, and returns the rebuilt URL string. Keys
// already present are replaced, so repeated calls append each parameter
// exactly once. Deferred strings are evaluated before processing.
func SetQueryParameters(rawURL any, pairs ...string) (string, error) {
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("urlutil: number of parameters must be multiple of 2, got %v", pairs)
	}

	u, err := url.Parse(forceString(rawURL))
	if err != nil {
		return "", fmt.Errorf("urlutil: invalid url: %w", err)
	}

	query := u.Query()
	for i := 0; i < len(pairs); i += 2 {
		query.Set(pairs[i], pairs[i+1])
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}
