// Package capability holds the ordered, interned tuple of field values
// (Capabilities) a matched Rule reports, the Interner that deduplicates
// identical tuples across the catalog's 70k+ rules, and the Projection
// that maps a named Field to its position in that tuple.
package capability

import (
	"strings"
	"sync"

	"github.com/coregx/browscap/fields"
)

// Capabilities is an ordered tuple of string values, one per position in
// a Projection. Two Capabilities are equal iff their value sequences are
// equal; the Interner guarantees that equal tuples share one instance, so
// most rules (which tend to reuse one of a few hundred distinct browser
// capability sets) collapse onto a handful of shared records.
type Capabilities struct {
	values []string
	key    string // cached join of values, used for dedup and hashing
}

func newCapabilities(values []string) *Capabilities {
	return &Capabilities{
		values: values,
		key:    strings.Join(values, "\x00"),
	}
}

// Get returns the value mapped to field by proj, or ("", false) if field
// is not part of proj.
func (c *Capabilities) Get(proj *Projection, field *fields.Field) (string, bool) {
	pos, ok := proj.position(field)
	if !ok || pos >= len(c.values) {
		return "", false
	}
	return c.values[pos], true
}

// GetBrowser returns the BROWSER field's value, if projected.
func (c *Capabilities) GetBrowser(proj *Projection) (string, bool) {
	return c.Get(proj, fields.Browser)
}

// GetBrowserType returns the BROWSER_TYPE field's value, if projected.
func (c *Capabilities) GetBrowserType(proj *Projection) (string, bool) {
	return c.Get(proj, fields.BrowserType)
}

// GetBrowserMajorVersion returns the BROWSER_MAJOR_VERSION field's value, if projected.
func (c *Capabilities) GetBrowserMajorVersion(proj *Projection) (string, bool) {
	return c.Get(proj, fields.BrowserMajorVersion)
}

// GetPlatform returns the PLATFORM field's value, if projected.
func (c *Capabilities) GetPlatform(proj *Projection) (string, bool) {
	return c.Get(proj, fields.Platform)
}

// GetPlatformVersion returns the PLATFORM_VERSION field's value, if projected.
func (c *Capabilities) GetPlatformVersion(proj *Projection) (string, bool) {
	return c.Get(proj, fields.PlatformVersion)
}

// GetDeviceType returns the DEVICE_TYPE field's value, if projected.
func (c *Capabilities) GetDeviceType(proj *Projection) (string, bool) {
	return c.Get(proj, fields.DeviceType)
}

// Interner deduplicates Capabilities tuples by value sequence. Safe for
// concurrent use; in practice only used during the single-threaded build
// phase, but the lock makes that an enforced invariant rather than an
// assumption.
type Interner struct {
	mu    sync.Mutex
	cache map[string]*Capabilities
}

// NewInterner returns an empty capability interner.
func NewInterner() *Interner {
	return &Interner{cache: make(map[string]*Capabilities)}
}

// Intern returns the shared Capabilities for values, creating and caching
// it on first occurrence. The slice is copied; callers may reuse values
// after the call returns.
func (in *Interner) Intern(values []string) *Capabilities {
	owned := make([]string, len(values))
	copy(owned, values)
	key := strings.Join(owned, "\x00")

	in.mu.Lock()
	defer in.mu.Unlock()
	if existing, ok := in.cache[key]; ok {
		return existing
	}
	c := newCapabilities(owned)
	in.cache[key] = c
	return c
}

// Len reports how many distinct Capabilities tuples have been interned.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.cache)
}

// NewDefault returns a Capabilities tuple with UnknownValue at every
// position of proj - the fallback returned for an empty query and the
// base from which the wildcard sentinel's tuple (NewWildcard) is derived.
func NewDefault(proj *Projection) *Capabilities {
	values := make([]string, proj.Len())
	for i := range values {
		values[i] = UnknownValue
	}
	return newCapabilities(values)
}

// NewWildcard builds the capability tuple for the catch-all sentinel
// rule (spec.md §4.9): BROWSER and BROWSER_TYPE are overridden to
// DefaultBrowserValue, every other default-projection field is
// UnknownValue, and fields outside the default set keep the interner's
// UnknownValue placeholder (they have no meaningful wildcard value).
func NewWildcard(proj *Projection) *Capabilities {
	values := make([]string, proj.Len())
	for i := range values {
		f := proj.FieldAt(i)
		switch {
		case f == fields.Browser || f == fields.BrowserType:
			values[i] = DefaultBrowserValue
		default:
			values[i] = UnknownValue
		}
	}
	return newCapabilities(values)
}
