package properties

import (
	"io"
	"sort"
	"strings"
	"sync"
)

// Settings is the read / write contract for a property list.
// Properties is the only implementation; the interface leaves room
// for other backing formats.
type Settings interface {
	// Property returns the value stored for key
	Property(key string) (string, bool)
	// SetProperty inserts or overwrites key -> value
	SetProperty(key, value string)
	// PropertySlice returns the value for key split on ","
	PropertySlice(key string) ([]string, bool)
	// SetPropertySlice stores values joined with ","
	SetPropertySlice(key string, values []string)
	// PropertyNames returns all stored keys
	PropertyNames() []string

	Load(r io.Reader) error
	LoadFromFile(path string) error
	Store(w io.Writer) error
	StoreToFile(path string) error
}

// Format selects the on-disk rendition of a store
type Format int

const (
	// FormatProperties is the "key = value" line format
	FormatProperties Format = iota
	// FormatJSON is a flat JSON object of string values
	FormatJSON
)

// Entry is a single key / value pair
type Entry struct {
	Key   string
	Value string
}

// Properties holds a set of key / value pairs.
// Safe for concurrent use.
type Properties struct {
	format Format
	mu     sync.Mutex
	m      map[string]string
}

var _ Settings = (*Properties)(nil)

// New creates an empty store using the properties line format
func New() *Properties {
	return NewWithFormat(FormatProperties)
}

// NewWithFormat creates an empty store serialized with the given format.
// The format only affects Load / Store, not the map operations.
func NewWithFormat(format Format) *Properties {
	return &Properties{
		format: format,
		m:      map[string]string{},
	}
}

// Property returns the value stored for key
func (p *Properties) Property(key string) (string, bool) {
	p.mu.Lock()
	v, ok := p.m[key]
	p.mu.Unlock()
	return v, ok
}

// SetProperty inserts or overwrites key -> value. Never fails.
func (p *Properties) SetProperty(key, value string) {
	p.mu.Lock()
	p.m[key] = value
	p.mu.Unlock()
}

// PropertySlice returns the value for key split on ",".
// A stored empty string comes back as a single empty element.
func (p *Properties) PropertySlice(key string) ([]string, bool) {
	v, ok := p.Property(key)
	if !ok {
		return nil, false
	}
	return strings.Split(v, ","), true
}

// SetPropertySlice stores values joined with ",".
// An element containing a literal "," is indistinguishable from a
// list boundary on re-read; there is no escaping.
func (p *Properties) SetPropertySlice(key string, values []string) {
	p.SetProperty(key, strings.Join(values, ","))
}

// PropertyNames returns all stored keys. Order is unspecified.
func (p *Properties) PropertyNames() []string {
	p.mu.Lock()
	names := make([]string, 0, len(p.m))
	for k := range p.m {
		names = append(names, k)
	}
	p.mu.Unlock()
	sort.Strings(names)
	return names
}

// entries returns a snapshot of the map sorted by key.
// no direct access to the map to ensure thread safety
func (p *Properties) entries() []Entry {
	p.mu.Lock()
	res := make([]Entry, 0, len(p.m))
	for k, v := range p.m {
		res = append(res, Entry{Key: k, Value: v})
	}
	p.mu.Unlock()
	sort.Slice(res, func(i, j int) bool {
		return res[i].Key < res[j].Key
	})
	return res
}
