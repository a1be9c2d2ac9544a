package properties

import (
	"fmt"
	"sync"
	"testing"

	"github.com/alecthomas/assert"
)

func TestSetGet(t *testing.T) {
	p := New()

	_, ok := p.Property("absent")
	assert.False(t, ok)
	_, ok = p.PropertySlice("absent")
	assert.False(t, ok)

	p.SetProperty("k", "v1")
	p.SetProperty("k", "v2")
	v, ok := p.Property("k")
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	// overwriting must not duplicate the key
	assert.Equal(t, []string{"k"}, p.PropertyNames())
}

func TestPropertySlice(t *testing.T) {
	p := New()

	p.SetPropertySlice("LogLevel", []string{"Debug", "Info", "Warn"})
	v, ok := p.Property("LogLevel")
	assert.True(t, ok)
	assert.Equal(t, "Debug,Info,Warn", v)

	levels, ok := p.PropertySlice("LogLevel")
	assert.True(t, ok)
	assert.Equal(t, []string{"Debug", "Info", "Warn"}, levels)

	// an empty slice stores an empty string which splits back
	// into a single empty element
	p.SetPropertySlice("empty", nil)
	v, ok = p.Property("empty")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	vals, ok := p.PropertySlice("empty")
	assert.True(t, ok)
	assert.Equal(t, []string{""}, vals)

	// a single value with no "," comes back as one element
	p.SetProperty("one", "solo")
	vals, ok = p.PropertySlice("one")
	assert.True(t, ok)
	assert.Equal(t, []string{"solo"}, vals)
}

func TestPropertyNames(t *testing.T) {
	p := New()
	assert.Equal(t, 0, len(p.PropertyNames()))
	p.SetProperty("b", "2")
	p.SetProperty("a", "1")
	p.SetProperty("c", "3")
	assert.Equal(t, []string{"a", "b", "c"}, p.PropertyNames())
}

func TestConcurrentSet(t *testing.T) {
	p := New()
	nWorkers := 8
	nKeys := 100

	var wg sync.WaitGroup
	for i := 0; i < nWorkers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < nKeys; j++ {
				key := fmt.Sprintf("w%d-k%d", i, j)
				p.SetProperty(key, "v")
			}
		}()
	}
	wg.Wait()

	// no lost updates on distinct keys
	assert.Equal(t, nWorkers*nKeys, len(p.PropertyNames()))
	v, ok := p.Property("w0-k0")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
