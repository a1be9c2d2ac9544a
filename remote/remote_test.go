package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alecthomas/assert"

	"github.com/kjk/settings/properties"
)

func TestLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("# served config\nHttpPort = 8081\nLogLevel = Debug,Info,Warn\n"))
	}))
	defer srv.Close()

	p := properties.New()
	err := Load(context.Background(), srv.URL, p)
	assert.NoError(t, err)

	v, ok := p.Property("HttpPort")
	assert.True(t, ok)
	assert.Equal(t, "8081", v)
	levels, ok := p.PropertySlice("LogLevel")
	assert.True(t, ok)
	assert.Equal(t, []string{"Debug", "Info", "Warn"}, levels)
}

func TestLoadNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	p := properties.New()
	err := Load(context.Background(), srv.URL+"/missing", p)
	assert.Error(t, err)
	assert.Equal(t, 0, len(p.PropertyNames()))
}

func TestMinioConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	// all fields are required
	_, err = New(&Config{Access: "a", Secret: "s"})
	assert.Error(t, err)
	_, err = New(&Config{Access: "a", Secret: "s", Bucket: "b"})
	assert.Error(t, err)
}
