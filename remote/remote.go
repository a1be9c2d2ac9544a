// Package remote loads property lists from places other than the
// local filesystem: plain HTTP endpoints and S3-compatible buckets.
package remote

import (
	"bytes"
	"context"

	"github.com/carlmjohnson/requests"

	"github.com/kjk/settings/properties"
)

// Load fetches a properties document from uri with a GET request and
// merges it into s. A non-2xx response is an error. No retries.
func Load(ctx context.Context, uri string, s properties.Settings) error {
	var buf bytes.Buffer
	err := requests.
		URL(uri).
		ToBytesBuffer(&buf).
		Fetch(ctx)
	if err != nil {
		return err
	}
	return s.Load(&buf)
}
