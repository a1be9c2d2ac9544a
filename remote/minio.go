package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/kjk/settings/properties"
)

// Config describes an S3-compatible bucket holding property files
type Config struct {
	Access       string
	Secret       string
	Bucket       string
	Endpoint     string
	Region       string
	RequestTrace io.Writer
}

// Client reads and writes property files in a bucket
type Client struct {
	Client *minio.Client
	Bucket string
}

// New creates a Client and verifies the bucket exists
func New(config *Config) (*Client, error) {
	if config == nil {
		return nil, errors.New("must provide config")
	}
	c := config
	if c.Access == "" || c.Secret == "" || c.Bucket == "" || c.Endpoint == "" {
		return nil, errors.New("must provide all fields in config")
	}

	mc, err := minio.New(c.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.Access, c.Secret, ""),
		Region: c.Region,
		Secure: true,
	})
	if err != nil {
		return nil, err
	}
	if c.RequestTrace != nil {
		mc.TraceOn(c.RequestTrace)
	}
	found, err := mc.BucketExists(context.Background(), c.Bucket)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("bucket '%s' doesn't exist", c.Bucket)
	}

	return &Client{
		Client: mc,
		Bucket: c.Bucket,
	}, nil
}

// Load reads the object at remotePath and merges it into s
func (c *Client) Load(ctx context.Context, remotePath string, s properties.Settings) error {
	obj, err := c.Client.GetObject(ctx, c.Bucket, remotePath, minio.GetObjectOptions{})
	if err != nil {
		return err
	}
	defer obj.Close()
	return s.Load(obj)
}

// Save serializes s and uploads it to remotePath
func (c *Client) Save(ctx context.Context, remotePath string, s properties.Settings) error {
	var buf bytes.Buffer
	if err := s.Store(&buf); err != nil {
		return err
	}
	opts := minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	}
	_, err := c.Client.PutObject(ctx, c.Bucket, remotePath, &buf, int64(buf.Len()), opts)
	return err
}
