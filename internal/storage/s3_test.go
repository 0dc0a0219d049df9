package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLForVirtualHostedStyle(t *testing.T) {
	s, err := NewS3Storage(Config{
		Bucket:    "catalog-images",
		Region:    "eu-west-1",
		AccessKey: "key",
		SecretKey: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"https://catalog-images.s3.eu-west-1.amazonaws.com/products/abc/image",
		s.URLFor("products/abc/image"))
}

func TestURLForPathStyleWithEndpointOverride(t *testing.T) {
	s, err := NewS3Storage(Config{
		Bucket:    "products",
		Region:    "us-east-1",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Endpoint:  "http://localhost:9000",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"http://localhost:9000/products/products/abc/image",
		s.URLFor("products/abc/image"))
}

func TestEndpointTrailingSlashTrimmed(t *testing.T) {
	s, err := NewS3Storage(Config{
		Bucket:    "products",
		Region:    "us-east-1",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Endpoint:  "https://storage.example.com/",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"https://storage.example.com/products/k",
		s.URLFor("k"))
}

func TestInvalidEndpointRejected(t *testing.T) {
	_, err := NewS3Storage(Config{
		Bucket:    "products",
		Region:    "us-east-1",
		AccessKey: "k",
		SecretKey: "s",
		Endpoint:  "://not-a-url",
	})
	assert.Error(t, err)
}
