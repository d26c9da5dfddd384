package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresBucket(t *testing.T) {
	_, err := NewClient(context.Background(), S3Config{Region: "us-east-1"})
	assert.Error(t, err)
}

func TestNilClient(t *testing.T) {
	var c *Client

	_, err := c.PresignGet(context.Background(), "logos/1.png")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, "", c.FileURL("logos/1.png"))
}

func TestFileURL(t *testing.T) {
	c := &Client{cfg: S3Config{PublicBase: "https://cdn.example.com"}}

	assert.Equal(t, "https://cdn.example.com/logos/1.png", c.FileURL("logos/1.png"))
	assert.Equal(t, "", c.FileURL(""))
	assert.Equal(t, "", (&Client{}).FileURL("logos/1.png"))
}

func TestPresignGet(t *testing.T) {
	c, err := NewClient(context.Background(), S3Config{
		Region:     "us-east-1",
		Bucket:     "team-logos",
		AccessKey:  "AKIDEXAMPLE",
		SecretKey:  "secret",
		Endpoint:   "http://localhost:9000",
		PresignTTL: 10 * time.Minute,
	})
	require.NoError(t, err)

	raw, err := c.PresignGet(context.Background(), "valorant/7.png")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.True(t, strings.HasPrefix(u.Path, "/team-logos/valorant/7.png"))
	assert.Equal(t, "600", u.Query().Get("X-Amz-Expires"))

	_, err = c.PresignGet(context.Background(), "")
	assert.Error(t, err)
}
