package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// Signer produces a time-limited GET URL for an object key
type Signer interface {
	SignURL(key string, ttl time.Duration) (string, error)
}

type OSSConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	SecurityToken string
	Bucket        string
}

func (c OSSConfig) Complete() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

type OSSSigner struct {
	Bucket *oss.Bucket
}

func NewOSSSigner(cfg OSSConfig) (*OSSSigner, error) {
	if !cfg.Complete() {
		return nil, ErrNotConfigured
	}

	var opts []oss.ClientOption
	if cfg.SecurityToken != "" {
		opts = append(opts, oss.SecurityToken(cfg.SecurityToken))
	}
	client, err := oss.New(strings.TrimSpace(cfg.Endpoint), cfg.AccessKey, cfg.SecretKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	return &OSSSigner{Bucket: bucket}, nil
}

func (s *OSSSigner) SignURL(key string, ttl time.Duration) (string, error) {
	secs := int64(ttl / time.Second)
	if secs < 1 {
		secs = 60
	}
	return s.Bucket.SignURL(key, oss.HTTPGet, secs)
}
