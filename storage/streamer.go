package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Document is an open upstream object ready to be copied to a client
type Document struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64 // -1 when unknown
	Filename      string
}

type Streamer struct {
	Signer     Signer
	Client     *http.Client
	PublicBase string
	TTL        time.Duration
}

// upstreamHeaderTimeout bounds the wait for the storage response headers.
// The body has no overall deadline; the request context cancels it.
const upstreamHeaderTimeout = 30 * time.Second

func newUpstreamClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = upstreamHeaderTimeout
	return &http.Client{Transport: transport}
}

func NewStreamer(signer Signer, publicBase string, ttl time.Duration) *Streamer {
	return &Streamer{
		Signer:     signer,
		Client:     newUpstreamClient(),
		PublicBase: publicBase,
		TTL:        ttl,
	}
}

type multiReadCloser struct {
	io.Reader
	io.Closer
}

// Open signs the key and performs a single GET. The caller closes Body.
func (s *Streamer) Open(ctx context.Context, fullPath string) (*Document, error) {
	base := ""
	if s != nil {
		base = s.PublicBase
	}
	key, err := ObjectKey(fullPath, base)
	if err != nil {
		return nil, err
	}
	if s == nil || s.Signer == nil {
		return nil, ErrNotConfigured
	}

	signed, err := s.Signer.SignURL(key, s.TTL)
	if err != nil {
		return nil, fmt.Errorf("%w: sign: %v", ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, signed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, ErrObjectNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: upstream status %d", ErrUpstream, resp.StatusCode)
	}

	doc := &Document{
		Body:          resp.Body,
		ContentType:   ContentTypeForKey(key),
		ContentLength: resp.ContentLength,
		Filename:      Filename(key),
	}

	if doc.ContentType == "" {
		head := make([]byte, sniffBytes)
		n, err := io.ReadFull(resp.Body, head)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		doc.ContentType = SniffContentType(head[:n])
		doc.Body = multiReadCloser{Reader: io.MultiReader(bytes.NewReader(head[:n]), resp.Body), Closer: resp.Body}
	}
	return doc, nil
}
