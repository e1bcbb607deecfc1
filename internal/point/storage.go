package point

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/coocood/freecache"
	"github.com/gabriel-vasile/mimetype"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
)

const octetStream = "application/octet-stream"

type File struct {
	ID          string
	ContentType string
	Data        []byte
}

// DataURL encodes the file as a base64 data url.
func (f *File) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", f.ContentType, base64.StdEncoding.EncodeToString(f.Data))
}

// StorageClient wraps the content addressed storage of a point node.
// Files are immutable per id, so fetched files are kept in a local cache.
type StorageClient struct {
	client *Client
	cache  *freecache.Cache
}

// NewStorageClient creates a storage client. cacheSizeMB of 0 disables the file cache.
func NewStorageClient(client *Client, cacheSizeMB int) *StorageClient {
	var cache *freecache.Cache
	if cacheSizeMB > 0 {
		cache = freecache.NewCache(cacheSizeMB * 1024 * 1024)
	}
	return &StorageClient{
		client: client,
		cache:  cache,
	}
}

func (s *StorageClient) GetFile(ctx context.Context, id string) (_ *File, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "point.storage.get")
	span.SetAttributes(attribute.String("id", id))
	defer func() {
		tracing.EndWithError(span, err)
	}()

	if id == "" {
		return nil, fmt.Errorf("get file: empty id: %w", ErrNotFound)
	}

	if f, ok := s.fromCache(id); ok {
		span.SetAttributes(attribute.Bool("from-cache", true))
		return f, nil
	}

	defer func() {
		s.client.metricsManager.CounterStorageOps.WithLabelValues("get", statusLabel(err)).Inc()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.client.url("/_storage/"+url.PathEscape(id)), nil)
	if err != nil {
		return nil, fmt.Errorf("get file %s: new request: %w", id, err)
	}

	data, contentType, err := s.client.do("get file "+id, req)
	if err != nil {
		log.Errorf("storage get file [%s]: %s", id, err)
		return nil, err
	}

	f := &File{
		ID:          id,
		ContentType: detectContentType(contentType, data),
		Data:        data,
	}
	s.toCache(f)

	return f, nil
}

// GetJSON fetches the file by id and decodes its json content into v.
func (s *StorageClient) GetJSON(ctx context.Context, id string, v any) error {
	f, err := s.GetFile(ctx, id)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(f.Data, v); err != nil {
		return fmt.Errorf("decode storage file %s: %w", id, err)
	}
	return nil
}

// PostFile uploads the content as a multipart form file and returns its storage hash.
func (s *StorageClient) PostFile(ctx context.Context, name, contentType string, content io.Reader) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "point.storage.post")
	span.SetAttributes(attribute.String("name", name))
	defer func() {
		s.client.metricsManager.CounterStorageOps.WithLabelValues("post", statusLabel(err)).Inc()
		tracing.EndWithError(span, err)
	}()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(name)))
	if contentType == "" {
		contentType = octetStream
	}
	partHeader.Set("Content-Type", contentType)

	part, err := mw.CreatePart(partHeader)
	if err != nil {
		return "", fmt.Errorf("post file: create part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("post file: copy content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("post file: close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.url("/_storage/"), body)
	if err != nil {
		return "", fmt.Errorf("post file: new request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	data, err := s.client.doEnvelope("post file "+name, req)
	if err != nil {
		log.Errorf("storage post file [%s]: %s", name, err)
		return "", err
	}

	var hash string
	if err := json.Unmarshal(data, &hash); err != nil {
		return "", fmt.Errorf("post file: unmarshal hash: %w", err)
	}
	if hash == "" {
		return "", errors.New("post file: node returned an empty hash")
	}

	log.Debugf("storage file [%s] uploaded: %s", name, hash)
	return hash, nil
}

func (s *StorageClient) fromCache(id string) (*File, bool) {
	if s.cache == nil {
		return nil, false
	}

	cached, err := s.cache.Get([]byte(id))
	if err != nil {
		s.client.metricsManager.CounterStorageCache.WithLabelValues("miss").Inc()
		return nil, false
	}
	s.client.metricsManager.CounterStorageCache.WithLabelValues("hit").Inc()

	// cached value layout: content type, zero byte, data
	sep := bytes.IndexByte(cached, 0)
	if sep < 0 {
		return nil, false
	}
	return &File{
		ID:          id,
		ContentType: string(cached[:sep]),
		Data:        cached[sep+1:],
	}, true
}

func (s *StorageClient) toCache(f *File) {
	if s.cache == nil {
		return
	}

	value := make([]byte, 0, len(f.ContentType)+1+len(f.Data))
	value = append(value, f.ContentType...)
	value = append(value, 0)
	value = append(value, f.Data...)
	if err := s.cache.Set([]byte(f.ID), value, 0); err != nil {
		log.Debugf("storage file [%s] not cached: %s", f.ID, err)
	}
}

func detectContentType(headerValue string, data []byte) string {
	if headerValue != "" && !strings.HasPrefix(headerValue, octetStream) {
		return headerValue
	}
	return mimetype.Detect(data).String()
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
