package blog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pointnetwork/PointBlogSoftware/internal/point"
	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=repo_mocks_test.go -package=blog_test

// DocumentFileName is the storage file name blog documents are uploaded under.
const DocumentFileName = "blog.json"

type contractClient interface {
	Call(ctx context.Context, req point.CallRequest) (*point.Response, error)
	Send(ctx context.Context, req point.CallRequest) (*point.Response, error)
}

type storageClient interface {
	GetFile(ctx context.Context, id string) (*point.File, error)
	GetJSON(ctx context.Context, id string, v any) error
	PostFile(ctx context.Context, name, contentType string, content io.Reader) (string, error)
}

// Repo reads and writes blog posts through the blog contract and point storage.
type Repo struct {
	contract contractClient
	storage  storageClient
}

func NewRepo(contract contractClient, storage storageClient) *Repo {
	return &Repo{
		contract: contract,
		storage:  storage,
	}
}

// All returns the live posts, each joined with its current document.
func (r *Repo) All(ctx context.Context) ([]Post, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.all")
	defer span.End()
	return r.list(ctx, point.GetAllBlogs)
}

// Deleted returns the soft deleted posts, each joined with its current document.
func (r *Repo) Deleted(ctx context.Context) ([]Post, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.deleted")
	defer span.End()
	return r.list(ctx, point.GetDeletedBlogs)
}

func (r *Repo) list(ctx context.Context, method point.Method) ([]Post, error) {
	resp, err := r.contract.Call(ctx, point.NewBlogCall(method))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	var records []ContractData
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &records); err != nil {
			return nil, fmt.Errorf("%s: decode records: %w", method, err)
		}
	}

	// documents are resolved one after another, in contract order
	posts := make([]Post, 0, len(records))
	for _, record := range records {
		doc, err := r.Document(ctx, record.StorageHash)
		if err != nil {
			return nil, fmt.Errorf("%s: blog %s: %w", method, record.ID, err)
		}
		posts = append(posts, NewPost(record, *doc))
	}

	log.Tracef("%s: %d posts resolved", method, len(posts))
	return posts, nil
}

// Document fetches the blog document stored under the given hash.
func (r *Repo) Document(ctx context.Context, hash string) (*Document, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.document")
	defer span.End()
	span.SetAttributes(attribute.String("hash", hash))

	var doc Document
	if err := r.storage.GetJSON(ctx, hash, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// File fetches a raw storage file, e.g. a cover image.
func (r *Repo) File(ctx context.Context, hash string) (*point.File, error) {
	return r.storage.GetFile(ctx, hash)
}

// UploadFile stores a file, e.g. a cover image, and returns its hash.
func (r *Repo) UploadFile(ctx context.Context, name, contentType string, content io.Reader) (string, error) {
	return r.storage.PostFile(ctx, name, contentType, content)
}

// Create uploads the document and registers it as a new blog.
func (r *Repo) Create(ctx context.Context, doc Document) (string, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.create")
	defer span.End()

	hash, err := r.uploadDocument(ctx, doc)
	if err != nil {
		return "", err
	}
	if _, err := r.contract.Send(ctx, point.NewBlogCall(point.AddBlog, hash)); err != nil {
		return "", fmt.Errorf("add blog: %w", err)
	}
	return hash, nil
}

// Edit uploads the document as a new version of the blog.
// The contract moves the previous hash into the blog history.
func (r *Repo) Edit(ctx context.Context, id string, doc Document) (string, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog.edit")
	defer span.End()
	span.SetAttributes(attribute.String("id", id))

	hash, err := r.uploadDocument(ctx, doc)
	if err != nil {
		return "", err
	}
	if _, err := r.contract.Send(ctx, point.NewBlogCall(point.EditBlog, id, hash)); err != nil {
		return "", fmt.Errorf("edit blog %s: %w", id, err)
	}
	return hash, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.sendForID(ctx, point.DeleteBlog, id)
}

func (r *Repo) Publish(ctx context.Context, id string) error {
	return r.sendForID(ctx, point.Publish, id)
}

func (r *Repo) Unpublish(ctx context.Context, id string) error {
	return r.sendForID(ctx, point.Unpublish, id)
}

func (r *Repo) sendForID(ctx context.Context, method point.Method, id string) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.blog."+string(method))
	defer span.End()
	span.SetAttributes(attribute.String("id", id))

	if _, err := r.contract.Send(ctx, point.NewBlogCall(method, id)); err != nil {
		return fmt.Errorf("%s blog %s: %w", method, id, err)
	}
	return nil
}

func (r *Repo) uploadDocument(ctx context.Context, doc Document) (string, error) {
	if doc.Title == "" || doc.Content == "" {
		return "", ErrTitleOrContentEmpty
	}

	docBytes, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal blog document: %w", err)
	}

	hash, err := r.storage.PostFile(ctx, DocumentFileName, "application/json", bytes.NewReader(docBytes))
	if err != nil {
		return "", fmt.Errorf("upload blog document: %w", err)
	}
	return hash, nil
}
