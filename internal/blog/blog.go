package blog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pointnetwork/PointBlogSoftware/internal/point"
)

// NotFoundMessage is shown when a requested post is gone from the contract.
const NotFoundMessage = "This blog post does not exist anymore."

var (
	ErrBlogNotFound        = errors.New("blog not found")
	ErrTitleOrContentEmpty = errors.New("blog title or content empty")
)

// Document is the blog content kept in point storage.
type Document struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	CoverImage  string `json:"coverImage,omitempty"`
	PublishDate string `json:"publishDate"`
}

// ContractData is the blog record kept by the blog contract. The contract returns it either
// as an object or as the tuple [id, storageHash, isPublished, previousStorageHashes].
type ContractData struct {
	ID                    string   `json:"id"`
	StorageHash           string   `json:"storageHash"`
	IsPublished           bool     `json:"isPublished"`
	PreviousStorageHashes []string `json:"previousStorageHashes"`
}

func (cd *ContractData) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var tuple []json.RawMessage
		if err := json.Unmarshal(data, &tuple); err != nil {
			return fmt.Errorf("unmarshal blog tuple: %w", err)
		}
		if len(tuple) < 3 {
			return fmt.Errorf("unmarshal blog tuple: expected at least 3 fields, got %d", len(tuple))
		}
		return cd.fromRaw(tuple[0], tuple[1], tuple[2], field(tuple, 3))
	}

	var obj struct {
		ID                    json.RawMessage `json:"id"`
		StorageHash           json.RawMessage `json:"storageHash"`
		IsPublished           json.RawMessage `json:"isPublished"`
		PreviousStorageHashes json.RawMessage `json:"previousStorageHashes"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("unmarshal blog object: %w", err)
	}
	return cd.fromRaw(obj.ID, obj.StorageHash, obj.IsPublished, obj.PreviousStorageHashes)
}

func (cd *ContractData) fromRaw(id, storageHash, isPublished, previous json.RawMessage) error {
	var err error
	if cd.ID, err = point.DecodeID(id); err != nil {
		return err
	}
	if err := json.Unmarshal(storageHash, &cd.StorageHash); err != nil {
		return fmt.Errorf("unmarshal storage hash: %w", err)
	}
	if len(isPublished) > 0 {
		if err := json.Unmarshal(isPublished, &cd.IsPublished); err != nil {
			return fmt.Errorf("unmarshal published flag: %w", err)
		}
	}
	cd.PreviousStorageHashes = []string{}
	if len(previous) > 0 && !bytes.Equal(previous, []byte("null")) {
		if err := json.Unmarshal(previous, &cd.PreviousStorageHashes); err != nil {
			return fmt.Errorf("unmarshal previous storage hashes: %w", err)
		}
	}
	return nil
}

func field(tuple []json.RawMessage, i int) json.RawMessage {
	if i < len(tuple) {
		return tuple[i]
	}
	return nil
}

// Post is a blog contract record joined with its current document.
type Post struct {
	ID                    string   `json:"id"`
	StorageHash           string   `json:"storageHash"`
	IsPublished           bool     `json:"isPublished"`
	PreviousStorageHashes []string `json:"previousStorageHashes"`
	Title                 string   `json:"title"`
	Content               string   `json:"content"`
	CoverImage            string   `json:"coverImage,omitempty"`
	PublishDate           string   `json:"publishDate"`
}

func NewPost(cd ContractData, doc Document) Post {
	previous := cd.PreviousStorageHashes
	if previous == nil {
		previous = []string{}
	}
	return Post{
		ID:                    cd.ID,
		StorageHash:           cd.StorageHash,
		IsPublished:           cd.IsPublished,
		PreviousStorageHashes: previous,
		Title:                 doc.Title,
		Content:               doc.Content,
		CoverImage:            doc.CoverImage,
		PublishDate:           doc.PublishDate,
	}
}

func (p Post) Document() Document {
	return Document{
		Title:       p.Title,
		Content:     p.Content,
		CoverImage:  p.CoverImage,
		PublishDate: p.PublishDate,
	}
}

func FindByStorageHash(posts []Post, hash string) (Post, bool) {
	for _, p := range posts {
		if p.StorageHash == hash {
			return p, true
		}
	}
	return Post{}, false
}

func FindByID(posts []Post, id string) (Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}

// Iteration is one version of a post. Labels count up from 1 for the first version.
type Iteration struct {
	Label  int    `json:"label"`
	Hash   string `json:"hash"`
	Latest bool   `json:"latest"`
}

// Iterations lists the versions of the post, latest first. The latest version is labelled
// len(previous)+1 and previous[i] is labelled len(previous)-i.
func Iterations(p Post) []Iteration {
	n := len(p.PreviousStorageHashes)
	iterations := make([]Iteration, 0, n+1)
	iterations = append(iterations, Iteration{
		Label:  n + 1,
		Hash:   p.StorageHash,
		Latest: true,
	})
	for i, hash := range p.PreviousStorageHashes {
		iterations = append(iterations, Iteration{
			Label: n - i,
			Hash:  hash,
		})
	}
	return iterations
}

// FindIteration returns the version of the post stored under hash.
func FindIteration(p Post, hash string) (Iteration, bool) {
	for _, it := range Iterations(p) {
		if it.Hash == hash {
			return it, true
		}
	}
	return Iteration{}, false
}
