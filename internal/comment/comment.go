package comment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/pointnetwork/PointBlogSoftware/internal/point"
)

var (
	ErrCommentEmpty    = errors.New("comment text empty")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotAuthor       = errors.New("only the comment author can change it")
)

// Comment is a blog post comment. The contract returns it as the tuple [id, commentedBy, comment],
// further tuple fields are ignored. Identity is resolved from the author's address.
type Comment struct {
	ID          string         `json:"id"`
	CommentedBy common.Address `json:"commentedBy"`
	Text        string         `json:"comment"`
	Identity    string         `json:"identity"`
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("unmarshal comment tuple: %w", err)
	}
	if len(tuple) < 3 {
		return fmt.Errorf("unmarshal comment tuple: expected 3 fields, got %d", len(tuple))
	}

	id, err := point.DecodeID(tuple[0])
	if err != nil {
		return err
	}

	var commentedBy string
	if err := json.Unmarshal(tuple[1], &commentedBy); err != nil {
		return fmt.Errorf("unmarshal comment author: %w", err)
	}
	addr, err := point.ParseAddress(commentedBy)
	if err != nil {
		return err
	}

	var text string
	if err := json.Unmarshal(tuple[2], &text); err != nil {
		return fmt.Errorf("unmarshal comment text: %w", err)
	}

	c.ID = id
	c.CommentedBy = addr
	c.Text = text
	return nil
}

// MarshalJSON writes the comment as an object, so the custom tuple decoding is not symmetric.
func (c Comment) MarshalJSON() ([]byte, error) {
	type commentView struct {
		ID          string `json:"id"`
		CommentedBy string `json:"commentedBy"`
		Text        string `json:"comment"`
		Identity    string `json:"identity"`
	}
	return json.Marshal(commentView{
		ID:          c.ID,
		CommentedBy: c.CommentedBy.Hex(),
		Text:        c.Text,
		Identity:    c.Identity,
	})
}

// Reversed returns the comments newest first. The contract lists them oldest first.
func Reversed(comments []Comment) []Comment {
	reversed := make([]Comment, len(comments))
	for i, c := range comments {
		reversed[len(comments)-1-i] = c
	}
	return reversed
}

func Find(comments []Comment, id string) (Comment, bool) {
	for _, c := range comments {
		if c.ID == id {
			return c, true
		}
	}
	return Comment{}, false
}

func validateText(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrCommentEmpty
	}
	return text, nil
}
