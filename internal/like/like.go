package like

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pointnetwork/PointBlogSoftware/internal/point"
	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=repo_mocks_test.go -package=like_test

type contractClient interface {
	Call(ctx context.Context, req point.CallRequest) (*point.Response, error)
	Send(ctx context.Context, req point.CallRequest) (*point.Response, error)
}

// Summary is the like state of a post as seen by the visitor.
type Summary struct {
	Count int  `json:"count"`
	Liked bool `json:"liked"`
}

// Summarize counts the likes and checks whether the visitor is among them.
func Summarize(likes []common.Address, visitor common.Address) Summary {
	s := Summary{Count: len(likes)}
	for _, addr := range likes {
		if addr == visitor {
			s.Liked = true
			break
		}
	}
	return s
}

type Repo struct {
	contract contractClient
}

func NewRepo(contract contractClient) *Repo {
	return &Repo{
		contract: contract,
	}
}

// Likes returns the addresses that liked the post.
func (r *Repo) Likes(ctx context.Context, postID string) ([]common.Address, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.like.list")
	defer span.End()
	span.SetAttributes(attribute.String("post.id", postID))

	resp, err := r.contract.Call(ctx, point.NewBlogCall(point.GetLikesForBlogPost, postID))
	if err != nil {
		return nil, fmt.Errorf("get likes for %s: %w", postID, err)
	}

	var raw []string
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &raw); err != nil {
			return nil, fmt.Errorf("get likes for %s: decode: %w", postID, err)
		}
	}

	likes := make([]common.Address, 0, len(raw))
	for _, s := range raw {
		addr, err := point.ParseAddress(s)
		if err != nil {
			log.Warnf("get likes for %s: skipping %s", postID, err)
			continue
		}
		likes = append(likes, addr)
	}
	return likes, nil
}

// Summary fetches the likes of the post and summarizes them for the visitor.
func (r *Repo) Summary(ctx context.Context, postID string, visitor common.Address) (*Summary, error) {
	likes, err := r.Likes(ctx, postID)
	if err != nil {
		return nil, err
	}
	s := Summarize(likes, visitor)
	return &s, nil
}

func (r *Repo) Like(ctx context.Context, postID string) error {
	return r.send(ctx, point.LikeBlogPost, postID)
}

func (r *Repo) Unlike(ctx context.Context, postID string) error {
	return r.send(ctx, point.UnlikeBlogPost, postID)
}

func (r *Repo) send(ctx context.Context, method point.Method, postID string) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.like."+string(method))
	defer span.End()
	span.SetAttributes(attribute.String("post.id", postID))

	if _, err := r.contract.Send(ctx, point.NewBlogCall(method, postID)); err != nil {
		return fmt.Errorf("%s %s: %w", method, postID, err)
	}
	return nil
}
