package comment

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

//go:generate mockgen -source=$GOFILE -destination=repo_mocks_test.go -package=comment_test

type contractClient interface {
	Call(ctx context.Context, req point.CallRequest) (*point.Response, error)
	Send(ctx context.Context, req point.CallRequest) (*point.Response, error)
}

type identityResolver interface {
	OwnerToIdentity(ctx context.Context, addr common.Address) (string, error)
}

type Repo struct {
	contract contractClient
	identity identityResolver
}

func NewRepo(contract contractClient, identity identityResolver) *Repo {
	return &Repo{
		contract: contract,
		identity: identity,
	}
}

// List returns the comments of the post newest first, with author identities resolved.
func (r *Repo) List(ctx context.Context, postID string) ([]Comment, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.comment.list")
	defer span.End()
	span.SetAttributes(attribute.String("post.id", postID))

	resp, err := r.contract.Call(ctx, point.NewBlogCall(point.GetCommentsForBlogPost, postID))
	if err != nil {
		return nil, fmt.Errorf("get comments for %s: %w", postID, err)
	}

	comments := []Comment{}
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &comments); err != nil {
			return nil, fmt.Errorf("get comments for %s: decode: %w", postID, err)
		}
	}
	if comments == nil {
		comments = []Comment{}
	}

	for i := range comments {
		identity, err := r.identity.OwnerToIdentity(ctx, comments[i].CommentedBy)
		if err != nil || identity == "" {
			log.Debugf("no identity for comment author [%s]: %v", comments[i].CommentedBy.Hex(), err)
			identity = comments[i].CommentedBy.Hex()
		}
		comments[i].Identity = identity
	}

	return Reversed(comments), nil
}

func (r *Repo) Add(ctx context.Context, postID, text string) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.comment.add")
	defer span.End()

	text, err := validateText(text)
	if err != nil {
		return err
	}
	if _, err := r.contract.Send(ctx, point.NewBlogCall(point.AddCommentToBlogPost, postID, text)); err != nil {
		return fmt.Errorf("add comment to %s: %w", postID, err)
	}
	return nil
}

func (r *Repo) Edit(ctx context.Context, postID, commentID, text string) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.comment.edit")
	defer span.End()

	text, err := validateText(text)
	if err != nil {
		return err
	}
	if _, err := r.contract.Send(ctx, point.NewBlogCall(point.EditCommentForBlogPost, postID, commentID, text)); err != nil {
		return fmt.Errorf("edit comment %s of %s: %w", commentID, postID, err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, postID, commentID string) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.comment.delete")
	defer span.End()

	if _, err := r.contract.Send(ctx, point.NewBlogCall(point.DeleteCommentForBlogPost, postID, commentID)); err != nil {
		return fmt.Errorf("delete comment %s of %s: %w", commentID, postID, err)
	}
	return nil
}
