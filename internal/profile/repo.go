package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"

	"github.com/pointnetwork/PointBlogSoftware/internal/point"
	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=repo_mocks_test.go -package=profile_test

type contractClient interface {
	Call(ctx context.Context, req point.CallRequest) (*point.Response, error)
	Send(ctx context.Context, req point.CallRequest) (*point.Response, error)
}

type storageClient interface {
	GetJSON(ctx context.Context, id string, v any) error
	PostFile(ctx context.Context, name, contentType string, content io.Reader) (string, error)
}

// Repo keeps the owner profile: the document in storage, its hash in the blog contract.
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

// Get returns the profile of the owner. An owner that never saved one gets an empty profile.
func (r *Repo) Get(ctx context.Context, owner common.Address) (*UserInfo, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer span.End()

	resp, err := r.contract.Call(ctx, point.NewBlogCall(point.GetUserInfo, owner.Hex()))
	if err != nil {
		return nil, fmt.Errorf("get user info: %w", err)
	}

	var hash string
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &hash); err != nil {
			return nil, fmt.Errorf("get user info: decode hash: %w", err)
		}
	}
	if hash == "" {
		log.Debugf("no user info saved yet for [%s]", owner.Hex())
		return &UserInfo{}, nil
	}

	info := &UserInfo{}
	if err := r.storage.GetJSON(ctx, hash, info); err != nil {
		return nil, fmt.Errorf("get user info %s: %w", hash, err)
	}
	return info, nil
}

// Save replaces the whole profile document of the owner and returns its new hash.
func (r *Repo) Save(ctx context.Context, owner common.Address, info UserInfo) (string, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.save")
	defer span.End()

	infoBytes, err := json.Marshal(info)
	if err != nil {
		return "", fmt.Errorf("marshal user info: %w", err)
	}

	hash, err := r.storage.PostFile(ctx, UserInfoFileName, "application/json", bytes.NewReader(infoBytes))
	if err != nil {
		return "", fmt.Errorf("upload user info: %w", err)
	}

	if _, err := r.contract.Send(ctx, point.NewBlogCall(point.SaveUserInfo, owner.Hex(), hash)); err != nil {
		return "", fmt.Errorf("save user info: %w", err)
	}

	log.Debugf("user info for [%s] saved: %s", owner.Hex(), hash)
	return hash, nil
}
