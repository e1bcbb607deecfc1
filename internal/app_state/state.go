package app_state

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"

	"github.com/pointnetwork/PointBlogSoftware/internal/blog"
	"github.com/pointnetwork/PointBlogSoftware/internal/profile"
	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=app_state_test

type walletProvider interface {
	Address(ctx context.Context) (common.Address, error)
}

type identityResolver interface {
	IdentityToOwner(ctx context.Context, identity string) (common.Address, error)
	OwnerToIdentity(ctx context.Context, addr common.Address) (string, error)
}

type blogsRepo interface {
	All(ctx context.Context) ([]blog.Post, error)
	Deleted(ctx context.Context) ([]blog.Post, error)
	Document(ctx context.Context, hash string) (*blog.Document, error)
}

type userInfoRepo interface {
	Get(ctx context.Context, owner common.Address) (*profile.UserInfo, error)
}

// Identities are the addresses the service acts with.
type Identities struct {
	Visitor       common.Address `json:"visitor"`
	Owner         common.Address `json:"owner"`
	OwnerIdentity string         `json:"ownerIdentity"`
}

// State is the application data context shared by the views: the blog list, the owner
// profile and who is looking.
type State struct {
	blogIdentity string
	wallet       walletProvider
	identity     identityResolver
	blogs        blogsRepo
	userInfo     userInfoRepo

	initMu      sync.Mutex
	initialized bool
	identities  Identities

	dataMu         sync.Mutex
	posts          []blog.Post
	postsLoaded    bool
	info           *profile.UserInfo
	userInfoLoaded bool
}

func NewState(
	blogIdentity string,
	wallet walletProvider,
	identity identityResolver,
	blogs blogsRepo,
	userInfo userInfoRepo,
) *State {
	return &State{
		blogIdentity: blogIdentity,
		wallet:       wallet,
		identity:     identity,
		blogs:        blogs,
		userInfo:     userInfo,
	}
}

// Init resolves the visitor (the node wallet), the blog owner and the owner identity.
// It only talks to the node until it succeeds once.
func (s *State) Init(ctx context.Context) error {
	_, err := s.Identities(ctx)
	return err
}

func (s *State) Identities(ctx context.Context) (Identities, error) {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.initialized {
		return s.identities, nil
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "appState.init")
	defer span.End()

	visitor, err := s.wallet.Address(ctx)
	if err != nil {
		return Identities{}, fmt.Errorf("resolve visitor address: %w", err)
	}

	owner, err := s.identity.IdentityToOwner(ctx, s.blogIdentity)
	if err != nil {
		return Identities{}, fmt.Errorf("resolve owner of [%s]: %w", s.blogIdentity, err)
	}

	ownerIdentity, err := s.identity.OwnerToIdentity(ctx, owner)
	if err != nil {
		log.Errorf("resolve identity of owner [%s]: %s", owner.Hex(), err)
		ownerIdentity = s.blogIdentity
	}

	s.identities = Identities{
		Visitor:       visitor,
		Owner:         owner,
		OwnerIdentity: ownerIdentity,
	}
	s.initialized = true

	log.Debugf("app state initialized: visitor [%s] owner [%s] identity [%s]",
		visitor.Hex(), owner.Hex(), ownerIdentity)
	return s.identities, nil
}

func (s *State) VisitorAddress(ctx context.Context) (common.Address, error) {
	ids, err := s.Identities(ctx)
	return ids.Visitor, err
}

func (s *State) OwnerAddress(ctx context.Context) (common.Address, error) {
	ids, err := s.Identities(ctx)
	return ids.Owner, err
}

func (s *State) OwnerIdentity(ctx context.Context) (string, error) {
	ids, err := s.Identities(ctx)
	return ids.OwnerIdentity, err
}

// IsOwner reports whether the visitor owns the blog.
func (s *State) IsOwner(ctx context.Context) (bool, error) {
	ids, err := s.Identities(ctx)
	if err != nil {
		return false, err
	}
	return ids.Visitor == ids.Owner, nil
}

// Blogs returns the live blog list, fetching it on first use.
func (s *State) Blogs(ctx context.Context) ([]blog.Post, error) {
	s.dataMu.Lock()
	defer s.dataMu.Unlock()

	if s.postsLoaded {
		return s.posts, nil
	}
	return s.refreshBlogsLocked(ctx)
}

// RefreshBlogs re-fetches the live blog list.
func (s *State) RefreshBlogs(ctx context.Context) ([]blog.Post, error) {
	s.dataMu.Lock()
	defer s.dataMu.Unlock()
	return s.refreshBlogsLocked(ctx)
}

func (s *State) refreshBlogsLocked(ctx context.Context) ([]blog.Post, error) {
	posts, err := s.blogs.All(ctx)
	if err != nil {
		return nil, err
	}
	s.posts = posts
	s.postsLoaded = true
	return posts, nil
}

// DeletedBlogs always fetches the soft deleted blogs fresh.
func (s *State) DeletedBlogs(ctx context.Context) ([]blog.Post, error) {
	return s.blogs.Deleted(ctx)
}

// DataFromStorage fetches a blog document by hash, bypassing the contract.
func (s *State) DataFromStorage(ctx context.Context, hash string) (*blog.Document, error) {
	return s.blogs.Document(ctx, hash)
}

// UserInfo returns the owner profile, fetching it on first use.
func (s *State) UserInfo(ctx context.Context) (*profile.UserInfo, error) {
	owner, err := s.OwnerAddress(ctx)
	if err != nil {
		return nil, err
	}

	s.dataMu.Lock()
	defer s.dataMu.Unlock()

	if s.userInfoLoaded {
		return s.info, nil
	}
	return s.refreshUserInfoLocked(ctx, owner)
}

// RefreshUserInfo re-fetches the owner profile.
func (s *State) RefreshUserInfo(ctx context.Context) (*profile.UserInfo, error) {
	owner, err := s.OwnerAddress(ctx)
	if err != nil {
		return nil, err
	}

	s.dataMu.Lock()
	defer s.dataMu.Unlock()
	return s.refreshUserInfoLocked(ctx, owner)
}

func (s *State) refreshUserInfoLocked(ctx context.Context, owner common.Address) (*profile.UserInfo, error) {
	info, err := s.userInfo.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	s.info = info
	s.userInfoLoaded = true
	return info, nil
}

// Refresh re-fetches the owner profile and then the blog list.
func (s *State) Refresh(ctx context.Context) error {
	if _, err := s.RefreshUserInfo(ctx); err != nil {
		return fmt.Errorf("refresh user info: %w", err)
	}
	if _, err := s.RefreshBlogs(ctx); err != nil {
		return fmt.Errorf("refresh blogs: %w", err)
	}
	return nil
}
