package profile

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"

	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/metrics"
	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=profile_test

type userInfoSaver interface {
	Save(ctx context.Context, owner common.Address, info UserInfo) (string, error)
}

type profileState interface {
	OwnerAddress(ctx context.Context) (common.Address, error)
	UserInfo(ctx context.Context) (*UserInfo, error)
	Refresh(ctx context.Context) error
}

type Submission struct {
	Avatar string
	About  string
}

// Service submits owner profiles. Only one submission runs at a time.
type Service struct {
	saver          userInfoSaver
	state          profileState
	metricsManager *metrics.Manager

	mu         sync.Mutex
	submitting bool
}

func NewService(saver userInfoSaver, state profileState, metricsManager *metrics.Manager) *Service {
	return &Service{
		saver:          saver,
		state:          state,
		metricsManager: metricsManager,
	}
}

func (s *Service) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// Submit stores the profile and re-fetches the user info and the blog list.
func (s *Service) Submit(ctx context.Context, sub Submission) (_ *UserInfo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profile.submit")
	defer func() {
		s.count(err)
		tracing.EndWithError(span, err)
	}()

	info := UserInfo{
		Avatar: sub.Avatar,
		About:  TruncateAbout(sub.About),
	}
	if !info.Complete() {
		return nil, ErrProfileIncomplete
	}

	if !s.begin() {
		return nil, ErrSubmissionInFlight
	}
	defer s.end()

	owner, err := s.state.OwnerAddress(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve owner: %w", err)
	}

	if _, err := s.saver.Save(ctx, owner, info); err != nil {
		return nil, err
	}

	if err := s.state.Refresh(ctx); err != nil {
		log.Errorf("refresh after profile submit: %s", err)
		return &info, nil
	}

	return s.state.UserInfo(ctx)
}

func (s *Service) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

func (s *Service) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

func (s *Service) count(err error) {
	if s.metricsManager == nil {
		return
	}
	status := "ok"
	switch {
	case err == ErrProfileIncomplete:
		status = "incomplete"
	case err == ErrSubmissionInFlight:
		status = "in_flight"
	case err != nil:
		status = "error"
	}
	s.metricsManager.CounterProfileSubmissions.WithLabelValues(status).Inc()
}
