package point

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
)

// ParseAddress validates a hex encoded account address.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: [%s]", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// IdentityCacheKey is the redis key of the identity cached for the given address.
func IdentityCacheKey(addr common.Address) string {
	return fmt.Sprintf("identity::%s", strings.ToLower(addr.Hex()))
}

// Identity resolves point identities to owner addresses and back.
type Identity struct {
	client      *Client
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIdentity(client *Client, redisClient *redis.Client, cacheTTL time.Duration) *Identity {
	return &Identity{
		client:      client,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func (i *Identity) IdentityToOwner(ctx context.Context, identity string) (_ common.Address, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "point.identity.identityToOwner")
	span.SetAttributes(attribute.String("identity", identity))
	defer func() {
		tracing.EndWithError(span, err)
	}()

	if identity == "" {
		return common.Address{}, errors.New("identity to owner: empty identity")
	}

	data, err := i.client.getData(ctx, "identity to owner", "/v1/api/identity/identityToOwner/"+url.PathEscape(identity))
	if err != nil {
		return common.Address{}, err
	}

	var resp struct {
		Owner string `json:"owner"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return common.Address{}, fmt.Errorf("identity to owner: unmarshal: %w", err)
	}

	return ParseAddress(resp.Owner)
}

// OwnerToIdentity returns the display identity of the address. Results are cached in redis;
// a cache failure is logged and the node is asked directly.
func (i *Identity) OwnerToIdentity(ctx context.Context, addr common.Address) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "point.identity.ownerToIdentity")
	span.SetAttributes(attribute.String("address", addr.Hex()))
	defer func() {
		tracing.EndWithError(span, err)
	}()

	cacheKey := IdentityCacheKey(addr)
	if i.redisClient != nil {
		cached, err := i.redisClient.Get(ctx, cacheKey).Result()
		switch {
		case err == nil && cached != "":
			span.SetAttributes(attribute.Bool("from-cache", true))
			i.client.metricsManager.CounterIdentityCache.WithLabelValues("hit").Inc()
			return cached, nil
		case errors.Is(err, redis.Nil):
			log.Tracef("identity for [%s] not cached", addr.Hex())
		case err != nil:
			log.Errorf("failed to get identity from redis for [%s]: %s", cacheKey, err)
		}
		i.client.metricsManager.CounterIdentityCache.WithLabelValues("miss").Inc()
	}

	data, err := i.client.getData(ctx, "owner to identity", "/v1/api/identity/ownerToIdentity/"+addr.Hex())
	if err != nil {
		return "", err
	}

	var resp struct {
		Identity string `json:"identity"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("owner to identity: unmarshal: %w", err)
	}

	if i.redisClient != nil && resp.Identity != "" {
		if err := i.redisClient.Set(ctx, cacheKey, resp.Identity, i.cacheTTL).Err(); err != nil {
			log.Errorf("failed to cache identity in redis for [%s]: %s", cacheKey, err)
		}
	}

	return resp.Identity, nil
}
