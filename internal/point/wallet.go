package point

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
)

// Wallet exposes the account of the node the service runs against.
type Wallet struct {
	client *Client
}

func NewWallet(client *Client) *Wallet {
	return &Wallet{
		client: client,
	}
}

func (w *Wallet) Address(ctx context.Context) (_ common.Address, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "point.wallet.address")
	defer func() {
		tracing.EndWithError(span, err)
	}()

	data, err := w.client.getData(ctx, "wallet address", "/v1/api/wallet/address")
	if err != nil {
		return common.Address{}, err
	}

	var resp struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return common.Address{}, fmt.Errorf("wallet address: unmarshal: %w", err)
	}

	return ParseAddress(resp.Address)
}
