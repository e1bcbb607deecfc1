package point

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
)

const (
	BlogContract        = "Blog"
	BlogFactoryContract = "BlogFactory"
)

type Method string

// Blog contract methods.
const (
	GetAllBlogs              Method = "getAllBlogs"
	GetDeletedBlogs          Method = "getDeletedBlogs"
	AddBlog                  Method = "addBlog"
	EditBlog                 Method = "editBlog"
	DeleteBlog               Method = "deleteBlog"
	Publish                  Method = "publish"
	Unpublish                Method = "unpublish"
	GetUserInfo              Method = "getUserInfo"
	SaveUserInfo             Method = "saveUserInfo"
	GetCommentsForBlogPost   Method = "getCommentsForBlogPost"
	AddCommentToBlogPost     Method = "addCommentToBlogPost"
	EditCommentForBlogPost   Method = "editCommentForBlogPost"
	DeleteCommentForBlogPost Method = "deleteCommentForBlogPost"
	GetLikesForBlogPost      Method = "getLikesForBlogPost"
	LikeBlogPost             Method = "likeBlogPost"
	UnlikeBlogPost           Method = "unlikeBlogPost"
)

// BlogFactory contract methods.
const (
	CreateBlog    Method = "createBlog"
	IsBlogCreated Method = "isBlogCreated"
)

type CallRequest struct {
	Contract string `json:"contract"`
	Method   Method `json:"method"`
	Params   []any  `json:"params"`
}

func NewBlogCall(method Method, params ...any) CallRequest {
	if params == nil {
		params = []any{}
	}
	return CallRequest{
		Contract: BlogContract,
		Method:   method,
		Params:   params,
	}
}

func NewBlogFactoryCall(method Method, params ...any) CallRequest {
	if params == nil {
		params = []any{}
	}
	return CallRequest{
		Contract: BlogFactoryContract,
		Method:   method,
		Params:   params,
	}
}

type Response struct {
	Data json.RawMessage
}

func (r *Response) Decode(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("decode contract response: %w", ErrNotFound)
	}
	return json.Unmarshal(r.Data, v)
}

// ContractClient wraps the call and send endpoints of the node contract API.
type ContractClient struct {
	client *Client
}

func NewContractClient(client *Client) *ContractClient {
	return &ContractClient{
		client: client,
	}
}

// Call is a read-only contract query.
func (c *ContractClient) Call(ctx context.Context, req CallRequest) (*Response, error) {
	return c.invoke(ctx, "call", req)
}

// Send is a state mutating contract call. It returns once the node has processed it.
func (c *ContractClient) Send(ctx context.Context, req CallRequest) (*Response, error) {
	return c.invoke(ctx, "send", req)
}

func (c *ContractClient) invoke(ctx context.Context, kind string, req CallRequest) (_ *Response, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "point.contract."+kind)
	span.SetAttributes(
		attribute.String("contract", req.Contract),
		attribute.String("method", string(req.Method)),
	)
	defer func() {
		c.client.metricsManager.CounterContractCalls.WithLabelValues(kind, string(req.Method), statusLabel(err)).Inc()
		tracing.EndWithError(span, err)
	}()

	if req.Params == nil {
		req.Params = []any{}
	}

	op := fmt.Sprintf("contract %s %s.%s", kind, req.Contract, req.Method)
	data, err := c.client.postJSON(ctx, op, "/v1/api/contract/"+kind, req)
	if err != nil {
		log.Errorf("%s failed: %s", op, err)
		return nil, err
	}

	log.Tracef("%s: %d bytes of data", op, len(data))
	return &Response{Data: data}, nil
}
