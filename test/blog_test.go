//go:build integration_test || all_tests

package test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/pointnetwork/PointBlogSoftware/internal/app_state"
	"github.com/pointnetwork/PointBlogSoftware/internal/blog"
	"github.com/pointnetwork/PointBlogSoftware/internal/install"
	"github.com/pointnetwork/PointBlogSoftware/internal/like"
	"github.com/pointnetwork/PointBlogSoftware/internal/point"
	"github.com/pointnetwork/PointBlogSoftware/internal/profile"
	testingpkg "github.com/pointnetwork/PointBlogSoftware/pkg/testing"
)

// a png signature is enough for content detection
var testPNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func getVersion() (string, error) {
	resp, err := http.Get(serverEndpoint + "/version")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("version status %d", resp.StatusCode)
	}
	return string(body), nil
}

// doJSON sends body as json and decodes the response into out when it is not nil.
func (s *IntegrationTestSuite) doJSON(method, path string, body any, out any) int {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, serverEndpoint+path, reqBody)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	if out != nil && resp.StatusCode < 300 {
		s.Require().NoError(json.Unmarshal(respBody, out), string(respBody))
	}
	return resp.StatusCode
}

func (s *IntegrationTestSuite) TestVersion() {
	version, err := getVersion()
	s.Require().NoError(err)
	s.Equal("test-version-info", version)
}

func (s *IntegrationTestSuite) TestIdentities() {
	var ids app_state.Identities
	s.Require().Equal(http.StatusOK, s.doJSON("GET", "/identities", nil, &ids))
	s.Equal(ownerAddress(), ids.Owner)
	s.Equal(ownerAddress(), ids.Visitor)
	s.Equal(testBlogIdentity, ids.OwnerIdentity)

	// the owner identity lookup goes through the redis cache
	ctx, rdb := testingpkg.GetRedisClientAndCtx(s.T(), s.redisPort)
	cached, err := rdb.Get(ctx, point.IdentityCacheKey(ownerAddress())).Result()
	s.Require().NoError(err)
	s.Equal(testBlogIdentity, cached)
}

func (s *IntegrationTestSuite) TestInstall() {
	var status install.StatusResponse
	s.Require().Equal(http.StatusOK, s.doJSON("GET", "/install", nil, &status))
	s.False(status.Created)

	s.Require().Equal(http.StatusCreated, s.doJSON("POST", "/install", nil, &status))
	s.True(status.Created)

	// installing twice is a no-op
	s.Require().Equal(http.StatusOK, s.doJSON("POST", "/install", nil, &status))
	s.True(status.Created)

	s.Require().Equal(http.StatusOK, s.doJSON("GET", "/install", nil, &status))
	s.True(status.Created)
}

func (s *IntegrationTestSuite) TestProfile() {
	avatar := "data:image/png;base64," + base64.StdEncoding.EncodeToString(testPNG)

	var view profile.View
	s.Require().Equal(http.StatusCreated, s.doJSON("POST", "/profile", map[string]string{
		"avatar": avatar,
		"about":  "writing about the decentralized web",
	}, &view))
	s.Equal(avatar, view.Avatar)
	s.Equal("writing about the decentralized web", view.About)
	s.False(view.Submitting)

	// editing without an avatar keeps the current one
	s.Require().Equal(http.StatusOK, s.doJSON("PUT", "/profile", map[string]string{
		"about": "now about go",
	}, &view))
	s.Equal(avatar, view.Avatar)
	s.Equal("now about go", view.About)

	s.Require().Equal(http.StatusOK, s.doJSON("GET", "/profile", nil, &view))
	s.Equal("now about go", view.About)

	var list blog.ListView
	s.Require().Equal(http.StatusOK, s.doJSON("GET", "/blogs", nil, &list))
	s.Require().NotNil(list.Profile)
	s.Equal("now about go", list.Profile.About)

	s.Equal(http.StatusBadRequest, s.doJSON("PUT", "/profile", map[string]string{
		"avatar": "data:text/plain;base64,aGVsbG8=",
		"about":  "x",
	}, nil))
}

func (s *IntegrationTestSuite) TestBlogLifecycle() {
	t := s.T()

	var created blog.PostResponse
	s.Require().Equal(http.StatusCreated, s.doJSON("POST", "/blog", map[string]any{
		"title":   "first post",
		"content": "hello point network",
		"publish": true,
	}, &created))
	post := created.Blog
	require.NotEmpty(t, post.ID)
	s.True(post.IsPublished)
	s.Equal("first post", post.Title)

	var list blog.ListView
	s.Require().Equal(http.StatusOK, s.doJSON("GET", "/blogs", nil, &list))
	s.Require().Len(list.Blogs, 1)
	s.Equal(post.StorageHash, list.Blogs[0].StorageHash)
	s.Equal(testBlogIdentity, list.OwnerIdentity)

	// edit, the previous document becomes an iteration
	var edited blog.PostResponse
	s.Require().Equal(http.StatusOK, s.doJSON("PUT", "/blog/"+post.ID, map[string]any{
		"title":   "first post, revised",
		"content": "hello again",
	}, &edited))
	s.Equal("first post, revised", edited.Blog.Title)
	s.Equal([]string{post.StorageHash}, edited.Blog.PreviousStorageHashes)

	var detail blog.DetailView
	s.Require().Equal(http.StatusOK, s.doJSON("GET", "/blog?id="+edited.Blog.StorageHash, nil, &detail))
	s.True(detail.IsOwner)
	s.Require().Len(detail.Iterations, 2)
	s.True(detail.Iterations[0].Latest)

	var iteration blog.IterationView
	s.Require().Equal(http.StatusOK, s.doJSON("GET",
		"/blog/iteration?id="+edited.Blog.StorageHash+"&iteration="+post.StorageHash, nil, &iteration))
	s.Equal("first post", iteration.Document.Title)

	// likes
	var summary like.Summary
	s.Require().Equal(http.StatusOK, s.doJSON("POST", "/blog/"+post.ID+"/like", nil, &summary))
	s.Equal(like.Summary{Count: 1, Liked: true}, summary)
	s.Require().Equal(http.StatusOK, s.doJSON("POST", "/blog/"+post.ID+"/like", nil, &summary))
	s.Equal(like.Summary{Count: 1, Liked: true}, summary)

	// comments
	var comments struct {
		Comments []struct {
			ID          string `json:"id"`
			CommentedBy string `json:"commentedBy"`
			Comment     string `json:"comment"`
			Identity    string `json:"identity"`
		} `json:"comments"`
	}
	s.Require().Equal(http.StatusCreated, s.doJSON("POST", "/blog/"+post.ID+"/comments",
		map[string]string{"comment": "great read"}, &comments))
	s.Require().Len(comments.Comments, 1)
	s.Equal("great read", comments.Comments[0].Comment)
	s.Equal(ownerAddress(), common.HexToAddress(comments.Comments[0].CommentedBy))
	s.Equal(testBlogIdentity, comments.Comments[0].Identity)

	commentPath := "/blog/" + post.ID + "/comments/" + comments.Comments[0].ID
	s.Require().Equal(http.StatusOK, s.doJSON("PUT", commentPath,
		map[string]string{"comment": "great read, thanks"}, &comments))
	s.Equal("great read, thanks", comments.Comments[0].Comment)

	s.Equal(http.StatusBadRequest, s.doJSON("PUT", commentPath,
		map[string]string{"comment": "   "}, nil))

	s.Require().Equal(http.StatusOK, s.doJSON("DELETE", commentPath, nil, &comments))
	s.Empty(comments.Comments)

	// unpublish moves the post to drafts
	s.Require().Equal(http.StatusOK, s.doJSON("PATCH", "/blog/"+post.ID+"/unpublish", nil, nil))
	s.Require().Equal(http.StatusOK, s.doJSON("GET", "/blogs", nil, &list))
	s.Empty(list.Blogs)

	var admin blog.AdminView
	s.Require().Equal(http.StatusOK, s.doJSON("GET", "/admin?filter=drafts", nil, &admin))
	s.Require().Len(admin.Blogs, 1)
	s.Equal(post.ID, admin.Blogs[0].ID)

	// delete moves it to the trash
	var deleted blog.DeleteResponse
	s.Require().Equal(http.StatusOK, s.doJSON("DELETE", "/blog/"+post.ID, nil, &deleted))
	s.Equal(post.ID, deleted.DeletedID)

	s.Require().Equal(http.StatusOK, s.doJSON("GET", "/admin?filter=drafts", nil, &admin))
	s.Empty(admin.Blogs)
	s.NotEmpty(admin.EmptyMessage)

	s.Require().Equal(http.StatusOK, s.doJSON("GET", "/admin?filter=trash", nil, &admin))
	s.True(admin.Deleted)
	s.Require().Len(admin.Blogs, 1)
	s.Equal(post.ID, admin.Blogs[0].ID)

	s.Require().Equal(http.StatusOK, s.doJSON("GET",
		"/blog?deleted=true&id="+edited.Blog.StorageHash, nil, &detail))
	s.True(detail.Deleted)
	s.Nil(detail.Likes)

	s.Equal(http.StatusNotFound, s.doJSON("GET", "/blog?id=unknown", nil, nil))
}

func (s *IntegrationTestSuite) TestCreateBlogWithCover() {
	body := &bytes.Buffer{}
	boundary := "pointblogboundary"
	parts := []string{
		"--" + boundary,
		`Content-Disposition: form-data; name="title"`,
		"",
		"with cover",
		"--" + boundary,
		`Content-Disposition: form-data; name="content"`,
		"",
		"a picture is worth it",
		"--" + boundary,
		`Content-Disposition: form-data; name="cover_image"; filename="cover.png"`,
		"Content-Type: image/png",
		"",
		string(testPNG),
		"--" + boundary + "--",
		"",
	}
	body.WriteString(strings.Join(parts, "\r\n"))

	req, err := http.NewRequest("POST", serverEndpoint+"/blog", body)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var created blog.PostResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&created))
	s.False(created.Blog.IsPublished)
	s.Require().NotEmpty(created.Blog.CoverImage)

	var detail blog.DetailView
	s.Require().Equal(http.StatusOK, s.doJSON("GET", "/blog?id="+created.Blog.StorageHash, nil, &detail))
	s.Equal(created.Blog.CoverImage, detail.Blog.CoverImage)
	s.NotEmpty(detail.CoverImage)
	s.Empty(detail.Comments)

	// clean up so the lifecycle test sees only its own post
	s.Require().Equal(http.StatusOK, s.doJSON("DELETE", "/blog/"+created.Blog.ID, nil, nil))
}
