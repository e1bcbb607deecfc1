//go:build integration_test || all_tests

package test

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/pointnetwork/PointBlogSoftware/internal/point"
)

type storedFile struct {
	contentType string
	data        []byte
}

type blogRecord struct {
	id        int
	hash      string
	published bool
	previous  []string
	deleted   bool
}

type commentRecord struct {
	id   int
	by   string
	text string
}

// pointNode is an in memory point node: identities, storage and the blog contracts.
// Every transaction is sent by the node wallet.
type pointNode struct {
	mu sync.Mutex

	wallet   string
	identity string

	files         map[string]storedFile
	blogs         []*blogRecord
	userInfo      map[string]string
	comments      map[int][]commentRecord
	nextCommentID int
	likes         map[int][]string
	blogCreated   bool
}

func newPointNode(wallet, identity string) *pointNode {
	return &pointNode{
		wallet:   wallet,
		identity: identity,
		files:    map[string]storedFile{},
		userInfo: map[string]string{},
		comments: map[int][]commentRecord{},
		likes:    map[int][]string{},
	}
}

func (n *pointNode) router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/v1/api/wallet/address", n.handleWallet).Methods("GET")
	r.HandleFunc("/v1/api/identity/identityToOwner/{identity}", n.handleIdentityToOwner).Methods("GET")
	r.HandleFunc("/v1/api/identity/ownerToIdentity/{owner}", n.handleOwnerToIdentity).Methods("GET")
	r.HandleFunc("/v1/api/contract/{kind:call|send}", n.handleContract).Methods("POST")
	r.HandleFunc("/_storage/", n.handleStoragePost).Methods("POST")
	r.HandleFunc("/_storage/{id}", n.handleStorageGet).Methods("GET")
	return r
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"data": data}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (n *pointNode) handleWallet(w http.ResponseWriter, _ *http.Request) {
	writeData(w, map[string]string{"address": n.wallet})
}

func (n *pointNode) handleIdentityToOwner(w http.ResponseWriter, r *http.Request) {
	if mux.Vars(r)["identity"] != n.identity {
		http.NotFound(w, r)
		return
	}
	writeData(w, map[string]string{"owner": n.wallet})
}

func (n *pointNode) handleOwnerToIdentity(w http.ResponseWriter, r *http.Request) {
	if !strings.EqualFold(mux.Vars(r)["owner"], n.wallet) {
		writeData(w, map[string]string{"identity": ""})
		return
	}
	writeData(w, map[string]string{"identity": n.identity})
}

func (n *pointNode) handleStoragePost(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	n.mu.Lock()
	n.files[hash] = storedFile{
		contentType: header.Header.Get("Content-Type"),
		data:        data,
	}
	n.mu.Unlock()

	writeData(w, hash)
}

func (n *pointNode) handleStorageGet(w http.ResponseWriter, r *http.Request) {
	n.mu.Lock()
	f, ok := n.files[mux.Vars(r)["id"]]
	n.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", f.contentType)
	w.Write(f.data)
}

type contractRequest struct {
	Contract string            `json:"contract"`
	Method   point.Method      `json:"method"`
	Params   []json.RawMessage `json:"params"`
}

func (req contractRequest) stringParam(i int) string {
	if i >= len(req.Params) {
		return ""
	}
	var s string
	if err := json.Unmarshal(req.Params[i], &s); err != nil {
		return strings.Trim(string(req.Params[i]), `"`)
	}
	return s
}

func (req contractRequest) intParam(i int) int {
	v, _ := strconv.Atoi(req.stringParam(i))
	return v
}

func (n *pointNode) handleContract(w http.ResponseWriter, r *http.Request) {
	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	var (
		data any
		err  error
	)
	switch req.Contract {
	case point.BlogFactoryContract:
		data, err = n.factory(req)
	case point.BlogContract:
		data, err = n.blog(req)
	default:
		err = fmt.Errorf("unknown contract %s", req.Contract)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeData(w, data)
}

func (n *pointNode) factory(req contractRequest) (any, error) {
	switch req.Method {
	case point.IsBlogCreated:
		return n.blogCreated, nil
	case point.CreateBlog:
		n.blogCreated = true
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown factory method %s", req.Method)
	}
}

func (n *pointNode) blog(req contractRequest) (any, error) {
	switch req.Method {
	case point.GetAllBlogs:
		return n.blogTuples(false), nil
	case point.GetDeletedBlogs:
		return n.blogTuples(true), nil
	case point.AddBlog:
		n.blogs = append(n.blogs, &blogRecord{
			id:       len(n.blogs) + 1,
			hash:     req.stringParam(0),
			previous: []string{},
		})
		return nil, nil
	case point.EditBlog:
		b, err := n.liveBlog(req.intParam(0))
		if err != nil {
			return nil, err
		}
		b.previous = append([]string{b.hash}, b.previous...)
		b.hash = req.stringParam(1)
		return nil, nil
	case point.DeleteBlog, point.Publish, point.Unpublish:
		b, err := n.liveBlog(req.intParam(0))
		if err != nil {
			return nil, err
		}
		switch req.Method {
		case point.DeleteBlog:
			b.deleted = true
		case point.Publish:
			b.published = true
		default:
			b.published = false
		}
		return nil, nil
	case point.GetUserInfo:
		return n.userInfo[strings.ToLower(req.stringParam(0))], nil
	case point.SaveUserInfo:
		n.userInfo[strings.ToLower(req.stringParam(0))] = req.stringParam(1)
		return nil, nil
	case point.GetCommentsForBlogPost:
		tuples := [][]any{}
		for _, c := range n.comments[req.intParam(0)] {
			tuples = append(tuples, []any{strconv.Itoa(c.id), c.by, c.text})
		}
		return tuples, nil
	case point.AddCommentToBlogPost:
		n.nextCommentID++
		postID := req.intParam(0)
		n.comments[postID] = append(n.comments[postID], commentRecord{
			id:   n.nextCommentID,
			by:   n.wallet,
			text: req.stringParam(1),
		})
		return nil, nil
	case point.EditCommentForBlogPost:
		comments := n.comments[req.intParam(0)]
		for i := range comments {
			if comments[i].id == req.intParam(1) {
				comments[i].text = req.stringParam(2)
			}
		}
		return nil, nil
	case point.DeleteCommentForBlogPost:
		postID := req.intParam(0)
		kept := []commentRecord{}
		for _, c := range n.comments[postID] {
			if c.id != req.intParam(1) {
				kept = append(kept, c)
			}
		}
		n.comments[postID] = kept
		return nil, nil
	case point.GetLikesForBlogPost:
		likes := n.likes[req.intParam(0)]
		if likes == nil {
			likes = []string{}
		}
		return likes, nil
	case point.LikeBlogPost:
		postID := req.intParam(0)
		for _, addr := range n.likes[postID] {
			if addr == n.wallet {
				return nil, nil
			}
		}
		n.likes[postID] = append(n.likes[postID], n.wallet)
		return nil, nil
	case point.UnlikeBlogPost:
		postID := req.intParam(0)
		kept := []string{}
		for _, addr := range n.likes[postID] {
			if addr != n.wallet {
				kept = append(kept, addr)
			}
		}
		n.likes[postID] = kept
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown blog method %s", req.Method)
	}
}

func (n *pointNode) blogTuples(deleted bool) [][]any {
	tuples := [][]any{}
	for _, b := range n.blogs {
		if b.deleted != deleted {
			continue
		}
		tuples = append(tuples, []any{
			map[string]string{"type": "BigNumber", "hex": fmt.Sprintf("0x%x", b.id)},
			b.hash,
			b.published,
			b.previous,
		})
	}
	return tuples
}

func (n *pointNode) liveBlog(id int) (*blogRecord, error) {
	for _, b := range n.blogs {
		if b.id == id && !b.deleted {
			return b, nil
		}
	}
	return nil, fmt.Errorf("blog %d does not exist", id)
}
