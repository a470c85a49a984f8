package logic

import (
	"errors"
	"social_sync/dal"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_adapter.go -package mocks social_sync/logic IServiceAdapter

// ErrAuthExpired is returned by adapter fetch operations when the remote
// service no longer accepts the account's credentials. The caller reacts by
// flagging the account for re-authorization; the account is never deleted.
var ErrAuthExpired = errors.New("account authorization expired")

type FailureReason string

const (
	FailureNone           FailureReason = ""
	FailureAuthExpired    FailureReason = "auth_expired"
	FailureRateLimited    FailureReason = "rate_limited"
	FailureNetworkError   FailureReason = "network_error"
	FailureRemoteRejected FailureReason = "remote_rejected"
)

// DeliveryResult is the outcome of a single broadcast call. Exactly one of
// RemoteId or Failure is meaningful.
type DeliveryResult struct {
	RemoteId string
	Failure  FailureReason
	Err      error
}

func (dr DeliveryResult) Ok() bool {
	return dr.Failure == FailureNone
}

// Reply is one item pulled back from a social network during aggregation.
type Reply struct {
	RemoteId  string
	Author    string
	AuthorUrl string
	AvatarUrl string
	Content   string
	ReplyType string
	CreatedAt time.Time
}

// PostRef identifies a post to an adapter's fetch operation. RemoteId is the
// account's own broadcast ID for the post on that service; empty if the post
// was never broadcast through this account.
type PostRef struct {
	PostId    int64
	Permalink string
	RemoteId  string
}

// IServiceAdapter is the per-network integration point. One instance per
// service key per process. Adapters perform exactly one network call per
// invocation; retry and backoff policy belongs to callers.
type IServiceAdapter interface {
	Key() string
	Title() string
	MaxBroadcastLength() int
	Broadcast(acct *dal.Account, text string) DeliveryResult
	FetchReplies(acct *dal.Account, ref PostRef) ([]*Reply, error)
	DisconnectUrl(acct *dal.Account) string
	Deauthorize(acct *dal.Account) error
	ShowFullComment(replyType string) bool
	StatusUrl(author, remoteId string) string
	// Tokens returns adapter-registered broadcast format tokens with their
	// descriptions; TokenValues returns their values for a concrete post.
	Tokens() map[string]string
	TokenValues(post *dal.Post) map[string]string
}

// IAdapterRegistry maps service keys to their single adapter instance.
// Populated at startup from the fx adapter group; dispatch is by lookup,
// never by name synthesis.
type IAdapterRegistry interface {
	Get(key string) IServiceAdapter
	All() []IServiceAdapter
}

type adapterRegistry struct {
	byKey   map[string]IServiceAdapter
	ordered []IServiceAdapter
}

func NewAdapterRegistry(adapters []IServiceAdapter) IAdapterRegistry {
	res := adapterRegistry{byKey: make(map[string]IServiceAdapter)}
	for _, ad := range adapters {
		if _, exists := res.byKey[ad.Key()]; exists {
			continue
		}
		res.byKey[ad.Key()] = ad
		res.ordered = append(res.ordered, ad)
	}
	return &res
}

func (reg *adapterRegistry) Get(key string) IServiceAdapter {
	return reg.byKey[key]
}

func (reg *adapterRegistry) All() []IServiceAdapter {
	return reg.ordered
}
