package dal

import (
	"time"
)

// Account is a connected credential on a social service. UserId 0 means the
// shared/global pool; any other value scopes the account to that CMS user.
type Account struct {
	Service      string // twitter, facebook
	Id           string // account ID on the remote network
	UserId       int64
	Name         string
	AvatarUrl    string
	Personal     bool
	Deauthed     bool
	AccessToken  string
	AccessSecret string
	CreatedAt    time.Time
}

// Post is the core's cached copy of a CMS post; enough to format broadcasts
// and to decide whether the post still exists during aggregation.
type Post struct {
	Id          int64
	Title       string
	Content     string
	Author      string
	Permalink   string
	PublishedAt time.Time
	Notify      bool
}

// ChosenAccount is one author-selected broadcast target for a post.
type ChosenAccount struct {
	Service   string
	AccountId string
}

// Comment is a reply/mention pulled back from a social network and
// materialized against a post.
type Comment struct {
	Id          int64
	PostId      int64
	GuidHash    int64 // murmur3 of service + remote ID; dedupe key
	Service     string
	RemoteId    string
	Author      string
	AuthorUrl   string
	AvatarUrl   string
	Content     string
	ReplyType   string
	FullComment bool
	CreatedAt   time.Time
}

// Notice is a standing operator message; stays until dismissed.
type Notice struct {
	Id        int64
	Service   string
	AccountId string
	Kind      string
	Message   string
	CreatedAt time.Time
}
