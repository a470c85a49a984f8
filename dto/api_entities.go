package dto

import "time"

type PublishedPostReq struct {
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Author      string          `json:"author"`
	Permalink   string          `json:"permalink"`
	PublishedAt time.Time       `json:"published_at"`
	Notify      bool            `json:"notify"`
	Accounts    []ChosenAccount `json:"accounts"`
}

type ChosenAccount struct {
	Service   string `json:"service"`
	AccountId string `json:"account_id"`
}

type ConnectAccountReq struct {
	Id           string `json:"id"`
	UserId       int64  `json:"user_id"`
	Name         string `json:"name"`
	AvatarUrl    string `json:"avatar_url"`
	Personal     bool   `json:"personal"`
	AccessToken  string `json:"access_token"`
	AccessSecret string `json:"access_secret"`
}

type Account struct {
	Id            string    `json:"id"`
	Service       string    `json:"service"`
	UserId        int64     `json:"user_id"`
	Name          string    `json:"name"`
	AvatarUrl     string    `json:"avatar_url"`
	Personal      bool      `json:"personal"`
	Deauthed      bool      `json:"deauthed"`
	DisconnectUrl string    `json:"disconnect_url"`
	CreatedAt     time.Time `json:"created_at"`
}

type Comment struct {
	Id          int64     `json:"id"`
	PostId      int64     `json:"post_id"`
	Service     string    `json:"service"`
	Author      string    `json:"author"`
	AuthorUrl   string    `json:"author_url"`
	AvatarUrl   string    `json:"avatar_url"`
	Content     string    `json:"content"`
	ReplyType   string    `json:"reply_type"`
	FullComment bool      `json:"full_comment"`
	StatusUrl   string    `json:"status_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type Notice struct {
	Id        int64     `json:"id"`
	Service   string    `json:"service"`
	AccountId string    `json:"account_id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// BroadcastTokens maps each format token to its human-readable description.
type BroadcastTokens struct {
	Tokens map[string]string `json:"tokens"`
}
