package logic

import (
	"encoding/json"
	"fmt"
	"github.com/dghubble/oauth1"
	"io"
	"net/http"
	"net/url"
	"social_sync/dal"
	"social_sync/shared"
	"time"
)

const twitterKey = "twitter"
const twitterMaxLength = 140
const twitterApiBase = "https://api.twitter.com/1.1"
const twitterTimeoutSec = 10

// Error codes the Twitter API returns in its JSON error envelope.
const (
	twitterErrCouldNotAuth = 32
	twitterErrRateLimited  = 88
	twitterErrTokenInvalid = 89
)

type twitterAdapter struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	oaConfig  *oauth1.Config
}

func NewTwitterAdapter(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IServiceAdapter {
	return &twitterAdapter{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
		oaConfig:  oauth1.NewConfig(cfg.Secrets.TwitterConsumerKey, cfg.Secrets.TwitterConsumerSecret),
	}
}

func (ta *twitterAdapter) Key() string {
	return twitterKey
}

func (ta *twitterAdapter) Title() string {
	return "Twitter"
}

func (ta *twitterAdapter) MaxBroadcastLength() int {
	return twitterMaxLength
}

func (ta *twitterAdapter) client(acct *dal.Account) *http.Client {
	token := oauth1.NewToken(acct.AccessToken, acct.AccessSecret)
	client := ta.oaConfig.Client(oauth1.NoContext, token)
	client.Timeout = twitterTimeoutSec * time.Second
	return client
}

type twitterErrorEnvelope struct {
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

type twitterStatus struct {
	IdStr     string `json:"id_str"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	InReplyTo string `json:"in_reply_to_status_id_str"`
	User      struct {
		ScreenName string `json:"screen_name"`
		Name       string `json:"name"`
		AvatarUrl  string `json:"profile_image_url_https"`
	} `json:"user"`
}

func (ta *twitterAdapter) Broadcast(acct *dal.Account, text string) DeliveryResult {

	obs := ta.metrics.StartServiceRequestOut(twitterKey)
	defer obs.Finish()

	resp, err := ta.client(acct).PostForm(twitterApiBase+"/statuses/update.json",
		url.Values{"status": {text}})
	if err != nil {
		return DeliveryResult{Failure: FailureNetworkError, Err: err}
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		reason := ta.mapFailure(resp.StatusCode, body)
		return DeliveryResult{Failure: reason, Err: fmt.Errorf("status update failed with status %d: %s", resp.StatusCode, body)}
	}

	var status twitterStatus
	if err = json.Unmarshal(body, &status); err != nil {
		return DeliveryResult{Failure: FailureRemoteRejected, Err: err}
	}
	return DeliveryResult{RemoteId: status.IdStr}
}

func (ta *twitterAdapter) mapFailure(httpStatus int, body []byte) FailureReason {
	var envelope twitterErrorEnvelope
	_ = json.Unmarshal(body, &envelope)
	for _, e := range envelope.Errors {
		switch e.Code {
		case twitterErrCouldNotAuth, twitterErrTokenInvalid:
			return FailureAuthExpired
		case twitterErrRateLimited:
			return FailureRateLimited
		}
	}
	switch httpStatus {
	case http.StatusUnauthorized:
		return FailureAuthExpired
	case http.StatusTooManyRequests:
		return FailureRateLimited
	}
	return FailureRemoteRejected
}

// FetchReplies searches for tweets linking to the post's permalink: one poll
// per call, no paging. Items that reply to the broadcast status count as
// replies; anything else is a mention.
func (ta *twitterAdapter) FetchReplies(acct *dal.Account, ref PostRef) ([]*Reply, error) {

	obs := ta.metrics.StartServiceRequestOut(twitterKey)
	defer obs.Finish()

	searchUrl := fmt.Sprintf("%s/search/tweets.json?count=100&q=%s",
		twitterApiBase, url.QueryEscape(ref.Permalink))
	resp, err := ta.client(acct).Get(searchUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		if ta.mapFailure(resp.StatusCode, body) == FailureAuthExpired {
			return nil, ErrAuthExpired
		}
		return nil, fmt.Errorf("tweet search failed with status %d", resp.StatusCode)
	}

	var result struct {
		Statuses []twitterStatus `json:"statuses"`
	}
	if err = json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	var res []*Reply
	for _, status := range result.Statuses {
		if status.IdStr == ref.RemoteId {
			continue // our own broadcast
		}
		replyType := "mention"
		if status.InReplyTo != "" && status.InReplyTo == ref.RemoteId {
			replyType = "reply"
		}
		createdAt, errTime := time.Parse(time.RubyDate, status.CreatedAt)
		if errTime != nil {
			createdAt = time.Now().UTC()
		}
		res = append(res, &Reply{
			RemoteId:  status.IdStr,
			Author:    status.User.ScreenName,
			AuthorUrl: fmt.Sprintf("https://twitter.com/%s", status.User.ScreenName),
			AvatarUrl: status.User.AvatarUrl,
			Content:   status.Text,
			ReplyType: replyType,
			CreatedAt: createdAt,
		})
	}
	return res, nil
}

func (ta *twitterAdapter) DisconnectUrl(acct *dal.Account) string {
	return fmt.Sprintf("https://%s/api/accounts/%s/%s", ta.cfg.Host, twitterKey, acct.Id)
}

func (ta *twitterAdapter) Deauthorize(acct *dal.Account) error {

	obs := ta.metrics.StartServiceRequestOut(twitterKey)
	defer obs.Finish()

	resp, err := ta.client(acct).PostForm(twitterApiBase+"/oauth/invalidate_token", url.Values{})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		// Token may already be dead remotely; local flagging proceeds anyway
		ta.logger.Warnf("Twitter token invalidation returned status %d for account %s", resp.StatusCode, acct.Id)
	}
	return nil
}

func (ta *twitterAdapter) ShowFullComment(replyType string) bool {
	return replyType == "reply"
}

func (ta *twitterAdapter) StatusUrl(author, remoteId string) string {
	return fmt.Sprintf("https://twitter.com/%s/status/%s", author, remoteId)
}

func (ta *twitterAdapter) Tokens() map[string]string {
	return nil
}

func (ta *twitterAdapter) TokenValues(post *dal.Post) map[string]string {
	return nil
}
