package logic

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"social_sync/dal"
	"social_sync/shared"
	"strings"
	"time"
)

const facebookKey = "facebook"
const facebookMaxLength = 420
const facebookApiBase = "https://graph.facebook.com"
const facebookTimeoutSec = 10

// Graph API error codes
const (
	fbErrTokenInvalid = 190
	fbErrRateLimited  = 4
	fbErrUserLimited  = 17
)

type facebookAdapter struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
}

func NewFacebookAdapter(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IServiceAdapter {
	return &facebookAdapter{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
	}
}

func (fa *facebookAdapter) Key() string {
	return facebookKey
}

func (fa *facebookAdapter) Title() string {
	return "Facebook"
}

func (fa *facebookAdapter) MaxBroadcastLength() int {
	return facebookMaxLength
}

type facebookError struct {
	Error struct {
		Code    int    `json:"code"`
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (fa *facebookAdapter) do(acct *dal.Account, method, reqUrl string, form url.Values) (int, []byte, error) {

	obs := fa.metrics.StartServiceRequestOut(facebookKey)
	defer obs.Finish()

	var req *http.Request
	var err error
	if method == http.MethodPost {
		form.Set("access_token", acct.AccessToken)
		req, err = http.NewRequest(method, reqUrl, strings.NewReader(form.Encode()))
		if err != nil {
			return 0, nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		glue := "?"
		if strings.Contains(reqUrl, "?") {
			glue = "&"
		}
		req, err = http.NewRequest(method, reqUrl+glue+"access_token="+url.QueryEscape(acct.AccessToken), nil)
		if err != nil {
			return 0, nil, err
		}
	}
	fa.userAgent.AddUserAgent(req)

	client := http.Client{}
	client.Timeout = facebookTimeoutSec * time.Second
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body, nil
}

func (fa *facebookAdapter) Broadcast(acct *dal.Account, text string) DeliveryResult {

	feedUrl := fmt.Sprintf("%s/%s/feed", facebookApiBase, acct.Id)
	code, body, err := fa.do(acct, http.MethodPost, feedUrl, url.Values{"message": {text}})
	if err != nil {
		return DeliveryResult{Failure: FailureNetworkError, Err: err}
	}
	if code != http.StatusOK {
		reason := fa.mapFailure(code, body)
		return DeliveryResult{Failure: reason, Err: fmt.Errorf("feed post failed with status %d: %s", code, body)}
	}

	var result struct {
		Id string `json:"id"`
	}
	if err = json.Unmarshal(body, &result); err != nil {
		return DeliveryResult{Failure: FailureRemoteRejected, Err: err}
	}
	return DeliveryResult{RemoteId: result.Id}
}

func (fa *facebookAdapter) mapFailure(httpStatus int, body []byte) FailureReason {
	var envelope facebookError
	_ = json.Unmarshal(body, &envelope)
	switch envelope.Error.Code {
	case fbErrTokenInvalid:
		return FailureAuthExpired
	case fbErrRateLimited, fbErrUserLimited:
		return FailureRateLimited
	}
	if httpStatus == http.StatusUnauthorized {
		return FailureAuthExpired
	}
	return FailureRemoteRejected
}

// FetchReplies pulls the comment thread of the broadcast post. Without a
// recorded broadcast ID there is nothing to poll on Facebook.
func (fa *facebookAdapter) FetchReplies(acct *dal.Account, ref PostRef) ([]*Reply, error) {

	if ref.RemoteId == "" {
		return nil, nil
	}

	commentsUrl := fmt.Sprintf("%s/%s/comments", facebookApiBase, ref.RemoteId)
	code, body, err := fa.do(acct, http.MethodGet, commentsUrl, nil)
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		if fa.mapFailure(code, body) == FailureAuthExpired {
			return nil, ErrAuthExpired
		}
		return nil, fmt.Errorf("comments fetch failed with status %d", code)
	}

	var result struct {
		Data []struct {
			Id          string `json:"id"`
			Message     string `json:"message"`
			CreatedTime string `json:"created_time"`
			From        struct {
				Id   string `json:"id"`
				Name string `json:"name"`
			} `json:"from"`
		} `json:"data"`
	}
	if err = json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	var res []*Reply
	for _, item := range result.Data {
		createdAt, errTime := time.Parse("2006-01-02T15:04:05-0700", item.CreatedTime)
		if errTime != nil {
			createdAt = time.Now().UTC()
		}
		res = append(res, &Reply{
			RemoteId:  item.Id,
			Author:    item.From.Name,
			AuthorUrl: fmt.Sprintf("https://facebook.com/%s", item.From.Id),
			AvatarUrl: fmt.Sprintf("%s/%s/picture", facebookApiBase, item.From.Id),
			Content:   item.Message,
			ReplyType: "comment",
			CreatedAt: createdAt,
		})
	}
	return res, nil
}

func (fa *facebookAdapter) DisconnectUrl(acct *dal.Account) string {
	return fmt.Sprintf("https://%s/api/accounts/%s/%s", fa.cfg.Host, facebookKey, acct.Id)
}

func (fa *facebookAdapter) Deauthorize(acct *dal.Account) error {
	permsUrl := fmt.Sprintf("%s/%s/permissions", facebookApiBase, acct.Id)
	code, _, err := fa.do(acct, http.MethodPost, permsUrl, url.Values{"method": {"delete"}})
	if err != nil {
		return err
	}
	if code >= 300 {
		fa.logger.Warnf("Facebook permission revocation returned status %d for account %s", code, acct.Id)
	}
	return nil
}

func (fa *facebookAdapter) ShowFullComment(replyType string) bool {
	return true
}

func (fa *facebookAdapter) StatusUrl(author, remoteId string) string {
	return fmt.Sprintf("https://facebook.com/%s", remoteId)
}

func (fa *facebookAdapter) Tokens() map[string]string {
	return nil
}

func (fa *facebookAdapter) TokenValues(post *dal.Post) map[string]string {
	return nil
}
