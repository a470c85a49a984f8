package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"social_sync/dal"
	"social_sync/dto"
	"social_sync/logic"
	"social_sync/shared"
)

type apiHandlerGroup struct {
	cfg         *shared.Config
	logger      shared.ILogger
	repo        dal.IRepo
	adapters    logic.IAdapterRegistry
	accounts    logic.IAccountRegistry
	broadcaster logic.IBroadcaster
	aggregator  logic.IAggregator
	dispatcher  logic.IDispatcher
	notices     logic.INotices
	metrics     logic.IMetrics
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	adapters logic.IAdapterRegistry,
	accounts logic.IAccountRegistry,
	broadcaster logic.IBroadcaster,
	aggregator logic.IAggregator,
	dispatcher logic.IDispatcher,
	notices logic.INotices,
	metrics logic.IMetrics,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:         cfg,
		logger:      logger,
		repo:        repo,
		adapters:    adapters,
		accounts:    accounts,
		broadcaster: broadcaster,
		aggregator:  aggregator,
		dispatcher:  dispatcher,
		notices:     notices,
		metrics:     metrics,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/posts/{id}/published", func(w http.ResponseWriter, r *http.Request) { hg.postPostPublished(w, r) }},
		{"POST", "/posts/{id}/deleted", func(w http.ResponseWriter, r *http.Request) { hg.postPostDeleted(w, r) }},
		{"POST", "/posts/{id}/aggregate", func(w http.ResponseWriter, r *http.Request) { hg.postPostAggregate(w, r) }},
		{"GET", "/posts/{id}/comments", func(w http.ResponseWriter, r *http.Request) { hg.getPostComments(w, r) }},
		{"GET", "/broadcast-tokens", func(w http.ResponseWriter, r *http.Request) { hg.getBroadcastTokens(w, r) }},
		{"GET", "/accounts/{service}", func(w http.ResponseWriter, r *http.Request) { hg.getAccounts(w, r) }},
		{"POST", "/accounts/{service}", func(w http.ResponseWriter, r *http.Request) { hg.postAccount(w, r) }},
		{"DELETE", "/accounts/{service}/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteAccount(w, r) }},
		{"GET", "/notices", func(w http.ResponseWriter, r *http.Request) { hg.getNotices(w, r) }},
		{"POST", "/notices/{id}/dismiss", func(w http.ResponseWriter, r *http.Request) { hg.postNoticeDismiss(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) getPostId(w http.ResponseWriter, r *http.Request) (int64, bool) {
	postId, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return 0, false
	}
	return postId, true
}

func (hg *apiHandlerGroup) postPostPublished(w http.ResponseWriter, r *http.Request) {
	hg.logger.Infof("Handling post published POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("posts/published")
	defer obs.Finish()

	postId, ok := hg.getPostId(w, r)
	if !ok {
		return
	}
	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var req dto.PublishedPostReq
	if err := json.Unmarshal(bodyBytes, &req); err != nil {
		hg.logger.Warnf("Failed to parse post published request: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	post := &dal.Post{
		Id:          postId,
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		Permalink:   req.Permalink,
		PublishedAt: req.PublishedAt,
		Notify:      req.Notify,
	}
	var chosen []dal.ChosenAccount
	for _, ca := range req.Accounts {
		chosen = append(chosen, dal.ChosenAccount{Service: ca.Service, AccountId: ca.AccountId})
	}
	accepted := hg.dispatcher.Submit("broadcast", func() {
		if err := hg.broadcaster.HandlePostPublished(post, chosen); err != nil {
			hg.logger.Errorf("Failed to handle published post %d: %v", postId, err)
		}
	})
	if !accepted {
		// Nothing persisted yet: the CMS must retry the whole request
		writeErrorResponse(w, serverBusyStr, http.StatusServiceUnavailable)
		return
	}
	writeAcceptedResponse(hg.logger, w)
}

func (hg *apiHandlerGroup) postPostDeleted(w http.ResponseWriter, r *http.Request) {
	hg.logger.Infof("Handling post deleted POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("posts/deleted")
	defer obs.Finish()

	postId, ok := hg.getPostId(w, r)
	if !ok {
		return
	}
	if err := hg.aggregator.HandlePostDeleted(postId); err != nil {
		hg.logger.Errorf("Failed to handle deleted post %d: %v", postId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}

func (hg *apiHandlerGroup) postPostAggregate(w http.ResponseWriter, r *http.Request) {
	hg.logger.Infof("Handling post aggregate POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("posts/aggregate")
	defer obs.Finish()

	postId, ok := hg.getPostId(w, r)
	if !ok {
		return
	}
	post, err := hg.repo.GetPost(postId)
	if err != nil {
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if post == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}
	hg.aggregator.RunForPost(postId)
	writeAcceptedResponse(hg.logger, w)
}

func (hg *apiHandlerGroup) getPostComments(w http.ResponseWriter, r *http.Request) {
	hg.logger.Infof("Handling post comments GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("posts/comments")
	defer obs.Finish()

	postId, ok := hg.getPostId(w, r)
	if !ok {
		return
	}
	comments, err := hg.repo.GetComments(postId)
	if err != nil {
		hg.logger.Errorf("Failed to load comments for post %d: %v", postId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	res := make([]*dto.Comment, 0, len(comments))
	for _, c := range comments {
		item := &dto.Comment{
			Id:          c.Id,
			PostId:      c.PostId,
			Service:     c.Service,
			Author:      c.Author,
			AuthorUrl:   c.AuthorUrl,
			AvatarUrl:   c.AvatarUrl,
			Content:     c.Content,
			ReplyType:   c.ReplyType,
			FullComment: c.FullComment,
			CreatedAt:   c.CreatedAt,
		}
		if adapter := hg.adapters.Get(c.Service); adapter != nil {
			item.StatusUrl = adapter.StatusUrl(c.Author, c.RemoteId)
		}
		res = append(res, item)
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) getBroadcastTokens(w http.ResponseWriter, r *http.Request) {
	hg.logger.Infof("Handling broadcast tokens GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("broadcast-tokens")
	defer obs.Finish()

	writeJsonResponse(hg.logger, w, dto.BroadcastTokens{Tokens: hg.broadcaster.BroadcastTokens()})
}

func (hg *apiHandlerGroup) getAccounts(w http.ResponseWriter, r *http.Request) {
	hg.logger.Infof("Handling accounts GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("accounts/list")
	defer obs.Finish()

	service := mux.Vars(r)["service"]
	accounts, err := hg.accounts.All(service)
	if err != nil {
		hg.handleAccountError(w, service, err)
		return
	}
	adapter := hg.adapters.Get(service)
	res := make([]*dto.Account, 0, len(accounts))
	for _, acct := range accounts {
		res = append(res, &dto.Account{
			Id:            acct.Id,
			Service:       acct.Service,
			UserId:        acct.UserId,
			Name:          acct.Name,
			AvatarUrl:     acct.AvatarUrl,
			Personal:      acct.Personal,
			Deauthed:      acct.Deauthed,
			DisconnectUrl: adapter.DisconnectUrl(acct),
			CreatedAt:     acct.CreatedAt,
		})
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) postAccount(w http.ResponseWriter, r *http.Request) {
	hg.logger.Infof("Handling account POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("accounts/connect")
	defer obs.Finish()

	service := mux.Vars(r)["service"]
	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var req dto.ConnectAccountReq
	if err := json.Unmarshal(bodyBytes, &req); err != nil {
		hg.logger.Warnf("Failed to parse connect account request: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if req.Id == "" || req.AccessToken == "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	acct := &dal.Account{
		Id:           req.Id,
		UserId:       req.UserId,
		Name:         req.Name,
		AvatarUrl:    req.AvatarUrl,
		Personal:     req.Personal,
		AccessToken:  req.AccessToken,
		AccessSecret: req.AccessSecret,
	}
	if err := hg.accounts.Register(service, acct); err != nil {
		hg.handleAccountError(w, service, err)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}

func (hg *apiHandlerGroup) deleteAccount(w http.ResponseWriter, r *http.Request) {
	hg.logger.Infof("Handling account DELETE: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("accounts/disconnect")
	defer obs.Finish()

	service := mux.Vars(r)["service"]
	accountId := mux.Vars(r)["id"]
	if err := hg.accounts.Disconnect(service, accountId); err != nil {
		hg.handleAccountError(w, service, err)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}

func (hg *apiHandlerGroup) handleAccountError(w http.ResponseWriter, service string, err error) {
	if errors.Is(err, logic.ErrUnknownService) {
		hg.logger.Warnf("Request for unknown service: %s", service)
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}
	hg.logger.Errorf("Account operation failed for %s: %v", service, err)
	writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
}

func (hg *apiHandlerGroup) getNotices(w http.ResponseWriter, r *http.Request) {
	hg.logger.Infof("Handling notices GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("notices/list")
	defer obs.Finish()

	notices, err := hg.notices.All()
	if err != nil {
		hg.logger.Errorf("Failed to load notices: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	res := make([]*dto.Notice, 0, len(notices))
	for _, n := range notices {
		res = append(res, &dto.Notice{
			Id:        n.Id,
			Service:   n.Service,
			AccountId: n.AccountId,
			Kind:      n.Kind,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) postNoticeDismiss(w http.ResponseWriter, r *http.Request) {
	hg.logger.Infof("Handling notice dismiss POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("notices/dismiss")
	defer obs.Finish()

	noticeId, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if err = hg.notices.Dismiss(noticeId); err != nil {
		hg.logger.Errorf("Failed to dismiss notice %d: %v", noticeId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}
