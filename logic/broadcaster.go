package logic

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"social_sync/dal"
	"social_sync/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_broadcaster.go -package mocks social_sync/logic IBroadcaster

const broadcastDateFormat = "January 2, 2006"

// IBroadcaster delivers a freshly published post to its chosen accounts.
type IBroadcaster interface {
	HandlePostPublished(post *dal.Post, chosen []dal.ChosenAccount) error
	BroadcastTokens() map[string]string
}

type broadcaster struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	adapters IAdapterRegistry
	accounts IAccountRegistry
	notices  INotices
	queue    IAggQueue
	metrics  IMetrics
}

func NewBroadcaster(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	adapters IAdapterRegistry,
	accounts IAccountRegistry,
	notices INotices,
	queue IAggQueue,
	metrics IMetrics,
) IBroadcaster {
	return &broadcaster{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		adapters: adapters,
		accounts: accounts,
		notices:  notices,
		queue:    queue,
		metrics:  metrics,
	}
}

func stripHtml(htm string) string {
	p := bluemonday.StrictPolicy()
	plain := p.Sanitize(htm)
	plain = html.UnescapeString(plain)
	plain = strings.TrimSpace(plain)
	return plain
}

// HandlePostPublished stores the post, renders per-service content, and
// delivers it to every chosen account that has not received it before.
// Per-account failures never abort the remaining deliveries. Whatever
// happens, the post ends up scheduled for reply polling.
func (b *broadcaster) HandlePostPublished(post *dal.Post, chosen []dal.ChosenAccount) error {

	if err := b.repo.UpsertPost(post); err != nil {
		return err
	}
	if err := b.repo.SetChosenAccounts(post.Id, chosen); err != nil {
		return err
	}

	if !post.Notify {
		b.logger.Infof("Post %d published without notify; skipping broadcast", post.Id)
		b.queue.Add(post.Id, 0)
		b.metrics.AggQueueLength(b.queue.Len())
		return nil
	}

	existing, err := b.repo.GetBroadcastIds(post.Id)
	if err != nil {
		return err
	}

	// No explicit choice means every connected account
	if len(chosen) == 0 {
		all, err := b.repo.GetAllAccounts()
		if err != nil {
			return err
		}
		for _, acct := range all {
			chosen = append(chosen, dal.ChosenAccount{Service: acct.Service, AccountId: acct.Id})
		}
	}

	// Chosen accounts grouped by service, preserving order
	byService := make(map[string][]string)
	var serviceOrder []string
	for _, ca := range chosen {
		if _, ok := byService[ca.Service]; !ok {
			serviceOrder = append(serviceOrder, ca.Service)
		}
		byService[ca.Service] = append(byService[ca.Service], ca.AccountId)
	}

	for _, service := range serviceOrder {
		adapter := b.adapters.Get(service)
		if adapter == nil {
			b.logger.Warnf("Post %d chose unknown service %s; skipping", post.Id, service)
			continue
		}
		text := b.renderText(adapter, post)
		if err = b.repo.SetServiceContent(post.Id, service, text); err != nil {
			b.logger.Errorf("Failed to store %s content for post %d: %v", service, post.Id, err)
		}
		for _, accountId := range byService[service] {
			if remoteIds, ok := existing[service]; ok && remoteIds[accountId] != "" {
				b.logger.Debugf("Post %d already broadcast to %s account %s; skipping", post.Id, service, accountId)
				continue
			}
			b.deliver(adapter, post, accountId, text)
		}
	}

	b.queue.Add(post.Id, 0)
	b.metrics.AggQueueLength(b.queue.Len())
	return nil
}

func (b *broadcaster) deliver(adapter IServiceAdapter, post *dal.Post, accountId string, text string) {

	acct, err := b.repo.GetAccount(adapter.Key(), accountId)
	if err != nil {
		b.logger.Errorf("Failed to load %s account %s: %v", adapter.Key(), accountId, err)
		return
	}
	if acct == nil {
		b.logger.Warnf("Post %d chose missing %s account %s; skipping", post.Id, adapter.Key(), accountId)
		return
	}
	if acct.Deauthed {
		b.logger.Infof("Skipping deauthorized %s account %s", adapter.Key(), acct.Name)
		return
	}

	res := adapter.Broadcast(acct, text)
	if res.Ok() {
		err = b.repo.MergeBroadcastId(post.Id, adapter.Key(), accountId, res.RemoteId)
		if err != nil {
			b.logger.Errorf("Failed to store broadcast id for post %d: %v", post.Id, err)
		}
		b.metrics.BroadcastSent(adapter.Key())
		b.logger.Infof("Broadcast post %d to %s account %s: %s", post.Id, adapter.Key(), acct.Name, res.RemoteId)
		return
	}

	b.metrics.BroadcastFailed(adapter.Key(), string(res.Failure))
	b.logger.Errorf("Failed to broadcast post %d to %s account %s: %s: %v",
		post.Id, adapter.Key(), acct.Name, res.Failure, res.Err)
	if res.Failure == FailureAuthExpired {
		if err = b.accounts.FlagDeauthorized(adapter.Key(), accountId); err != nil {
			b.logger.Errorf("Failed to flag deauthorized account: %v", err)
		}
		return
	}
	b.notices.AddDeliveryFailure(adapter.Key(), acct.Id, post.Id, res.Failure)
}

// renderText fills the broadcast format with the post's values and fits the
// result into the service's length limit.
func (b *broadcaster) renderText(adapter IServiceAdapter, post *dal.Post) string {
	vals := map[string]string{
		"{title}":   stripHtml(post.Title),
		"{content}": stripHtml(post.Content),
		"{author}":  stripHtml(post.Author),
		"{date}":    post.PublishedAt.Format(broadcastDateFormat),
	}
	for token, val := range adapter.TokenValues(post) {
		vals[token] = val
	}
	text := shared.ApplyTokens(b.cfg.BroadcastFormat, vals)
	return shared.BuildBroadcastText(text, post.Permalink, adapter.MaxBroadcastLength())
}

// BroadcastTokens maps every token usable in the broadcast format to a
// human-readable description: the built-in set plus whatever the
// registered services add. Built-ins cannot be overridden.
func (b *broadcaster) BroadcastTokens() map[string]string {
	res := map[string]string{
		"{url}":     "Permalink of the post",
		"{title}":   "Title of the post",
		"{content}": "Content of the post, without markup",
		"{date}":    "Publication date of the post",
		"{author}":  "Display name of the post's author",
	}
	for _, adapter := range b.adapters.All() {
		for token, descr := range adapter.Tokens() {
			if _, ok := res[token]; !ok {
				res[token] = descr
			}
		}
	}
	return res
}
