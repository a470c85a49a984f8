package logic

import (
	"errors"
	"time"

	"github.com/spaolacci/murmur3"
	"social_sync/dal"
	"social_sync/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_aggregator.go -package mocks social_sync/logic IAggregator

// IAggregator pulls replies to broadcast posts back in as comments.
type IAggregator interface {
	RunTick()
	RunForPost(postId int64)
	HandlePostDeleted(postId int64) error
}

type aggregator struct {
	cfg        *shared.Config
	logger     shared.ILogger
	repo       dal.IRepo
	adapters   IAdapterRegistry
	accounts   IAccountRegistry
	queue      IAggQueue
	dispatcher IDispatcher
	metrics    IMetrics
}

func NewAggregator(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	adapters IAdapterRegistry,
	accounts IAccountRegistry,
	queue IAggQueue,
	dispatcher IDispatcher,
	metrics IMetrics,
) IAggregator {

	agg := aggregator{
		cfg:        cfg,
		logger:     logger,
		repo:       repo,
		adapters:   adapters,
		accounts:   accounts,
		queue:      queue,
		dispatcher: dispatcher,
		metrics:    metrics,
	}

	// The built-in ticker is off when an external scheduler drives ticks
	// through the cron endpoint.
	if cfg.Aggregation.TickSeconds > 0 && !cfg.ExternalCron {
		go agg.tickLoop()
	}

	return &agg
}

func (agg *aggregator) tickLoop() {
	for {
		agg.tickLoopInner()
		time.Sleep(time.Duration(agg.cfg.Aggregation.TickSeconds) * time.Second)
	}
}

func (agg *aggregator) tickLoopInner() {

	defer func() {
		if r := recover(); r != nil {
			agg.logger.Errorf("Aggregation tick panicked: %v", r)
		}
	}()

	agg.RunTick()
}

// RunTick drains every due bucket: each scheduled post is rescheduled at
// double its interval (up to the ceiling) and a polling job is dispatched
// for it. Posts that no longer exist fall out of the queue here.
func (agg *aggregator) RunTick() {

	for _, bucket := range agg.queue.Runnable() {
		for postId, intervalSec := range bucket.Entries {
			post, err := agg.repo.GetPost(postId)
			if err != nil {
				agg.logger.Errorf("Failed to load post %d; leaving it scheduled: %v", postId, err)
				continue
			}
			if post == nil {
				agg.logger.Infof("Post %d is gone; dropping from polling queue", postId)
				agg.queue.RemoveFromBucket(postId, bucket.Timestamp)
				continue
			}
			agg.queue.Add(postId, intervalSec*2)
			id := postId
			agg.dispatcher.Submit("aggregate", func() { agg.pollPost(id) })
		}
	}
	agg.metrics.AggQueueLength(agg.queue.Len())
}

// RunForPost polls a single post right away and resets its polling
// interval to the initial value.
func (agg *aggregator) RunForPost(postId int64) {
	agg.queue.Add(postId, 0)
	agg.metrics.AggQueueLength(agg.queue.Len())
	agg.dispatcher.Submit("aggregate", func() { agg.pollPost(postId) })
}

func (agg *aggregator) HandlePostDeleted(postId int64) error {
	agg.queue.Remove(postId)
	agg.metrics.AggQueueLength(agg.queue.Len())
	return agg.repo.DeletePost(postId)
}

func getReplyHash(service, remoteId string) uint {
	str := service + "\t" + remoteId
	hasher := murmur3.New32()
	_, _ = hasher.Write([]byte(str))
	return uint(hasher.Sum32())
}

func (agg *aggregator) pollPost(postId int64) {

	post, err := agg.repo.GetPost(postId)
	if err != nil || post == nil {
		if err != nil {
			agg.logger.Errorf("Failed to load post %d for polling: %v", postId, err)
		}
		return
	}
	broadcastIds, err := agg.repo.GetBroadcastIds(postId)
	if err != nil {
		agg.logger.Errorf("Failed to load broadcast ids for post %d: %v", postId, err)
		return
	}

	for service, remoteIds := range broadcastIds {
		adapter := agg.adapters.Get(service)
		if adapter == nil {
			continue
		}
		for accountId, remoteId := range remoteIds {
			agg.pollAccount(adapter, post, accountId, remoteId)
		}
	}
}

func (agg *aggregator) pollAccount(adapter IServiceAdapter, post *dal.Post, accountId, remoteId string) {

	acct, err := agg.repo.GetAccount(adapter.Key(), accountId)
	if err != nil {
		agg.logger.Errorf("Failed to load %s account %s: %v", adapter.Key(), accountId, err)
		return
	}
	if acct == nil || acct.Deauthed {
		return
	}

	ref := PostRef{PostId: post.Id, Permalink: post.Permalink, RemoteId: remoteId}
	replies, err := adapter.FetchReplies(acct, ref)
	if err != nil {
		if errors.Is(err, ErrAuthExpired) {
			agg.logger.Warnf("%s account %s lost authorization while polling replies", adapter.Key(), acct.Name)
			if errFlag := agg.accounts.FlagDeauthorized(adapter.Key(), accountId); errFlag != nil {
				agg.logger.Errorf("Failed to flag deauthorized account: %v", errFlag)
			}
			return
		}
		agg.logger.Errorf("Failed to fetch replies from %s for post %d: %v", adapter.Key(), post.Id, err)
		return
	}

	for _, reply := range replies {
		agg.storeReplyIfNew(adapter, post.Id, reply)
	}
}

func (agg *aggregator) storeReplyIfNew(adapter IServiceAdapter, postId int64, reply *Reply) {

	comment := &dal.Comment{
		PostId:      postId,
		GuidHash:    int64(getReplyHash(adapter.Key(), reply.RemoteId)),
		Service:     adapter.Key(),
		RemoteId:    reply.RemoteId,
		Author:      stripHtml(reply.Author),
		AuthorUrl:   reply.AuthorUrl,
		AvatarUrl:   reply.AvatarUrl,
		Content:     stripHtml(reply.Content),
		ReplyType:   reply.ReplyType,
		FullComment: adapter.ShowFullComment(reply.ReplyType),
		CreatedAt:   reply.CreatedAt,
	}
	isNew, err := agg.repo.AddCommentIfNew(comment)
	if err != nil {
		agg.logger.Errorf("Failed to store reply %s from %s: %v", reply.RemoteId, adapter.Key(), err)
		return
	}
	if isNew {
		agg.metrics.ReplySaved(adapter.Key())
		agg.logger.Infof("Stored new %s %s on post %d from %s",
			adapter.Key(), reply.ReplyType, postId, comment.Author)
	}
}
