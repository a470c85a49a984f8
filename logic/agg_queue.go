package logic

import (
	"encoding/json"
	"social_sync/dal"
	"social_sync/shared"
	"sort"
	"strconv"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_agg_queue.go -package mocks social_sync/logic IAggQueue

const aggQueueOptionName = "aggregation_queue"

// RunnableBucket is one due time bucket: post ID -> polling interval in
// seconds.
type RunnableBucket struct {
	Timestamp int64
	Entries   map[int64]int
}

// IAggQueue schedules repeated reply polling per post. A post has at most
// one entry across all buckets; re-adding moves it. All mutation is
// serialized behind one lock, and every mutation is persisted.
type IAggQueue interface {
	Add(postId int64, intervalSec int)
	Remove(postId int64)
	RemoveFromBucket(postId int64, bucket int64)
	Runnable() []RunnableBucket
	Len() int
}

type aggQueue struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	mu      sync.Mutex
	buckets map[int64]map[int64]int // bucket timestamp -> post id -> interval sec
}

func NewAggQueue(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo) IAggQueue {
	q := aggQueue{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		buckets: make(map[int64]map[int64]int),
	}
	q.load()
	return &q
}

func (q *aggQueue) initialIntervalSec() int {
	return q.cfg.Aggregation.InitialMinutes * 60
}

func (q *aggQueue) maxIntervalSec() int {
	return q.cfg.Aggregation.MaxMinutes * 60
}

// Add schedules (or reschedules) polling for a post. Interval 0 means the
// configured initial interval; anything above the ceiling is clamped to it.
func (q *aggQueue) Add(postId int64, intervalSec int) {
	if intervalSec == 0 {
		intervalSec = q.initialIntervalSec()
	}
	if maxSec := q.maxIntervalSec(); maxSec > 0 && intervalSec > maxSec {
		intervalSec = maxSec
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.removeLocked(postId)
	bucket := time.Now().Unix() + int64(intervalSec)
	if _, ok := q.buckets[bucket]; !ok {
		q.buckets[bucket] = make(map[int64]int)
	}
	q.buckets[bucket][postId] = intervalSec
	q.save()
}

// Remove deletes the post's entry wherever it is; used when the exact
// bucket is unknown (post deletion).
func (q *aggQueue) Remove(postId int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.removeLocked(postId)
	q.save()
}

func (q *aggQueue) RemoveFromBucket(postId int64, bucket int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if entries, ok := q.buckets[bucket]; ok {
		delete(entries, postId)
		if len(entries) == 0 {
			delete(q.buckets, bucket)
		}
	}
	q.save()
}

func (q *aggQueue) removeLocked(postId int64) {
	for bucket, entries := range q.buckets {
		if _, ok := entries[postId]; ok {
			delete(entries, postId)
			if len(entries) == 0 {
				delete(q.buckets, bucket)
			}
		}
	}
}

// Runnable returns a snapshot of every bucket due by now, oldest first. The
// caller must fully drain each returned bucket by re-adding or removing
// every entry.
func (q *aggQueue) Runnable() []RunnableBucket {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := time.Now().Unix()
	var res []RunnableBucket
	for bucket, entries := range q.buckets {
		if bucket > now {
			continue
		}
		cp := make(map[int64]int, len(entries))
		for id, iv := range entries {
			cp[id] = iv
		}
		res = append(res, RunnableBucket{Timestamp: bucket, Entries: cp})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Timestamp < res[j].Timestamp
	})
	return res
}

func (q *aggQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	count := 0
	for _, entries := range q.buckets {
		count += len(entries)
	}
	return count
}

// Queue state is one JSON blob in the options store; string keys because
// JSON objects demand them.

func (q *aggQueue) load() {
	blob, err := q.repo.GetOption(aggQueueOptionName)
	if err != nil {
		q.logger.Errorf("Failed to load aggregation queue: %v", err)
		return
	}
	if blob == "" {
		return
	}
	raw := make(map[string]map[string]int)
	if err = json.Unmarshal([]byte(blob), &raw); err != nil {
		q.logger.Errorf("Failed to parse stored aggregation queue: %v", err)
		return
	}
	for bucketStr, entries := range raw {
		bucket, errConv := strconv.ParseInt(bucketStr, 10, 64)
		if errConv != nil {
			continue
		}
		parsed := make(map[int64]int, len(entries))
		for idStr, iv := range entries {
			id, errId := strconv.ParseInt(idStr, 10, 64)
			if errId != nil {
				continue
			}
			parsed[id] = iv
		}
		if len(parsed) != 0 {
			q.buckets[bucket] = parsed
		}
	}
}

func (q *aggQueue) save() {
	raw := make(map[string]map[string]int, len(q.buckets))
	for bucket, entries := range q.buckets {
		item := make(map[string]int, len(entries))
		for id, iv := range entries {
			item[strconv.FormatInt(id, 10)] = iv
		}
		raw[strconv.FormatInt(bucket, 10)] = item
	}
	blob, err := json.Marshal(raw)
	if err != nil {
		q.logger.Errorf("Failed to serialize aggregation queue: %v", err)
		return
	}
	if err = q.repo.SetOption(aggQueueOptionName, string(blob)); err != nil {
		q.logger.Errorf("Failed to persist aggregation queue: %v", err)
	}
}
