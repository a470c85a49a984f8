package test

import (
	"social_sync/dal"
	"social_sync/logic"
	"social_sync/shared"
	"social_sync/test/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type aggregatorHarness struct {
	cfg            *shared.Config
	mockLogger     *mocks.MockILogger
	mockRepo       *mocks.MockIRepo
	mockAdapter    *mocks.MockIServiceAdapter
	mockAccounts   *mocks.MockIAccountRegistry
	mockQueue      *mocks.MockIAggQueue
	mockDispatcher *mocks.MockIDispatcher
	mockMetrics    *mocks.MockIMetrics
}

func setupAggregatorTest(t *testing.T) (*gomock.Controller, *aggregatorHarness, logic.IAggregator) {

	ctrl := gomock.NewController(t)

	h := &aggregatorHarness{
		// Zero tick config: no background loop in tests
		cfg:            &shared.Config{},
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockRepo:       mocks.NewMockIRepo(ctrl),
		mockAdapter:    mocks.NewMockIServiceAdapter(ctrl),
		mockAccounts:   mocks.NewMockIAccountRegistry(ctrl),
		mockQueue:      mocks.NewMockIAggQueue(ctrl),
		mockDispatcher: mocks.NewMockIDispatcher(ctrl),
		mockMetrics:    mocks.NewMockIMetrics(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)
	setupServiceAdapter(h.mockAdapter, "twitter", 140)
	h.mockQueue.EXPECT().Len().Return(0).AnyTimes()

	adapters := logic.NewAdapterRegistry([]logic.IServiceAdapter{h.mockAdapter})
	agg := logic.NewAggregator(h.cfg, h.mockLogger, h.mockRepo, adapters,
		h.mockAccounts, h.mockQueue, h.mockDispatcher, h.mockMetrics)

	return ctrl, h, agg
}

// runSubmittedJobs makes the dispatcher mock execute each job inline.
func runSubmittedJobs(h *aggregatorHarness, times int) {
	h.mockDispatcher.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Do(func(name string, job func()) { job() }).Times(times)
}

func Test_Aggregator_Tick_Escalates_Interval_And_Polls(t *testing.T) {

	ctrl, h, agg := setupAggregatorTest(t)
	defer ctrl.Finish()

	bucketTs := time.Now().Unix() - 1
	post := &dal.Post{Id: 7, Permalink: "https://example.com/hello"}
	acct := &dal.Account{Service: "twitter", Id: "t1", Name: "Jane"}
	reply := &logic.Reply{
		RemoteId:  "333",
		Author:    "bob",
		Content:   "Nice post!",
		ReplyType: "reply",
		CreatedAt: time.Now().UTC(),
	}

	h.mockQueue.EXPECT().Runnable().
		Return([]logic.RunnableBucket{{Timestamp: bucketTs, Entries: map[int64]int{7: 60}}}).Times(1)
	h.mockRepo.EXPECT().GetPost(gomock.Eq(int64(7))).Return(post, nil).Times(2)
	h.mockQueue.EXPECT().Add(gomock.Eq(int64(7)), gomock.Eq(120)).Times(1)
	runSubmittedJobs(h, 1)
	h.mockRepo.EXPECT().GetBroadcastIds(gomock.Eq(int64(7))).
		Return(map[string]map[string]string{"twitter": {"t1": "111"}}, nil).Times(1)
	h.mockRepo.EXPECT().GetAccount(gomock.Eq("twitter"), gomock.Eq("t1")).Return(acct, nil).Times(1)
	h.mockAdapter.EXPECT().
		FetchReplies(gomock.Eq(acct), gomock.Eq(logic.PostRef{PostId: 7, Permalink: post.Permalink, RemoteId: "111"})).
		Return([]*logic.Reply{reply}, nil).Times(1)
	h.mockAdapter.EXPECT().ShowFullComment(gomock.Eq("reply")).Return(true).Times(1)
	h.mockRepo.EXPECT().AddCommentIfNew(gomock.Any()).
		DoAndReturn(func(c *dal.Comment) (bool, error) {
			assert.Equal(t, int64(7), c.PostId)
			assert.Equal(t, "twitter", c.Service)
			assert.Equal(t, "333", c.RemoteId)
			assert.Equal(t, "bob", c.Author)
			assert.True(t, c.FullComment)
			assert.NotZero(t, c.GuidHash)
			return true, nil
		}).Times(1)

	agg.RunTick()
}

func Test_Aggregator_Tick_Drops_Missing_Post(t *testing.T) {

	ctrl, h, agg := setupAggregatorTest(t)
	defer ctrl.Finish()

	bucketTs := time.Now().Unix() - 1
	h.mockQueue.EXPECT().Runnable().
		Return([]logic.RunnableBucket{{Timestamp: bucketTs, Entries: map[int64]int{7: 60}}}).Times(1)
	h.mockRepo.EXPECT().GetPost(gomock.Eq(int64(7))).Return(nil, nil).Times(1)
	h.mockQueue.EXPECT().RemoveFromBucket(gomock.Eq(int64(7)), gomock.Eq(bucketTs)).Times(1)
	// No Submit: nothing left to poll

	agg.RunTick()
}

func Test_Aggregator_Does_Not_Store_Known_Reply_Twice(t *testing.T) {

	ctrl, h, agg := setupAggregatorTest(t)
	defer ctrl.Finish()

	post := &dal.Post{Id: 7, Permalink: "https://example.com/hello"}
	acct := &dal.Account{Service: "twitter", Id: "t1"}
	reply := &logic.Reply{RemoteId: "333", Author: "bob", ReplyType: "mention"}

	h.mockQueue.EXPECT().Add(gomock.Eq(int64(7)), gomock.Eq(0)).Times(1)
	runSubmittedJobs(h, 1)
	h.mockRepo.EXPECT().GetPost(gomock.Eq(int64(7))).Return(post, nil).Times(1)
	h.mockRepo.EXPECT().GetBroadcastIds(gomock.Any()).
		Return(map[string]map[string]string{"twitter": {"t1": "111"}}, nil).Times(1)
	h.mockRepo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(acct, nil).Times(1)
	h.mockAdapter.EXPECT().FetchReplies(gomock.Any(), gomock.Any()).
		Return([]*logic.Reply{reply}, nil).Times(1)
	h.mockAdapter.EXPECT().ShowFullComment(gomock.Any()).Return(false).Times(1)
	h.mockRepo.EXPECT().AddCommentIfNew(gomock.Any()).Return(false, nil).Times(1)

	agg.RunForPost(7)
}

func Test_Aggregator_Auth_Expired_Flags_Account(t *testing.T) {

	ctrl, h, agg := setupAggregatorTest(t)
	defer ctrl.Finish()

	post := &dal.Post{Id: 7, Permalink: "https://example.com/hello"}
	acct := &dal.Account{Service: "twitter", Id: "t1"}

	h.mockQueue.EXPECT().Add(gomock.Eq(int64(7)), gomock.Eq(0)).Times(1)
	runSubmittedJobs(h, 1)
	h.mockRepo.EXPECT().GetPost(gomock.Eq(int64(7))).Return(post, nil).Times(1)
	h.mockRepo.EXPECT().GetBroadcastIds(gomock.Any()).
		Return(map[string]map[string]string{"twitter": {"t1": "111"}}, nil).Times(1)
	h.mockRepo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(acct, nil).Times(1)
	h.mockAdapter.EXPECT().FetchReplies(gomock.Any(), gomock.Any()).
		Return(nil, logic.ErrAuthExpired).Times(1)
	h.mockAccounts.EXPECT().FlagDeauthorized(gomock.Eq("twitter"), gomock.Eq("t1")).Return(nil).Times(1)

	agg.RunForPost(7)
}

func Test_Aggregator_Skips_Deauthed_Account(t *testing.T) {

	ctrl, h, agg := setupAggregatorTest(t)
	defer ctrl.Finish()

	post := &dal.Post{Id: 7, Permalink: "https://example.com/hello"}
	acct := &dal.Account{Service: "twitter", Id: "t1", Deauthed: true}

	h.mockQueue.EXPECT().Add(gomock.Eq(int64(7)), gomock.Eq(0)).Times(1)
	runSubmittedJobs(h, 1)
	h.mockRepo.EXPECT().GetPost(gomock.Eq(int64(7))).Return(post, nil).Times(1)
	h.mockRepo.EXPECT().GetBroadcastIds(gomock.Any()).
		Return(map[string]map[string]string{"twitter": {"t1": "111"}}, nil).Times(1)
	h.mockRepo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(acct, nil).Times(1)
	// No FetchReplies

	agg.RunForPost(7)
}

func Test_Aggregator_Post_Deleted_Unschedules_And_Purges(t *testing.T) {

	ctrl, h, agg := setupAggregatorTest(t)
	defer ctrl.Finish()

	h.mockQueue.EXPECT().Remove(gomock.Eq(int64(7))).Times(1)
	h.mockRepo.EXPECT().DeletePost(gomock.Eq(int64(7))).Return(nil).Times(1)

	err := agg.HandlePostDeleted(7)
	assert.Nil(t, err)
}
