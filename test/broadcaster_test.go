package test

import (
	"social_sync/dal"
	"social_sync/logic"
	"social_sync/shared"
	"social_sync/test/mocks"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type broadcasterHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockRepo     *mocks.MockIRepo
	mockAdapter  *mocks.MockIServiceAdapter
	mockAccounts *mocks.MockIAccountRegistry
	mockNotices  *mocks.MockINotices
	mockQueue    *mocks.MockIAggQueue
	mockMetrics  *mocks.MockIMetrics
}

func setupBroadcasterTest(t *testing.T, maxLen int) (*gomock.Controller, *broadcasterHarness, logic.IBroadcaster) {

	ctrl := gomock.NewController(t)

	h := &broadcasterHarness{
		cfg: &shared.Config{
			BroadcastFormat: "{title}: {content} {url}",
			Aggregation:     shared.AggregationCfg{InitialMinutes: 15, MaxMinutes: 1440},
		},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockAdapter:  mocks.NewMockIServiceAdapter(ctrl),
		mockAccounts: mocks.NewMockIAccountRegistry(ctrl),
		mockNotices:  mocks.NewMockINotices(ctrl),
		mockQueue:    mocks.NewMockIAggQueue(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)
	setupServiceAdapter(h.mockAdapter, "twitter", maxLen)
	h.mockQueue.EXPECT().Len().Return(1).AnyTimes()

	adapters := logic.NewAdapterRegistry([]logic.IServiceAdapter{h.mockAdapter})
	bc := logic.NewBroadcaster(h.cfg, h.mockLogger, h.mockRepo, adapters,
		h.mockAccounts, h.mockNotices, h.mockQueue, h.mockMetrics)

	return ctrl, h, bc
}

func makePost(id int64) *dal.Post {
	return &dal.Post{
		Id:          id,
		Title:       "Hello",
		Content:     "World",
		Author:      "jane",
		Permalink:   "https://example.com/hello",
		PublishedAt: time.Date(2011, 4, 2, 12, 0, 0, 0, time.UTC),
		Notify:      true,
	}
}

func Test_Broadcaster_Delivers_And_Stores_Remote_Id(t *testing.T) {

	ctrl, h, bc := setupBroadcasterTest(t, 420)
	defer ctrl.Finish()

	post := makePost(7)
	chosen := []dal.ChosenAccount{{Service: "twitter", AccountId: "t1"}}
	acct := &dal.Account{Service: "twitter", Id: "t1", Name: "Jane", AccessToken: "tok"}

	h.mockRepo.EXPECT().UpsertPost(gomock.Eq(post)).Return(nil).Times(1)
	h.mockRepo.EXPECT().SetChosenAccounts(gomock.Eq(int64(7)), gomock.Eq(chosen)).Return(nil).Times(1)
	h.mockRepo.EXPECT().GetBroadcastIds(gomock.Eq(int64(7))).Return(map[string]map[string]string{}, nil).Times(1)
	h.mockRepo.EXPECT().SetServiceContent(gomock.Eq(int64(7)), gomock.Eq("twitter"), gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().GetAccount(gomock.Eq("twitter"), gomock.Eq("t1")).Return(acct, nil).Times(1)
	h.mockAdapter.EXPECT().Broadcast(gomock.Eq(acct), gomock.Any()).
		Return(logic.DeliveryResult{RemoteId: "111"}).Times(1)
	h.mockRepo.EXPECT().MergeBroadcastId(gomock.Eq(int64(7)), gomock.Eq("twitter"), gomock.Eq("t1"), gomock.Eq("111")).
		Return(nil).Times(1)
	h.mockQueue.EXPECT().Add(gomock.Eq(int64(7)), gomock.Eq(0)).Times(1)

	err := bc.HandlePostPublished(post, chosen)
	assert.Nil(t, err)
}

func Test_Broadcaster_Skips_Account_Already_Broadcast(t *testing.T) {

	ctrl, h, bc := setupBroadcasterTest(t, 420)
	defer ctrl.Finish()

	post := makePost(7)
	chosen := []dal.ChosenAccount{{Service: "twitter", AccountId: "t1"}}
	existing := map[string]map[string]string{"twitter": {"t1": "111"}}

	h.mockRepo.EXPECT().UpsertPost(gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().SetChosenAccounts(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().GetBroadcastIds(gomock.Eq(int64(7))).Return(existing, nil).Times(1)
	h.mockRepo.EXPECT().SetServiceContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	// No Broadcast, no MergeBroadcastId: delivery already happened once
	h.mockQueue.EXPECT().Add(gomock.Eq(int64(7)), gomock.Eq(0)).Times(1)

	err := bc.HandlePostPublished(post, chosen)
	assert.Nil(t, err)
}

func Test_Broadcaster_Auth_Expired_Flags_Account(t *testing.T) {

	ctrl, h, bc := setupBroadcasterTest(t, 420)
	defer ctrl.Finish()

	post := makePost(7)
	chosen := []dal.ChosenAccount{{Service: "twitter", AccountId: "t1"}}
	acct := &dal.Account{Service: "twitter", Id: "t1", Name: "Jane"}

	h.mockRepo.EXPECT().UpsertPost(gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().SetChosenAccounts(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().GetBroadcastIds(gomock.Any()).Return(nil, nil).Times(1)
	h.mockRepo.EXPECT().SetServiceContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(acct, nil).Times(1)
	h.mockAdapter.EXPECT().Broadcast(gomock.Any(), gomock.Any()).
		Return(logic.DeliveryResult{Failure: logic.FailureAuthExpired}).Times(1)
	h.mockAccounts.EXPECT().FlagDeauthorized(gomock.Eq("twitter"), gomock.Eq("t1")).Return(nil).Times(1)
	h.mockQueue.EXPECT().Add(gomock.Eq(int64(7)), gomock.Eq(0)).Times(1)

	err := bc.HandlePostPublished(post, chosen)
	assert.Nil(t, err)
}

func Test_Broadcaster_One_Failure_Does_Not_Stop_Others(t *testing.T) {

	ctrl, h, bc := setupBroadcasterTest(t, 420)
	defer ctrl.Finish()

	post := makePost(7)
	chosen := []dal.ChosenAccount{
		{Service: "twitter", AccountId: "t1"},
		{Service: "twitter", AccountId: "t2"},
	}
	acct1 := &dal.Account{Service: "twitter", Id: "t1", Name: "One"}
	acct2 := &dal.Account{Service: "twitter", Id: "t2", Name: "Two"}

	h.mockRepo.EXPECT().UpsertPost(gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().SetChosenAccounts(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().GetBroadcastIds(gomock.Any()).Return(nil, nil).Times(1)
	h.mockRepo.EXPECT().SetServiceContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().GetAccount(gomock.Eq("twitter"), gomock.Eq("t1")).Return(acct1, nil).Times(1)
	h.mockRepo.EXPECT().GetAccount(gomock.Eq("twitter"), gomock.Eq("t2")).Return(acct2, nil).Times(1)
	h.mockAdapter.EXPECT().Broadcast(gomock.Eq(acct1), gomock.Any()).
		Return(logic.DeliveryResult{Failure: logic.FailureNetworkError}).Times(1)
	h.mockNotices.EXPECT().
		AddDeliveryFailure(gomock.Eq("twitter"), gomock.Eq("t1"), gomock.Eq(int64(7)), gomock.Eq(logic.FailureNetworkError)).
		Times(1)
	h.mockAdapter.EXPECT().Broadcast(gomock.Eq(acct2), gomock.Any()).
		Return(logic.DeliveryResult{RemoteId: "222"}).Times(1)
	h.mockRepo.EXPECT().MergeBroadcastId(gomock.Eq(int64(7)), gomock.Eq("twitter"), gomock.Eq("t2"), gomock.Eq("222")).
		Return(nil).Times(1)
	h.mockQueue.EXPECT().Add(gomock.Eq(int64(7)), gomock.Eq(0)).Times(1)

	err := bc.HandlePostPublished(post, chosen)
	assert.Nil(t, err)
}

func Test_Broadcaster_Skips_Deauthed_Account(t *testing.T) {

	ctrl, h, bc := setupBroadcasterTest(t, 420)
	defer ctrl.Finish()

	post := makePost(7)
	chosen := []dal.ChosenAccount{{Service: "twitter", AccountId: "t1"}}
	acct := &dal.Account{Service: "twitter", Id: "t1", Name: "Jane", Deauthed: true}

	h.mockRepo.EXPECT().UpsertPost(gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().SetChosenAccounts(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().GetBroadcastIds(gomock.Any()).Return(nil, nil).Times(1)
	h.mockRepo.EXPECT().SetServiceContent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(acct, nil).Times(1)
	h.mockQueue.EXPECT().Add(gomock.Eq(int64(7)), gomock.Eq(0)).Times(1)

	err := bc.HandlePostPublished(post, chosen)
	assert.Nil(t, err)
}

func Test_Broadcaster_Fits_Text_To_Service_Limit(t *testing.T) {

	ctrl, h, bc := setupBroadcasterTest(t, 140)
	defer ctrl.Finish()

	post := makePost(7)
	for i := 0; i < 30; i++ {
		post.Content += " lorem ipsum"
	}
	chosen := []dal.ChosenAccount{{Service: "twitter", AccountId: "t1"}}
	acct := &dal.Account{Service: "twitter", Id: "t1", Name: "Jane"}

	var stored string
	h.mockRepo.EXPECT().UpsertPost(gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().SetChosenAccounts(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().GetBroadcastIds(gomock.Any()).Return(nil, nil).Times(1)
	h.mockRepo.EXPECT().SetServiceContent(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(postId int64, service, content string) error {
			stored = content
			return nil
		}).Times(1)
	h.mockRepo.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(acct, nil).Times(1)
	var sent string
	h.mockAdapter.EXPECT().Broadcast(gomock.Any(), gomock.Any()).
		DoAndReturn(func(a *dal.Account, text string) logic.DeliveryResult {
			sent = text
			return logic.DeliveryResult{RemoteId: "111"}
		}).Times(1)
	h.mockRepo.EXPECT().MergeBroadcastId(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	h.mockQueue.EXPECT().Add(gomock.Any(), gomock.Any()).Times(1)

	err := bc.HandlePostPublished(post, chosen)
	assert.Nil(t, err)
	assert.Equal(t, stored, sent)
	assert.LessOrEqual(t, utf8.RuneCountInString(sent), 140)
	assert.Contains(t, sent, "...")
	assert.True(t, len(sent) > len(post.Permalink))
	assert.Equal(t, post.Permalink, sent[len(sent)-len(post.Permalink):])
}

func Test_Broadcaster_Lists_Builtin_Tokens(t *testing.T) {

	ctrl, _, bc := setupBroadcasterTest(t, 420)
	defer ctrl.Finish()

	tokens := bc.BroadcastTokens()
	for _, token := range []string{"{url}", "{title}", "{content}", "{date}", "{author}"} {
		assert.Contains(t, tokens, token)
		assert.NotEmpty(t, tokens[token])
	}
}

func Test_Broadcaster_Merges_Adapter_Tokens(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)
	mockAdapter := mocks.NewMockIServiceAdapter(ctrl)
	mockAdapter.EXPECT().Key().Return("twitter").AnyTimes()
	mockAdapter.EXPECT().Tokens().Return(map[string]string{
		"{hashtags}": "Hashtags derived from the post's categories",
		"{title}":    "must not override the built-in",
	}).AnyTimes()

	cfg := &shared.Config{BroadcastFormat: "{title} {url}"}
	adapters := logic.NewAdapterRegistry([]logic.IServiceAdapter{mockAdapter})
	bc := logic.NewBroadcaster(cfg, mockLogger, mocks.NewMockIRepo(ctrl), adapters,
		mocks.NewMockIAccountRegistry(ctrl), mocks.NewMockINotices(ctrl),
		mocks.NewMockIAggQueue(ctrl), mocks.NewMockIMetrics(ctrl))

	tokens := bc.BroadcastTokens()
	assert.Equal(t, "Hashtags derived from the post's categories", tokens["{hashtags}"])
	assert.Equal(t, "Title of the post", tokens["{title}"])
}

func Test_Broadcaster_Silent_Post_Only_Schedules_Polling(t *testing.T) {

	ctrl, h, bc := setupBroadcasterTest(t, 420)
	defer ctrl.Finish()

	post := makePost(7)
	post.Notify = false
	chosen := []dal.ChosenAccount{{Service: "twitter", AccountId: "t1"}}

	h.mockRepo.EXPECT().UpsertPost(gomock.Eq(post)).Return(nil).Times(1)
	h.mockRepo.EXPECT().SetChosenAccounts(gomock.Eq(int64(7)), gomock.Eq(chosen)).Return(nil).Times(1)
	// No rendering, no delivery: reply polling still starts
	h.mockQueue.EXPECT().Add(gomock.Eq(int64(7)), gomock.Eq(0)).Times(1)

	err := bc.HandlePostPublished(post, chosen)
	assert.Nil(t, err)
}

func Test_Broadcaster_No_Choice_Means_All_Accounts(t *testing.T) {

	ctrl, h, bc := setupBroadcasterTest(t, 420)
	defer ctrl.Finish()

	post := makePost(7)
	acct1 := &dal.Account{Service: "twitter", Id: "t1", Name: "Jane", AccessToken: "tok"}
	acct2 := &dal.Account{Service: "twitter", Id: "t2", Name: "Joe", AccessToken: "tok"}

	h.mockRepo.EXPECT().UpsertPost(gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().SetChosenAccounts(gomock.Eq(int64(7)), gomock.Nil()).Return(nil).Times(1)
	h.mockRepo.EXPECT().GetBroadcastIds(gomock.Eq(int64(7))).Return(map[string]map[string]string{}, nil).Times(1)
	h.mockRepo.EXPECT().GetAllAccounts().Return([]*dal.Account{acct1, acct2}, nil).Times(1)
	h.mockRepo.EXPECT().SetServiceContent(gomock.Eq(int64(7)), gomock.Eq("twitter"), gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().GetAccount(gomock.Eq("twitter"), gomock.Eq("t1")).Return(acct1, nil).Times(1)
	h.mockRepo.EXPECT().GetAccount(gomock.Eq("twitter"), gomock.Eq("t2")).Return(acct2, nil).Times(1)
	h.mockAdapter.EXPECT().Broadcast(gomock.Eq(acct1), gomock.Any()).
		Return(logic.DeliveryResult{RemoteId: "111"}).Times(1)
	h.mockAdapter.EXPECT().Broadcast(gomock.Eq(acct2), gomock.Any()).
		Return(logic.DeliveryResult{RemoteId: "222"}).Times(1)
	h.mockRepo.EXPECT().MergeBroadcastId(gomock.Eq(int64(7)), gomock.Eq("twitter"), gomock.Eq("t1"), gomock.Eq("111")).
		Return(nil).Times(1)
	h.mockRepo.EXPECT().MergeBroadcastId(gomock.Eq(int64(7)), gomock.Eq("twitter"), gomock.Eq("t2"), gomock.Eq("222")).
		Return(nil).Times(1)
	h.mockQueue.EXPECT().Add(gomock.Eq(int64(7)), gomock.Eq(0)).Times(1)

	err := bc.HandlePostPublished(post, nil)
	assert.Nil(t, err)
}
