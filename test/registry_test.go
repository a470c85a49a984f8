package test

import (
	"errors"
	"social_sync/dal"
	"social_sync/logic"
	"social_sync/test/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type registryHarness struct {
	mockLogger  *mocks.MockILogger
	mockRepo    *mocks.MockIRepo
	mockAdapter *mocks.MockIServiceAdapter
	mockNotices *mocks.MockINotices
}

func setupRegistryTest(t *testing.T) (*gomock.Controller, *registryHarness, logic.IAccountRegistry) {

	ctrl := gomock.NewController(t)

	h := &registryHarness{
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockRepo:    mocks.NewMockIRepo(ctrl),
		mockAdapter: mocks.NewMockIServiceAdapter(ctrl),
		mockNotices: mocks.NewMockINotices(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupServiceAdapter(h.mockAdapter, "twitter", 140)

	adapters := logic.NewAdapterRegistry([]logic.IServiceAdapter{h.mockAdapter})
	reg := logic.NewAccountRegistry(h.mockLogger, h.mockRepo, adapters, h.mockNotices)
	return ctrl, h, reg
}

func Test_Account_Registry_Rejects_Unknown_Service(t *testing.T) {

	ctrl, _, reg := setupRegistryTest(t)
	defer ctrl.Finish()

	_, err := reg.Lookup("myspace", "x1")
	assert.True(t, errors.Is(err, logic.ErrUnknownService))
	_, err = reg.All("myspace")
	assert.True(t, errors.Is(err, logic.ErrUnknownService))
	err = reg.Register("myspace", &dal.Account{Id: "x1"})
	assert.True(t, errors.Is(err, logic.ErrUnknownService))
	err = reg.Disconnect("myspace", "x1")
	assert.True(t, errors.Is(err, logic.ErrUnknownService))
	err = reg.FlagDeauthorized("myspace", "x1")
	assert.True(t, errors.Is(err, logic.ErrUnknownService))
}

func Test_Account_Registry_Lookup_Missing_Is_Not_Error(t *testing.T) {

	ctrl, h, reg := setupRegistryTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetAccount(gomock.Eq("twitter"), gomock.Eq("nope")).Return(nil, nil).Times(1)

	acct, err := reg.Lookup("twitter", "nope")
	assert.Nil(t, err)
	assert.Nil(t, acct)
}

func Test_Account_Registry_Register_Stamps_Service(t *testing.T) {

	ctrl, h, reg := setupRegistryTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().UpsertAccount(gomock.Any()).
		DoAndReturn(func(acct *dal.Account) error {
			assert.Equal(t, "twitter", acct.Service)
			assert.False(t, acct.CreatedAt.IsZero())
			return nil
		}).Times(1)

	err := reg.Register("twitter", &dal.Account{Id: "t1", Name: "Jane"})
	assert.Nil(t, err)
}

func Test_Account_Registry_Disconnect_Deletes_Despite_Remote_Failure(t *testing.T) {

	ctrl, h, reg := setupRegistryTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Service: "twitter", Id: "t1"}
	h.mockRepo.EXPECT().GetAccount(gomock.Eq("twitter"), gomock.Eq("t1")).Return(acct, nil).Times(1)
	h.mockAdapter.EXPECT().Deauthorize(gomock.Eq(acct)).Return(errors.New("remote says no")).Times(1)
	h.mockRepo.EXPECT().DeleteAccount(gomock.Eq("twitter"), gomock.Eq("t1")).Return(nil).Times(1)

	err := reg.Disconnect("twitter", "t1")
	assert.Nil(t, err)
}

func Test_Account_Registry_Disconnect_Missing_Skips_Remote(t *testing.T) {

	ctrl, h, reg := setupRegistryTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetAccount(gomock.Eq("twitter"), gomock.Eq("gone")).Return(nil, nil).Times(1)

	err := reg.Disconnect("twitter", "gone")
	assert.Nil(t, err)
}

func Test_Account_Registry_Flag_Deauthorized_Keeps_Account(t *testing.T) {

	ctrl, h, reg := setupRegistryTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().SetAccountDeauthed(gomock.Eq("twitter"), gomock.Eq("t1"), gomock.Eq(true)).Return(nil).Times(1)
	h.mockNotices.EXPECT().AddDeauthed(gomock.Eq("twitter"), gomock.Eq("t1")).Times(1)
	// No DeleteAccount: deauthorized accounts stay connected

	err := reg.FlagDeauthorized("twitter", "t1")
	assert.Nil(t, err)
}
