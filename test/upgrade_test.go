package test

import (
	"social_sync/logic"
	"social_sync/shared"
	"social_sync/test/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type upgraderHarness struct {
	mockLogger  *mocks.MockILogger
	mockRepo    *mocks.MockIRepo
	mockNotices *mocks.MockINotices
}

func setupUpgraderTest(t *testing.T) (*gomock.Controller, *upgraderHarness, logic.IUpgrader) {

	ctrl := gomock.NewController(t)

	h := &upgraderHarness{
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockRepo:    mocks.NewMockIRepo(ctrl),
		mockNotices: mocks.NewMockINotices(ctrl),
	}
	setupDummyLogger(h.mockLogger)

	upg := logic.NewUpgrader(h.mockLogger, h.mockRepo, h.mockNotices)
	return ctrl, h, upg
}

func Test_Upgrader_Fresh_Install_Records_Version(t *testing.T) {

	ctrl, h, upg := setupUpgraderTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetOption(gomock.Eq("installed_version")).Return("", nil).Times(1)
	h.mockRepo.EXPECT().SetOption(gomock.Eq("installed_version"), gomock.Eq(shared.Version)).Return(nil).Times(1)
	// No account clearing on a fresh install

	err := upg.Run()
	assert.Nil(t, err)
}

func Test_Upgrader_Current_Version_Is_Noop(t *testing.T) {

	ctrl, h, upg := setupUpgraderTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetOption(gomock.Eq("installed_version")).Return(shared.Version, nil).Times(1)

	err := upg.Run()
	assert.Nil(t, err)
}

func Test_Upgrader_Pre15_Clears_Facebook_And_Notifies(t *testing.T) {

	ctrl, h, upg := setupUpgraderTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetOption(gomock.Eq("installed_version")).Return("1.4", nil).Times(1)
	h.mockRepo.EXPECT().ClearAccounts(gomock.Eq("facebook")).Return([]int64{3, 9}, nil).Times(1)
	h.mockNotices.EXPECT().AddReauthRequired(gomock.Eq("facebook"), gomock.Eq(int64(0))).Times(1)
	h.mockNotices.EXPECT().AddReauthRequired(gomock.Eq("facebook"), gomock.Eq(int64(3))).Times(1)
	h.mockNotices.EXPECT().AddReauthRequired(gomock.Eq("facebook"), gomock.Eq(int64(9))).Times(1)
	h.mockRepo.EXPECT().SetOption(gomock.Eq("installed_version"), gomock.Eq(shared.Version)).Return(nil).Times(1)

	err := upg.Run()
	assert.Nil(t, err)
}

func Test_Upgrader_Is_Idempotent_After_Migration(t *testing.T) {

	ctrl, h, upg := setupUpgraderTest(t)
	defer ctrl.Finish()

	// First run migrates, second run sees current version and does nothing
	gomock.InOrder(
		h.mockRepo.EXPECT().GetOption(gomock.Eq("installed_version")).Return("1.4", nil),
		h.mockRepo.EXPECT().ClearAccounts(gomock.Eq("facebook")).Return(nil, nil),
		h.mockRepo.EXPECT().SetOption(gomock.Eq("installed_version"), gomock.Eq(shared.Version)).Return(nil),
		h.mockRepo.EXPECT().GetOption(gomock.Eq("installed_version")).Return(shared.Version, nil),
	)
	h.mockNotices.EXPECT().AddReauthRequired(gomock.Eq("facebook"), gomock.Eq(int64(0))).Times(1)

	assert.Nil(t, upg.Run())
	assert.Nil(t, upg.Run())
}
