package test

import (
	"social_sync/test/mocks"

	"go.uber.org/mock/gomock"
)

func setupDummyLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func setupFakeTexts(mockTexts *mocks.MockITexts) {
	mockTexts.EXPECT().WithVals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(id string, vals map[string]string) string {
			return fakeTextWithVals(id, vals)
		}).AnyTimes()
}

func fakeTextWithVals(id string, vals map[string]string) string {
	res := id
	for k, v := range vals {
		res += "\n" + k + "\t" + v
	}
	return res
}

func setupDummyMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().BroadcastSent(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().BroadcastFailed(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ReplySaved(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().NoticeRaised(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().AggQueueLength(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().JobSubmitted(gomock.Any()).AnyTimes()
}

// setupServiceAdapter preps a mock adapter's identity calls, which both the
// adapter registry and the broadcaster invoke freely.
func setupServiceAdapter(mockAdapter *mocks.MockIServiceAdapter, key string, maxLen int) {
	mockAdapter.EXPECT().Key().Return(key).AnyTimes()
	mockAdapter.EXPECT().Title().Return(key).AnyTimes()
	mockAdapter.EXPECT().MaxBroadcastLength().Return(maxLen).AnyTimes()
	mockAdapter.EXPECT().Tokens().Return(nil).AnyTimes()
	mockAdapter.EXPECT().TokenValues(gomock.Any()).Return(nil).AnyTimes()
}
