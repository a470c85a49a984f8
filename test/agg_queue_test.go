package test

import (
	"encoding/json"
	"social_sync/logic"
	"social_sync/shared"
	"social_sync/test/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type aggQueueHarness struct {
	cfg        *shared.Config
	mockLogger *mocks.MockILogger
	mockRepo   *mocks.MockIRepo
	saved      string
}

func setupAggQueueTest(t *testing.T, stored string) (*gomock.Controller, *aggQueueHarness, logic.IAggQueue) {

	ctrl := gomock.NewController(t)

	h := &aggQueueHarness{
		cfg: &shared.Config{
			Aggregation: shared.AggregationCfg{InitialMinutes: 1, MaxMinutes: 2},
		},
		mockLogger: mocks.NewMockILogger(ctrl),
		mockRepo:   mocks.NewMockIRepo(ctrl),
	}
	setupDummyLogger(h.mockLogger)

	h.mockRepo.EXPECT().GetOption(gomock.Eq("aggregation_queue")).Return(stored, nil).Times(1)
	h.mockRepo.EXPECT().SetOption(gomock.Eq("aggregation_queue"), gomock.Any()).
		DoAndReturn(func(name, val string) error {
			h.saved = val
			return nil
		}).AnyTimes()

	q := logic.NewAggQueue(h.cfg, h.mockLogger, h.mockRepo)
	return ctrl, h, q
}

func savedIntervals(t *testing.T, blob string) map[string]map[string]int {
	res := make(map[string]map[string]int)
	err := json.Unmarshal([]byte(blob), &res)
	assert.Nil(t, err)
	return res
}

func Test_Agg_Queue_Add_Uses_Initial_Interval(t *testing.T) {

	ctrl, h, q := setupAggQueueTest(t, "")
	defer ctrl.Finish()

	q.Add(7, 0)
	assert.Equal(t, 1, q.Len())
	// One bucket, one entry, interval filled in from config
	raw := savedIntervals(t, h.saved)
	assert.Equal(t, 1, len(raw))
	for _, entries := range raw {
		assert.Equal(t, map[string]int{"7": 60}, entries)
	}
	// Scheduled in the future: nothing runnable yet
	assert.Equal(t, 0, len(q.Runnable()))
}

func Test_Agg_Queue_Add_Caps_At_Max_Interval(t *testing.T) {

	ctrl, h, q := setupAggQueueTest(t, "")
	defer ctrl.Finish()

	q.Add(7, 100000)
	raw := savedIntervals(t, h.saved)
	for _, entries := range raw {
		assert.Equal(t, 120, entries["7"])
	}
}

func Test_Agg_Queue_Readd_Moves_Entry(t *testing.T) {

	ctrl, h, q := setupAggQueueTest(t, "")
	defer ctrl.Finish()

	q.Add(7, 30)
	q.Add(7, 90)
	assert.Equal(t, 1, q.Len())
	raw := savedIntervals(t, h.saved)
	assert.Equal(t, 1, len(raw))
	for _, entries := range raw {
		assert.Equal(t, 90, entries["7"])
	}
}

func Test_Agg_Queue_Past_Buckets_Are_Runnable(t *testing.T) {

	ctrl, _, q := setupAggQueueTest(t, "")
	defer ctrl.Finish()

	q.Add(7, -10)
	q.Add(8, -20)
	q.Add(9, 60)

	runnable := q.Runnable()
	total := 0
	for _, bucket := range runnable {
		total += len(bucket.Entries)
	}
	assert.Equal(t, 2, total)
	// Oldest first
	for i := 1; i < len(runnable); i++ {
		assert.True(t, runnable[i-1].Timestamp < runnable[i].Timestamp)
	}
}

func Test_Agg_Queue_Remove_Deletes_Everywhere(t *testing.T) {

	ctrl, _, q := setupAggQueueTest(t, "")
	defer ctrl.Finish()

	q.Add(7, 30)
	q.Add(8, 30)
	q.Remove(7)
	assert.Equal(t, 1, q.Len())
	q.Remove(42) // unknown id is a no-op
	assert.Equal(t, 1, q.Len())
}

func Test_Agg_Queue_Remove_From_Bucket(t *testing.T) {

	ctrl, _, q := setupAggQueueTest(t, "")
	defer ctrl.Finish()

	q.Add(7, -10)
	runnable := q.Runnable()
	assert.Equal(t, 1, len(runnable))
	q.RemoveFromBucket(7, runnable[0].Timestamp)
	assert.Equal(t, 0, q.Len())
}

func Test_Agg_Queue_Loads_Persisted_State(t *testing.T) {

	stored := `{"100":{"7":60},"200":{"8":120}}`
	ctrl, _, q := setupAggQueueTest(t, stored)
	defer ctrl.Finish()

	assert.Equal(t, 2, q.Len())
	// Both buckets are long past due
	runnable := q.Runnable()
	assert.Equal(t, 2, len(runnable))
	assert.Equal(t, int64(100), runnable[0].Timestamp)
	assert.Equal(t, map[int64]int{7: 60}, runnable[0].Entries)
}

func Test_Agg_Queue_Ignores_Corrupt_Persisted_State(t *testing.T) {

	ctrl, _, q := setupAggQueueTest(t, "not json")
	defer ctrl.Finish()

	assert.Equal(t, 0, q.Len())
}

func Test_Agg_Queue_Full_Drain_Leaves_No_Due_Bucket(t *testing.T) {

	ctrl, _, q := setupAggQueueTest(t, "")
	defer ctrl.Finish()

	// Several posts due now, spread over distinct past buckets
	q.Add(7, -30)
	q.Add(8, -20)
	q.Add(9, -10)
	q.Add(10, -10)
	assert.Equal(t, 4, q.Len())

	// Process the way a tick does: re-add survivors, drop the rest
	processed := 0
	for _, bucket := range q.Runnable() {
		for postId := range bucket.Entries {
			processed++
			if postId == 9 {
				q.RemoveFromBucket(postId, bucket.Timestamp)
				continue
			}
			q.Add(postId, 60)
		}
	}
	assert.Equal(t, 4, processed)

	// Every due bucket is gone; survivors are rescheduled in the future
	assert.Equal(t, 0, len(q.Runnable()))
	assert.Equal(t, 3, q.Len())
}
