// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package quarterly

import (
	"context"
	"testing"
	"time"

	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/internal/mock"
	"github.com/northstarhouse/strategyhub/internal/sheets"
	"github.com/northstarhouse/strategyhub/internal/store"
	"github.com/northstarhouse/strategyhub/internal/syncer"
	"github.com/northstarhouse/strategyhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mock.MockGateway, *store.Cache, *syncer.Aggregate[[]models.QuarterlyUpdate]) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockGateway(ctrl)
	cache := store.NewCache(store.NewMemoryStore(), logger.Nop())
	updates := syncer.NewAggregate("quarterly-updates", gateway.FetchQuarterlyUpdates, cache, store.KeyQuarterly, logger.Nop())

	svc := NewService(gateway, cache, updates, logger.Nop())
	svc.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return svc, gateway, cache, updates
}

func TestSubmit_BlankCheckboxGroupsGetNoneNoted(t *testing.T) {
	svc, gateway, _, _ := newTestService(t)

	var submitted models.QuarterlyForm
	gateway.EXPECT().SubmitQuarterlyUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, form models.QuarterlyForm) error {
			submitted = form
			return nil
		})

	form := models.NewQuarterlyForm()
	form.FocusArea = "Gardens"
	form.Quarter = "Q2"
	require.NoError(t, svc.Submit(context.Background(), form))

	assert.Equal(t, "None noted", submitted.ChallengesCheckedOverride)
	assert.Equal(t, "None noted", submitted.SupportTypesCheckedOverride)
}

func TestSubmit_CheckedGroupsAreNotOverridden(t *testing.T) {
	svc, gateway, _, _ := newTestService(t)

	var submitted models.QuarterlyForm
	gateway.EXPECT().SubmitQuarterlyUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, form models.QuarterlyForm) error {
			submitted = form
			return nil
		})

	form := models.NewQuarterlyForm()
	form.FocusArea = "Gardens"
	form.Quarter = "Q2"
	form.Challenges.Budget = true
	form.SupportNeeded = "two more volunteers"
	require.NoError(t, svc.Submit(context.Background(), form))

	assert.Empty(t, submitted.ChallengesCheckedOverride)
	assert.Empty(t, submitted.SupportTypesCheckedOverride)
}

func TestSubmit_FoldsReportIntoCachedUpdates(t *testing.T) {
	svc, gateway, _, updates := newTestService(t)
	updates.Set([]models.QuarterlyUpdate{{FocusArea: "Programs", Quarter: "Q2"}})

	gateway.EXPECT().SubmitQuarterlyUpdate(gomock.Any(), gomock.Any()).Return(nil)

	form := models.NewQuarterlyForm()
	form.FocusArea = "Gardens"
	form.Quarter = "Q2"
	form.Wins = "first plot fully planted"
	require.NoError(t, svc.Submit(context.Background(), form))

	value, loaded := updates.Value()
	require.True(t, loaded)
	require.Len(t, value, 2)
	assert.Equal(t, "Gardens", value[1].FocusArea)
	assert.Equal(t, "first plot fully planted", value[1].Payload.Wins)
}

func TestSubmit_ResubmitReplacesPriorReportKeepingReview(t *testing.T) {
	svc, gateway, _, updates := newTestService(t)
	review := &models.ReviewUpdate{FocusArea: "Gardens", Quarter: "Q2", StatusAfterReview: "On Track"}
	updates.Set([]models.QuarterlyUpdate{{
		FocusArea: "Gardens",
		Quarter:   "Q2",
		Payload:   models.QuarterlyPayload{Review: review},
	}})

	gateway.EXPECT().SubmitQuarterlyUpdate(gomock.Any(), gomock.Any()).Return(nil)

	form := models.NewQuarterlyForm()
	form.FocusArea = "Gardens"
	form.Quarter = "Q2"
	form.Wins = "revised numbers"
	require.NoError(t, svc.Submit(context.Background(), form))

	value, _ := updates.Value()
	require.Len(t, value, 1)
	assert.Equal(t, "revised numbers", value[0].Payload.Wins)
	require.NotNil(t, value[0].Payload.Review, "attached review must survive a resubmit")
	assert.Equal(t, "On Track", value[0].Payload.Review.StatusAfterReview)
}

func TestSubmit_RemoteFailureLeavesNothingBehind(t *testing.T) {
	svc, gateway, cache, updates := newTestService(t)

	gateway.EXPECT().SubmitQuarterlyUpdate(gomock.Any(), gomock.Any()).Return(sheets.ErrNotConfigured)

	form := models.NewQuarterlyForm()
	form.FocusArea = "Gardens"
	form.Quarter = "Q2"
	form.NextQuarterFocus = "harvest festival"
	require.Error(t, svc.Submit(context.Background(), form))

	_, loaded := updates.Value()
	assert.False(t, loaded)

	var suggestion models.QuarterlySuggestion
	assert.False(t, cache.Read(store.SuggestionKey("Gardens", "Q3"), &suggestion))
}

func TestSubmit_StoresNextQuarterSuggestion(t *testing.T) {
	svc, gateway, _, _ := newTestService(t)
	gateway.EXPECT().SubmitQuarterlyUpdate(gomock.Any(), gomock.Any()).Return(nil)

	form := models.NewQuarterlyForm()
	form.FocusArea = "Gardens"
	form.Quarter = "Q3"
	form.NextQuarterFocus = "winterizing the beds"
	form.NextPriorities = []string{"mulch delivery", "", "volunteer day"}
	require.NoError(t, svc.Submit(context.Background(), form))

	suggestion, ok := svc.Suggestion("Gardens", "Q4")
	require.True(t, ok)
	assert.Equal(t, "winterizing the beds", suggestion.PrimaryFocus)
	require.Len(t, suggestion.Goals, 2, "blank priorities are skipped")
	assert.Equal(t, "mulch delivery", suggestion.Goals[0].Goal)
}

func TestSubmit_FinalReportProducesNoSuggestion(t *testing.T) {
	svc, gateway, cache, _ := newTestService(t)
	gateway.EXPECT().SubmitQuarterlyUpdate(gomock.Any(), gomock.Any()).Return(nil)

	form := models.NewQuarterlyForm()
	form.FocusArea = "Gardens"
	form.Quarter = "Final"
	form.NextQuarterFocus = "whatever comes next"
	require.NoError(t, svc.Submit(context.Background(), form))

	var suggestion models.QuarterlySuggestion
	assert.False(t, cache.Read(store.SuggestionKey("Gardens", ""), &suggestion))
}

func TestSuggestion_MissingReturnsFalse(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, ok := svc.Suggestion("Gardens", "Q1")
	assert.False(t, ok)
}

func TestSaveReview_PatchesCachedReport(t *testing.T) {
	svc, gateway, _, updates := newTestService(t)
	updates.Set([]models.QuarterlyUpdate{
		{FocusArea: "Programs", Quarter: "Q2"},
		{FocusArea: "Gardens", Quarter: "Q2"},
	})

	gateway.EXPECT().SubmitReviewUpdate(gomock.Any(), gomock.Any()).Return(nil)

	review := models.ReviewUpdate{
		FocusArea:         "Gardens",
		Quarter:           "Q2",
		StatusAfterReview: "Needs Attention",
	}
	require.NoError(t, svc.SaveReview(context.Background(), review))

	value, _ := updates.Value()
	require.Nil(t, value[0].Payload.Review)
	require.NotNil(t, value[1].Payload.Review)
	assert.Equal(t, "Needs Attention", value[1].Payload.Review.StatusAfterReview)
	assert.Equal(t, "2026-08-30", value[1].Payload.Review.ReviewCompletedOn)
}

func TestSaveReview_RemoteFailurePatchesNothing(t *testing.T) {
	svc, gateway, _, updates := newTestService(t)
	updates.Set([]models.QuarterlyUpdate{{FocusArea: "Gardens", Quarter: "Q2"}})

	gateway.EXPECT().SubmitReviewUpdate(gomock.Any(), gomock.Any()).Return(sheets.ErrBadGateway)

	err := svc.SaveReview(context.Background(), models.ReviewUpdate{FocusArea: "Gardens", Quarter: "Q2"})

	require.Error(t, err)
	value, _ := updates.Value()
	assert.Nil(t, value[0].Payload.Review)
}

func TestSaveReview_BlankStatusDefaultsToPending(t *testing.T) {
	svc, gateway, _, updates := newTestService(t)
	updates.Set([]models.QuarterlyUpdate{{FocusArea: "Gardens", Quarter: "Q2"}})

	var sent models.ReviewUpdate
	gateway.EXPECT().SubmitReviewUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, review models.ReviewUpdate) error {
			sent = review
			return nil
		})

	review := models.ReviewUpdate{FocusArea: "Gardens", Quarter: "Q2"}
	require.NoError(t, svc.SaveReview(context.Background(), review))

	assert.Equal(t, "Pending", sent.StatusAfterReview)
	value, _ := updates.Value()
	require.NotNil(t, value[0].Payload.Review)
	assert.Equal(t, "Pending", value[0].Payload.Review.StatusAfterReview)
}

func TestSaveReview_LeavesEarlierSnapshotsUntouched(t *testing.T) {
	svc, gateway, _, updates := newTestService(t)
	updates.Set([]models.QuarterlyUpdate{{FocusArea: "Gardens", Quarter: "Q2"}})
	gateway.EXPECT().SubmitReviewUpdate(gomock.Any(), gomock.Any()).Return(nil)

	before, _ := updates.Value()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			value, _ := updates.Value()
			for _, update := range value {
				_ = update.Payload.Review
			}
		}
	}()

	review := models.ReviewUpdate{FocusArea: "Gardens", Quarter: "Q2", StatusAfterReview: "Reviewed"}
	require.NoError(t, svc.SaveReview(context.Background(), review))
	<-done

	assert.Nil(t, before[0].Payload.Review, "snapshot taken before the review must not see it")
	value, _ := updates.Value()
	require.NotNil(t, value[0].Payload.Review)
}

func TestSubmit_LeavesEarlierSnapshotsUntouched(t *testing.T) {
	svc, gateway, _, updates := newTestService(t)
	updates.Set([]models.QuarterlyUpdate{{FocusArea: "Gardens", Quarter: "Q2", SubmittedDate: "2026-04-01"}})
	gateway.EXPECT().SubmitQuarterlyUpdate(gomock.Any(), gomock.Any()).Return(nil)

	before, _ := updates.Value()

	form := models.QuarterlyForm{FocusArea: "Gardens", Quarter: "Q2"}
	require.NoError(t, svc.Submit(context.Background(), form))

	assert.Equal(t, "2026-04-01", before[0].SubmittedDate, "snapshot taken before the resubmit keeps the old date")
	value, _ := updates.Value()
	assert.Equal(t, "2026-08-30", value[0].SubmittedDate)
}
