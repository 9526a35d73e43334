// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

// Package quarterly implements the quarterly reflection workflow: submitting
// champion reports, attaching co-champion reviews, and carrying the
// next-quarter pre-fill between reports.
package quarterly

import (
	"context"
	"slices"
	"time"

	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/internal/sheets"
	"github.com/northstarhouse/strategyhub/internal/store"
	"github.com/northstarhouse/strategyhub/internal/syncer"
	"github.com/northstarhouse/strategyhub/models"
)

// noneNoted is what the spreadsheet shows for checkbox groups the champion
// left entirely blank.
const noneNoted = "None noted"

// Service runs the quarterly reporting flow against the sheet and keeps the
// locally cached updates list in step with what was just submitted.
type Service struct {
	gateway sheets.Gateway
	cache   *store.Cache
	updates *syncer.Aggregate[[]models.QuarterlyUpdate]
	logger  *logger.Logger

	now func() time.Time
}

func NewService(gateway sheets.Gateway, cache *store.Cache, updates *syncer.Aggregate[[]models.QuarterlyUpdate], log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		gateway: gateway,
		cache:   cache,
		updates: updates,
		logger:  log,
		now:     time.Now,
	}
}

// Submit normalizes and submits a quarterly report. Unlike the collection
// mutations this call is synchronous: the champion is looking at a submit
// button and deserves a real answer. On success the report is folded into
// the cached updates list and the next-quarter pre-fill is stored.
func (s *Service) Submit(ctx context.Context, form models.QuarterlyForm) error {
	form = s.normalize(form)

	if err := s.gateway.SubmitQuarterlyUpdate(ctx, form); err != nil {
		return err
	}

	s.foldIntoUpdates(models.QuarterlyUpdate{
		FocusArea:     form.FocusArea,
		Quarter:       form.Quarter,
		SubmittedDate: form.SubmittedDate,
		Payload:       models.QuarterlyPayload{QuarterlyForm: form},
	})
	s.storeSuggestion(form)
	return nil
}

// SaveReview attaches a co-champion review to an already submitted report.
// The cached copy of the report is patched locally so the review shows up
// without waiting for the next sheet refresh.
func (s *Service) SaveReview(ctx context.Context, review models.ReviewUpdate) error {
	if review.ReviewCompletedOn == "" {
		review.ReviewCompletedOn = s.now().Format("2006-01-02")
	}
	if review.StatusAfterReview == "" {
		review.StatusAfterReview = models.ReviewStatuses[0]
	}

	if err := s.gateway.SubmitReviewUpdate(ctx, review); err != nil {
		return err
	}

	updates, loaded := s.updates.Value()
	if !loaded {
		return nil
	}
	// Clone before patching: the aggregate hands out its backing slice,
	// and other readers may be iterating it right now.
	for i, update := range updates {
		if update.FocusArea == review.FocusArea && update.Quarter == review.Quarter {
			patched := slices.Clone(updates)
			reviewCopy := review
			patched[i].Payload.Review = &reviewCopy
			s.updates.Set(patched)
			return nil
		}
	}
	return nil
}

// Suggestion returns the stored pre-fill for the given focus area and
// quarter, if a previous report produced one.
func (s *Service) Suggestion(focusArea, quarter string) (models.QuarterlySuggestion, bool) {
	var suggestion models.QuarterlySuggestion
	ok := s.cache.Read(store.SuggestionKey(focusArea, quarter), &suggestion)
	return suggestion, ok
}

// normalize fills derived fields before the form goes on the wire. Blank
// checkbox groups get the "None noted" presentation override so the sheet
// does not render an empty cell as forgotten rather than deliberate.
func (s *Service) normalize(form models.QuarterlyForm) models.QuarterlyForm {
	if form.SubmittedDate == "" {
		form.SubmittedDate = s.now().Format("2006-01-02")
	}
	if form.Year == "" {
		form.Year = s.now().Format("2006")
	}
	if !form.Challenges.AnyChecked() && form.Challenges.Details == "" && form.Challenges.OtherText == "" {
		form.ChallengesCheckedOverride = noneNoted
	}
	if !form.SupportTypes.AnyChecked() && form.SupportNeeded == "" && form.SupportTypes.OtherText == "" {
		form.SupportTypesCheckedOverride = noneNoted
	}
	return form
}

// foldIntoUpdates upserts the freshly submitted report into the cached
// updates list keyed by focus area and quarter.
func (s *Service) foldIntoUpdates(update models.QuarterlyUpdate) {
	updates, _ := s.updates.Value()
	for i, existing := range updates {
		if existing.FocusArea == update.FocusArea && existing.Quarter == update.Quarter {
			update.Payload.Review = existing.Payload.Review
			folded := slices.Clone(updates)
			folded[i] = update
			s.updates.Set(folded)
			return
		}
	}
	s.updates.Set(append(slices.Clone(updates), update))
}

// storeSuggestion derives the pre-fill for the following quarter from the
// "next quarter" section of the submitted report.
func (s *Service) storeSuggestion(form models.QuarterlyForm) {
	next := models.NextQuarter(form.Quarter)
	if next == "" {
		return
	}

	suggestion := models.QuarterlySuggestion{PrimaryFocus: form.NextQuarterFocus}
	for _, priority := range form.NextPriorities {
		if priority != "" {
			suggestion.Goals = append(suggestion.Goals, models.Goal{Goal: priority, Status: "On Track"})
		}
	}
	if suggestion.PrimaryFocus == "" && len(suggestion.Goals) == 0 {
		return
	}

	s.cache.Write(store.SuggestionKey(form.FocusArea, next), suggestion)
}
