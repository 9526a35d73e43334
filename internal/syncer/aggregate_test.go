// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package syncer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/internal/store"
	"github.com/northstarhouse/strategyhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_InitializeServesCacheFirst(t *testing.T) {
	cache := newTestCache(t)
	total := 100.0
	cache.Write(store.KeyMetrics, &models.Metrics{DonationsTotal: &total})

	release := make(chan struct{})
	fresh := 250.0
	a := NewAggregate("metrics", func(ctx context.Context) (*models.Metrics, error) {
		<-release
		return &models.Metrics{DonationsTotal: &fresh}, nil
	}, cache, store.KeyMetrics, logger.Nop())

	a.Initialize(context.Background())

	value, loaded := a.Value()
	require.True(t, loaded)
	require.NotNil(t, value.DonationsTotal)
	assert.Equal(t, 100.0, *value.DonationsTotal)

	close(release)
	require.Eventually(t, func() bool {
		value, _ := a.Value()
		return value != nil && value.DonationsTotal != nil && *value.DonationsTotal == 250.0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAggregate_FailedRefreshKeepsValue(t *testing.T) {
	cache := newTestCache(t)
	calls := 0
	a := NewAggregate("quarterly-updates", func(ctx context.Context) ([]models.QuarterlyUpdate, error) {
		calls++
		if calls == 1 {
			return []models.QuarterlyUpdate{{FocusArea: "Gardens"}}, nil
		}
		return nil, errors.New("unreachable")
	}, cache, store.KeyQuarterly, logger.Nop())

	require.NoError(t, a.Refresh(context.Background()))
	require.Error(t, a.Refresh(context.Background()))

	value, loaded := a.Value()
	require.True(t, loaded)
	require.Len(t, value, 1)
	assert.Equal(t, "Gardens", value[0].FocusArea)
}

func TestAggregate_SetPersists(t *testing.T) {
	cache := newTestCache(t)
	a := NewAggregate("quarterly-updates", func(ctx context.Context) ([]models.QuarterlyUpdate, error) {
		return nil, errors.New("never called")
	}, cache, store.KeyQuarterly, logger.Nop())

	a.Set([]models.QuarterlyUpdate{{FocusArea: "Programs"}})

	var cached []models.QuarterlyUpdate
	require.True(t, cache.Read(store.KeyQuarterly, &cached))
	require.Len(t, cached, 1)
	assert.Equal(t, "Programs", cached[0].FocusArea)
}

func TestAggregate_ValueBeforeAnyLoad(t *testing.T) {
	cache := newTestCache(t)
	a := NewAggregate("metrics", func(ctx context.Context) (*models.Metrics, error) {
		return nil, errors.New("down")
	}, cache, store.KeyMetrics, logger.Nop())

	value, loaded := a.Value()
	assert.False(t, loaded)
	assert.Nil(t, value)
}
