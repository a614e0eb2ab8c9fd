package service

import (
	"errors"
	"testing"

	"whatsapp-crm-backend/internal/logger"
	"whatsapp-crm-backend/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcilerRun(t *testing.T) {
	counterRepo := &fakeCounterRepo{}
	reconciler := NewReconcilerService(counterRepo, "10 3 * * *", logger.New())

	require.NoError(t, reconciler.Run())
	assert.Equal(t, 1, counterRepo.reconcileCalls)
}

func TestReconcilerRunCountsRepairedRows(t *testing.T) {
	counterRepo := &fakeCounterRepo{reconcile: func() (int64, error) { return 3, nil }}
	reconciler := NewReconcilerService(counterRepo, "10 3 * * *", logger.New())

	before := testutil.ToFloat64(metrics.CounterDriftTotal)
	require.NoError(t, reconciler.Run())
	assert.Equal(t, before+3, testutil.ToFloat64(metrics.CounterDriftTotal))

	// A clean pass leaves the drift counter alone
	counterRepo.reconcile = func() (int64, error) { return 0, nil }
	require.NoError(t, reconciler.Run())
	assert.Equal(t, before+3, testutil.ToFloat64(metrics.CounterDriftTotal))
}

func TestReconcilerStartRejectsBadSchedule(t *testing.T) {
	reconciler := NewReconcilerService(&fakeCounterRepo{}, "not a schedule", logger.New())

	err := reconciler.Start()
	assert.Error(t, err)
}

type failingCounterRepo struct {
	fakeCounterRepo
}

func (f *failingCounterRepo) Reconcile() (int64, error) {
	return 0, errors.New("deadlock detected")
}

func TestReconcilerRunPropagatesError(t *testing.T) {
	reconciler := NewReconcilerService(&failingCounterRepo{}, "10 3 * * *", logger.New())

	err := reconciler.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
}
