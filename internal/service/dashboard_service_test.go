package service

import (
	"context"
	"testing"
	"time"

	"antrian-truk-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardServiceForTest(now time.Time) (*dashboardService, *fakeUnitOfWork) {
	uow := newFakeUnitOfWork()
	svc := &dashboardService{
		uowFactory: &fakeUowFactory{uow: uow},
		viewCache:  cache.New(time.Minute, time.Minute),
		now:        func() time.Time { return now },
	}
	return svc, uow
}

func addDashboardEntry(t *testing.T, uow *fakeUnitOfWork, category entity.QueueCategory, status entity.QueueStatus, registerTime time.Time, processMinutes int) {
	t.Helper()
	e := &entity.QueueEntry{
		Id:           uuid.New(),
		Category:     category,
		Status:       status,
		CustomerId:   uuid.New(),
		DriverName:   "Budi",
		TruckNumber:  "B 1 A",
		RegisterTime: registerTime,
	}
	if status == entity.StatusSelesai {
		start := registerTime.Add(10 * time.Minute)
		finish := start.Add(time.Duration(processMinutes) * time.Minute)
		e.StartTime = &start
		e.FinishTime = &finish
	}
	require.NoError(t, uow.queueRepo.Create(context.Background(), e))
}

func TestDashboardSummaryCounts(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local)
	svc, uow := newDashboardServiceForTest(now)

	morning := time.Date(2025, 6, 10, 8, 0, 0, 0, time.Local)
	addDashboardEntry(t, uow, entity.CategoryReceiving, entity.StatusMenunggu, morning, 0)
	addDashboardEntry(t, uow, entity.CategoryReceiving, entity.StatusProses, morning, 0)
	addDashboardEntry(t, uow, entity.CategoryDelivery, entity.StatusBatal, morning, 0)
	// SELESAI within SLA (delivery budget 45) and one over it.
	addDashboardEntry(t, uow, entity.CategoryDelivery, entity.StatusSelesai, morning, 40)
	addDashboardEntry(t, uow, entity.CategoryDelivery, entity.StatusSelesai, morning, 60)
	// Yesterday, must not count.
	addDashboardEntry(t, uow, entity.CategoryReceiving, entity.StatusMenunggu, morning.AddDate(0, 0, -1), 0)

	res, err := svc.Summary(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-10", res.Date)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 2, res.Receiving)
	assert.Equal(t, 3, res.Delivery)
	assert.Equal(t, 1, res.Waiting)
	assert.Equal(t, 1, res.Processing)
	assert.Equal(t, 2, res.Done)
	assert.Equal(t, 1, res.Cancelled)
	assert.Equal(t, 50, res.AvgProcessMinutes)
	assert.Equal(t, 50, res.OverSlaPercent)
}

func TestDashboardSummaryIsCached(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local)
	svc, uow := newDashboardServiceForTest(now)

	first, err := svc.Summary(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 0, first.Total)

	// New data without an invalidation; the cached aggregate still serves.
	addDashboardEntry(t, uow, entity.CategoryReceiving, entity.StatusMenunggu, now, 0)
	second, err := svc.Summary(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Total)

	svc.viewCache.Flush()
	third, err := svc.Summary(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, third.Total)
}

func TestDashboardHourlyBuckets(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local)
	svc, uow := newDashboardServiceForTest(now)

	eight := time.Date(2025, 6, 10, 8, 15, 0, 0, time.Local)
	addDashboardEntry(t, uow, entity.CategoryReceiving, entity.StatusMenunggu, eight, 0)
	addDashboardEntry(t, uow, entity.CategoryDelivery, entity.StatusMenunggu, eight.Add(20*time.Minute), 0)

	res, err := svc.Hourly(context.Background(), "2025-06-10")
	require.NoError(t, err)

	require.Len(t, res.Items, 24)
	assert.Equal(t, "08:00", res.Items[8].Hour)
	assert.Equal(t, 2, res.Items[8].Total)
	assert.Equal(t, 1, res.Items[8].Receiving)
	assert.Equal(t, 1, res.Items[8].Delivery)
	assert.Equal(t, 0, res.Items[9].Total)
}

func TestDashboardStatusBreakdownOrder(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local)
	svc, uow := newDashboardServiceForTest(now)

	addDashboardEntry(t, uow, entity.CategoryReceiving, entity.StatusMenunggu, now, 0)
	addDashboardEntry(t, uow, entity.CategoryReceiving, entity.StatusBatal, now, 0)

	res, err := svc.StatusBreakdown(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, res.Items, 5)
	assert.Equal(t, "MENUNGGU", res.Items[0].Name)
	assert.Equal(t, 1, res.Items[0].Value)
	assert.Equal(t, "BATAL", res.Items[4].Name)
	assert.Equal(t, 1, res.Items[4].Value)
}
