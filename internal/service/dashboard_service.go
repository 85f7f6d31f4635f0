package service

import (
	"context"
	"fmt"
	"time"

	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/pkg/dateutil"
	"antrian-truk-be/internal/repository/contract"
	"antrian-truk-be/internal/repository/unitofwork"

	"github.com/patrickmn/go-cache"
)

// Process-time SLA per category, in minutes. Entries finishing above this are
// counted as over-SLA on the dashboard.
const (
	slaProcessReceivingMinutes = 60
	slaProcessDeliveryMinutes  = 45
)

type IDashboardService interface {
	Summary(ctx context.Context, date string) (*dto.DashboardSummaryResponse, error)
	Hourly(ctx context.Context, date string) (*dto.DashboardHourlyResponse, error)
	StatusBreakdown(ctx context.Context, date string) (*dto.DashboardStatusResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	viewCache  *cache.Cache
	now        func() time.Time
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, viewCache *cache.Cache) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		viewCache:  viewCache,
		now:        time.Now,
	}
}

func (s *dashboardService) Summary(ctx context.Context, date string) (*dto.DashboardSummaryResponse, error) {
	day := s.resolveDay(date)

	cacheKey := "dashboard:summary:" + day.Format(dateutil.DateLayout)
	if cached, found := s.viewCache.Get(cacheKey); found {
		return cached.(*dto.DashboardSummaryResponse), nil
	}

	entries, err := s.loadDay(ctx, day)
	if err != nil {
		return nil, err
	}

	res := &dto.DashboardSummaryResponse{
		Date:  day.Format(dateutil.DateLayout),
		Total: len(entries),
	}

	var processMinutesSum, processed, overSla int
	for _, e := range entries {
		switch e.Category {
		case entity.CategoryReceiving:
			res.Receiving++
		case entity.CategoryDelivery:
			res.Delivery++
		}

		switch e.Status {
		case entity.StatusMenunggu, entity.StatusInWH:
			res.Waiting++
		case entity.StatusProses:
			res.Processing++
		case entity.StatusSelesai:
			res.Done++
		case entity.StatusBatal:
			res.Cancelled++
		}

		if e.Status == entity.StatusSelesai && e.StartTime != nil && e.FinishTime != nil {
			minutes := dateutil.MinutesBetween(*e.StartTime, *e.FinishTime)
			if minutes < 0 {
				continue
			}
			processed++
			processMinutesSum += minutes

			limit := slaProcessReceivingMinutes
			if e.Category == entity.CategoryDelivery {
				limit = slaProcessDeliveryMinutes
			}
			if minutes > limit {
				overSla++
			}
		}
	}

	if processed > 0 {
		res.AvgProcessMinutes = processMinutesSum / processed
		res.OverSlaPercent = overSla * 100 / processed
	}

	s.viewCache.Set(cacheKey, res, cache.DefaultExpiration)
	return res, nil
}

func (s *dashboardService) Hourly(ctx context.Context, date string) (*dto.DashboardHourlyResponse, error) {
	day := s.resolveDay(date)

	cacheKey := "dashboard:hourly:" + day.Format(dateutil.DateLayout)
	if cached, found := s.viewCache.Get(cacheKey); found {
		return cached.(*dto.DashboardHourlyResponse), nil
	}

	entries, err := s.loadDay(ctx, day)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DashboardHourlyItem, 24)
	for h := range items {
		items[h].Hour = fmt.Sprintf("%02d:00", h)
	}
	for _, e := range entries {
		h := e.RegisterTime.Hour()
		items[h].Total++
		switch e.Category {
		case entity.CategoryReceiving:
			items[h].Receiving++
		case entity.CategoryDelivery:
			items[h].Delivery++
		}
	}

	res := &dto.DashboardHourlyResponse{Date: day.Format(dateutil.DateLayout), Items: items}
	s.viewCache.Set(cacheKey, res, cache.DefaultExpiration)
	return res, nil
}

func (s *dashboardService) StatusBreakdown(ctx context.Context, date string) (*dto.DashboardStatusResponse, error) {
	day := s.resolveDay(date)

	cacheKey := "dashboard:status:" + day.Format(dateutil.DateLayout)
	if cached, found := s.viewCache.Get(cacheKey); found {
		return cached.(*dto.DashboardStatusResponse), nil
	}

	entries, err := s.loadDay(ctx, day)
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.QueueStatus]int)
	for _, e := range entries {
		counts[e.Status]++
	}

	order := append(append([]entity.QueueStatus{}, entity.StatusFlow...), entity.StatusBatal)
	items := make([]dto.DashboardStatusItem, len(order))
	for i, status := range order {
		items[i] = dto.DashboardStatusItem{Name: string(status), Value: counts[status]}
	}

	res := &dto.DashboardStatusResponse{Date: day.Format(dateutil.DateLayout), Items: items}
	s.viewCache.Set(cacheKey, res, cache.DefaultExpiration)
	return res, nil
}

func (s *dashboardService) resolveDay(date string) time.Time {
	if t, ok := dateutil.ParseDateOnly(date); ok {
		return t
	}
	return s.now()
}

func (s *dashboardService) loadDay(ctx context.Context, day time.Time) ([]*entity.QueueEntry, error) {
	from, to := dateutil.DayRange(day)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.QueueEntryRepository().FindAll(ctx, contract.QueueEntryFilter{
		From:     &from,
		To:       &to,
		SortBy:   "registerTime",
		SortDesc: false,
	})
}
