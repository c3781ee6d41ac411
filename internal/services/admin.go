package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"nikofree-web/internal/models"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ActivityItem is an audit entry ready for display
type ActivityItem struct {
	Admin       string
	Action      string
	Description string
	Ago         string
}

// AdminOverview is everything the admin dashboard shows
type AdminOverview struct {
	Stats           models.DashboardStats
	Revenue         string
	PlatformFees    string
	Activity        []ActivityItem
	PendingPartners []models.Partner
	PendingEvents   []*models.Event
}

// AdminService assembles the admin dashboard
type AdminService struct {
	api AdminAPI
}

// NewAdminService creates a new admin service
func NewAdminService(api AdminAPI) *AdminService {
	return &AdminService{api: api}
}

// Dashboard fetches the stats and both moderation queues concurrently.
// Any failed request fails the whole dashboard.
func (s *AdminService) Dashboard(ctx context.Context, token string, now time.Time) (*AdminOverview, error) {
	var (
		dashboard *models.AdminDashboard
		partners  []models.Partner
		events    []*models.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dashboard, err = s.api.AdminDashboard(gctx, token)
		if err != nil {
			return fmt.Errorf("failed to load dashboard stats: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		partners, err = s.api.AdminPendingPartners(gctx, token)
		if err != nil {
			return fmt.Errorf("failed to load pending partners: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = s.api.AdminPendingEvents(gctx, token)
		if err != nil {
			return fmt.Errorf("failed to load pending events: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := &AdminOverview{
		Stats:           dashboard.Stats,
		Revenue:         FormatCurrency(dashboard.Stats.TotalRevenue),
		PlatformFees:    FormatCurrency(dashboard.Stats.PlatformFees),
		PendingPartners: partners,
		PendingEvents:   events,
	}
	for _, activity := range dashboard.RecentActivity {
		item := ActivityItem{
			Admin:       activity.AdminEmail,
			Action:      activity.Action,
			Description: activity.Description,
		}
		if at, ok := models.ParseAPITime(activity.CreatedAt); ok {
			item.Ago = FormatTimeAgo(at, now)
		}
		overview.Activity = append(overview.Activity, item)
	}
	return overview, nil
}

// FormatCurrency formats a shilling amount with no decimals
func FormatCurrency(amount float64) string {
	return FormatKES(decimal.NewFromFloat(amount))
}

var timeAgoMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "just now", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: time.Minute},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: time.Hour},
	{D: humanize.Day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: humanize.Day},
	{D: math.MaxInt64, Format: "%d days %s", DivBy: humanize.Day},
}

// FormatTimeAgo describes how long before now then was
func FormatTimeAgo(then, now time.Time) string {
	return humanize.CustomRelTime(then, now, "ago", "from now", timeAgoMagnitudes)
}
