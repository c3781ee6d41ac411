package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"nikofree-web/internal/apiclient"
	"nikofree-web/internal/config"
	"nikofree-web/internal/models"
	"nikofree-web/internal/services"
)

// check-events prints what the backend API currently serves: event counts
// by status, the categories, and this weekend's split.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	loc := cfg.ApplyTimezone()

	var api services.EventAPI = apiclient.New(cfg.API.BaseURL, cfg.API.Timeout)
	if cfg.API.Demo {
		api = services.NewMockBackend(time.Now)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout+5*time.Second)
	defer cancel()

	events, err := api.ListEvents(ctx, apiclient.ListEventsParams{PerPage: cfg.API.EventsPerPage})
	if err != nil {
		log.Fatal("Failed to list events:", err)
	}

	fmt.Printf("Checking Events at %s\n", cfg.API.BaseURL)
	fmt.Printf("Total Events: %d\n", len(events))

	byStatus := map[models.EventStatus]int{}
	undated := 0
	for _, event := range events {
		if event == nil {
			continue
		}
		byStatus[event.Status]++
		if event.StartDate == nil {
			undated++
		}
	}
	for _, status := range []models.EventStatus{models.StatusApproved, models.StatusPending, models.StatusRejected} {
		fmt.Printf("%s Events: %d\n", status, byStatus[status])
	}
	fmt.Printf("Events without a start date: %d\n", undated)

	categories, err := api.GetCategories(ctx)
	if err != nil {
		log.Fatal("Failed to get categories:", err)
	}
	fmt.Println("Categories:")
	for _, category := range categories {
		fmt.Printf("  %d: %s\n", category.ID, category.Name)
	}

	now := time.Now().In(loc)
	weekendWindow, nextWeekWindow := services.WeekendWindows(now)
	weekend, nextWeek := services.PartitionEvents(events, now)

	fmt.Printf("This weekend (%s - %s): %d\n",
		weekendWindow.Start.Format("Mon Jan 2"), weekendWindow.End.Add(-time.Second).Format("Mon Jan 2"), len(weekend))
	for _, event := range weekend {
		fmt.Printf("  #%d %s (%s)\n", event.ID, event.Title, event.StartDate.In(loc).Format("Mon 3:04 PM"))
	}
	fmt.Printf("Next week (%s - %s): %d\n",
		nextWeekWindow.Start.Format("Mon Jan 2"), nextWeekWindow.End.Add(-time.Second).Format("Mon Jan 2"), len(nextWeek))
}
