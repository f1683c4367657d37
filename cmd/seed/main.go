package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/light-bringer/teetime-pricing/internal/app/pricing/domain"
	"github.com/light-bringer/teetime-pricing/internal/services"
)

var (
	spannerDB = flag.String("db", getEnvOrDefault("SPANNER_DB",
		"projects/test-project/instances/dev-instance/databases/teetime-pricing-db"),
		"Full Spanner database path")
	courseID = flag.String("course", "demo-course", "Course ID to seed")
)

func main() {
	flag.Parse()

	ctx := context.Background()
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	svc, err := services.NewServiceOptions(ctx, *spannerDB, logger)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	defer svc.Close()

	eng := svc.Engine

	if err := eng.PutBaseProduct(*courseID, domain.BaseProduct{
		CourseID:  *courseID,
		BasePrice: domain.CentsFromDollars(95),
		CartFee:   domain.CentsFromDollars(20),
	}); err != nil {
		log.Fatalf("Failed to set base product: %v", err)
	}
	fmt.Println("Set base product: $95.00 green fee, $20.00 cart fee")

	season, err := eng.AddSeason(*courseID, domain.Season{
		Name:      "Peak Summer",
		StartDate: "2026-06-01",
		EndDate:   "2026-09-30",
		Priority:  10,
		Active:    true,
	})
	if err != nil {
		log.Fatalf("Failed to add season: %v", err)
	}
	fmt.Printf("Added season: %s (%s)\n", season.Name, season.ID)

	bands := []domain.TimeBand{
		{Name: "Early", StartTime: "06:00", EndTime: "09:00", Active: true},
		{Name: "Prime", StartTime: "09:00", EndTime: "15:00", Active: true},
		{Name: "Twilight", StartTime: "15:00", EndTime: "20:00", Active: true},
	}
	var twilightID string
	for _, b := range bands {
		added, err := eng.AddTimeBand(*courseID, b)
		if err != nil {
			log.Fatalf("Failed to add time band %s: %v", b.Name, err)
		}
		if added.Name == "Twilight" {
			twilightID = added.ID
		}
		fmt.Printf("Added time band: %s %s-%s (%s)\n", added.Name, added.StartTime, added.EndTime, added.ID)
	}

	weekend, err := eng.AddPriceRule(*courseID, domain.PriceRule{
		Name:       "Weekend Surcharge",
		PriceType:  domain.RuleDelta,
		PriceValue: "150.00",
		Priority:   20,
		Active:     true,
		DaysOfWeek: []int64{0, 6},
	})
	if err != nil {
		log.Fatalf("Failed to add weekend rule: %v", err)
	}
	fmt.Printf("Added rule: %s (%s)\n", weekend.Name, weekend.ID)

	twilight, err := eng.AddPriceRule(*courseID, domain.PriceRule{
		Name:       "Twilight Discount",
		PriceType:  domain.RuleMultiplier,
		PriceValue: "0.85",
		Priority:   10,
		Active:     true,
		TimeBandID: twilightID,
	})
	if err != nil {
		log.Fatalf("Failed to add twilight rule: %v", err)
	}
	fmt.Printf("Added rule: %s (%s)\n", twilight.Name, twilight.ID)

	holiday, err := eng.AddSpecialOverride(*courseID, domain.SpecialOverride{
		Name:         "Club Championship",
		StartDate:    "2026-07-04",
		EndDate:      "2026-07-05",
		OverrideType: domain.OverrideBlock,
		Priority:     100,
		Active:       true,
	})
	if err != nil {
		log.Fatalf("Failed to add override: %v", err)
	}
	fmt.Printf("Added override: %s (%s)\n", holiday.Name, holiday.ID)

	if err := eng.Save(ctx, *courseID); err != nil {
		log.Fatalf("Failed to persist course: %v", err)
	}

	fmt.Printf("\n✅ Seeded course %q and saved it to Spanner\n", *courseID)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
