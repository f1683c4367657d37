package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	projectID  = flag.String("project", getEnvOrDefault("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	instanceID = flag.String("instance", getEnvOrDefault("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	databaseID = flag.String("database", getEnvOrDefault("SPANNER_DATABASE_ID", "teetime-pricing-db"), "Spanner database ID")
)

// ddlStatements defines the five pricing tables. Every table is keyed by
// course first, so a whole course can be replaced with key-range deletes.
var ddlStatements = []string{
	`CREATE TABLE base_products (
		course_id STRING(64) NOT NULL,
		base_price INT64 NOT NULL,
		cart_fee INT64 NOT NULL,
		caddie_fee INT64 NOT NULL
	) PRIMARY KEY (course_id)`,
	`CREATE TABLE seasons (
		course_id STRING(64) NOT NULL,
		season_id STRING(64) NOT NULL,
		name STRING(256) NOT NULL,
		start_date STRING(10) NOT NULL,
		end_date STRING(10) NOT NULL,
		priority INT64 NOT NULL,
		active BOOL NOT NULL
	) PRIMARY KEY (course_id, season_id)`,
	`CREATE TABLE time_bands (
		course_id STRING(64) NOT NULL,
		band_id STRING(64) NOT NULL,
		name STRING(256) NOT NULL,
		start_time STRING(5) NOT NULL,
		end_time STRING(5) NOT NULL,
		active BOOL NOT NULL
	) PRIMARY KEY (course_id, band_id)`,
	`CREATE TABLE price_rules (
		course_id STRING(64) NOT NULL,
		rule_id STRING(64) NOT NULL,
		name STRING(256) NOT NULL,
		price_type STRING(16) NOT NULL,
		price_value STRING(32) NOT NULL,
		priority INT64 NOT NULL,
		active BOOL NOT NULL,
		effective_from STRING(10),
		effective_to STRING(10),
		season_id STRING(64),
		time_band_id STRING(64),
		days_of_week ARRAY<INT64>,
		lead_time_min FLOAT64,
		lead_time_max FLOAT64,
		occupancy_min INT64,
		occupancy_max INT64,
		players_min INT64,
		players_max INT64,
		min_price INT64,
		max_price INT64,
		round_to INT64,
		position INT64 NOT NULL
	) PRIMARY KEY (course_id, rule_id)`,
	`CREATE TABLE special_overrides (
		course_id STRING(64) NOT NULL,
		override_id STRING(64) NOT NULL,
		name STRING(256) NOT NULL,
		start_date STRING(10) NOT NULL,
		end_date STRING(10) NOT NULL,
		start_time STRING(5),
		end_time STRING(5),
		override_type STRING(16) NOT NULL,
		price_value INT64,
		priority INT64 NOT NULL,
		active BOOL NOT NULL
	) PRIMARY KEY (course_id, override_id)`,
}

func main() {
	flag.Parse()

	ctx := context.Background()

	if emulatorHost := os.Getenv("SPANNER_EMULATOR_HOST"); emulatorHost != "" {
		log.Printf("Using Spanner emulator at %s", emulatorHost)
	}

	if err := run(ctx); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully!")
}

func run(ctx context.Context) error {
	if err := ensureInstance(ctx); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}

	if err := ensureDatabase(ctx); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}

	if err := applyDDL(ctx); err != nil {
		return fmt.Errorf("failed to apply DDL: %w", err)
	}

	return nil
}

func ensureInstance(ctx context.Context) error {
	log.Printf("Ensuring instance %s exists...", *instanceID)

	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	instanceName := fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID)

	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{
		Name: instanceName,
	})
	if err == nil {
		log.Println("Instance already exists")
		return nil
	}

	if status.Code(err) == codes.NotFound {
		log.Println("Creating instance...")
		op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
			Parent:     fmt.Sprintf("projects/%s", *projectID),
			InstanceId: *instanceID,
			Instance: &instancepb.Instance{
				Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", *projectID),
				DisplayName: "Development Instance",
				NodeCount:   1,
			},
		})
		if err != nil {
			if status.Code(err) != codes.AlreadyExists {
				return fmt.Errorf("failed to create instance: %w", err)
			}
			log.Println("Instance already exists")
			return nil
		}

		// The emulator may complete immediately; tolerate races on wait.
		if _, err := op.Wait(ctx); err != nil {
			if status.Code(err) != codes.AlreadyExists {
				log.Printf("Warning during instance creation: %v", err)
			}
		}

		log.Println("Instance created successfully")
		return nil
	}

	log.Printf("Warning: unexpected error checking instance: %v", err)
	return nil
}

func ensureDatabase(ctx context.Context) error {
	log.Printf("Ensuring database %s exists...", *databaseID)

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	dbPath := fmt.Sprintf("projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)

	_, err = adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{
		Name: dbPath,
	})
	if err == nil {
		log.Println("Database already exists")
		return nil
	}

	if status.Code(err) == codes.NotFound {
		log.Println("Creating database...")
		op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
			Parent:          fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID),
			CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", *databaseID),
		})
		if err != nil {
			if status.Code(err) != codes.AlreadyExists {
				return fmt.Errorf("failed to create database: %w", err)
			}
			log.Println("Database already exists")
			return nil
		}

		if _, err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to wait for database creation: %w", err)
		}

		log.Println("Database created successfully")
		return nil
	}

	if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
		log.Printf("Proceeding with database (emulator mode): %v", err)
		return nil
	}

	return fmt.Errorf("failed to check database: %w", err)
}

func applyDDL(ctx context.Context) error {
	log.Printf("Applying schema (%d statements)...", len(ddlStatements))

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	dbPath := fmt.Sprintf("projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)

	op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   dbPath,
		Statements: ddlStatements,
	})
	if err != nil {
		return fmt.Errorf("failed to start DDL update: %w", err)
	}

	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to apply DDL: %w", err)
	}

	log.Println("Schema applied")
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
