package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/StarSailors_Go/internal/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	ctx := context.Background()
	dbPool, err := database.NewPool(ctx, connString, 2, time.Minute, 5*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	fmt.Println("--- Row counts ---")
	for _, table := range []string{"profiles", "anomalies", "classifications", "missions", "inventory", "mineral_deposits", "submissions"} {
		var n int64
		if err := dbPool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&n); err != nil {
			log.Printf("Failed to count %s: %v", table, err)
			continue
		}
		fmt.Printf("%-18s %d\n", table, n)
	}

	fmt.Println("\n--- Latest classifications ---")
	rows, err := dbPool.Query(ctx, `
		SELECT id, author, anomaly, classificationtype, created_at
		FROM classifications
		ORDER BY created_at DESC
		LIMIT 10
	`)
	if err != nil {
		log.Printf("Failed to query classifications: %v", err)
		return
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id, anomaly int64
			author, typ string
			createdAt   time.Time
		)
		if err := rows.Scan(&id, &author, &anomaly, &typ, &createdAt); err != nil {
			log.Printf("Failed to scan classification: %v", err)
			continue
		}
		fmt.Printf("ID: %d, Author: %s, Anomaly: %d, Type: %s, CreatedAt: %s\n", id, author, anomaly, typ, createdAt.Format(time.RFC3339))
	}

	fmt.Println("\n--- Unlocked missions ---")
	rows2, err := dbPool.Query(ctx, `
		SELECT id, owner, item, configuration->'missions unlocked'
		FROM inventory
		WHERE configuration ? 'missions unlocked'
		LIMIT 20
	`)
	if err != nil {
		log.Printf("Failed to query inventory: %v", err)
		return
	}
	defer rows2.Close()
	for rows2.Next() {
		var (
			id       int64
			owner    string
			item     int
			missions []string
		)
		if err := rows2.Scan(&id, &owner, &item, &missions); err != nil {
			log.Printf("Failed to scan inventory: %v", err)
			continue
		}
		fmt.Printf("InventoryID: %d, Owner: %s, Item: %d, Missions: %v\n", id, owner, item, missions)
	}
}
