package main

import (
	"context"
	"flag"
	"time"

	"restaurant-api/config"
	"restaurant-api/database"
	"restaurant-api/seed"
)

func main() {
	restaurants := flag.Int("restaurants", 150, "number of restaurants to generate")
	users := flag.Int("users", 100, "number of users to generate")
	menuItems := flag.Int("menu-items", 500, "number of menu items to generate")
	orders := flag.Int("orders", 100, "number of orders to generate")
	reviews := flag.Int("reviews", 100, "number of reviews to generate")
	flag.Parse()

	config.LoadEnv()
	logger := config.NewLogger()

	database.ConnectMongo()
	database.InitCollections()
	defer database.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	logger.Info().Msg("Recreating collections with validators")
	if err := database.SetupCollections(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Collection setup failed")
	}

	logger.Info().Msg("Creating indexes")
	if err := database.CreateIndexes(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Index creation failed")
	}

	counts := seed.Counts{
		Restaurants: *restaurants,
		Users:       *users,
		MenuItems:   *menuItems,
		Orders:      *orders,
		Reviews:     *reviews,
	}

	logger.Info().
		Int("restaurants", counts.Restaurants).
		Int("users", counts.Users).
		Int("menu_items", counts.MenuItems).
		Int("orders", counts.Orders).
		Int("reviews", counts.Reviews).
		Msg("Generating data")

	total, err := seed.Load(ctx, database.DB, counts)
	if err != nil {
		logger.Fatal().Err(err).Msg("Data load failed")
	}

	logger.Info().Int64("documents", total).Msg("Seed data loaded")
}
