// Package seed generates randomized but referentially consistent sample data
// for the restaurant collections: menu items belong to real restaurants,
// order line items reference real menu items and snapshot their current
// price, and reviews reference real users, restaurants and orders.
package seed

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"restaurant-api/models"
)

// Counts controls how many documents of each kind Load inserts.
type Counts struct {
	Restaurants int
	Users       int
	MenuItems   int
	Orders      int
	Reviews     int
}

var (
	nameAdjectives = []string{
		"Golden", "Rustic", "Blue", "Crimson", "Urban", "Coastal",
		"Velvet", "Smoky", "Wild", "Humble", "Copper", "Lucky",
	}
	nameNouns = []string{
		"Fork", "Spoon", "Kettle", "Olive", "Lantern", "Harvest",
		"Anchor", "Garden", "Oven", "Table", "Barrel", "Hearth",
	}
	nameSuffixes = []string{"Bistro", "Kitchen", "Grill", "Cantina", "Diner", "House"}

	categories = []string{"italian", "chinese", "japanese", "mexican", "vegan", "fastfood"}
	itemTags   = []string{"spicy", "gluten-free", "vegan", "dessert", "kids"}

	dishWords = []string{
		"Ravioli", "Dumpling", "Taco", "Ramen", "Burger", "Salad",
		"Curry", "Skewer", "Flatbread", "Chowder", "Risotto", "Wrap",
	}

	filler = []string{
		"fresh", "slow", "roasted", "house", "seasonal", "crispy",
		"local", "spiced", "smoked", "daily", "handmade", "classic",
	}
	statuses = []string{"pending", "completed", "cancelled"}
)

func sample(rng *rand.Rand, pool []string, k int) []string {
	idx := rng.Perm(len(pool))[:k]
	out := make([]string, k)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

func sentence(rng *rand.Rand, words int) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = filler[rng.Intn(len(filler))]
	}
	return strings.Join(parts, " ") + "."
}

func timeBetween(rng *rand.Rand, start, end time.Time) time.Time {
	return start.Add(time.Duration(rng.Int63n(int64(end.Sub(start)))))
}

func roundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}

func Restaurants(rng *rand.Rand, n int) []models.Restaurant {
	restaurants := make([]models.Restaurant, n)
	for i := range restaurants {
		lon := rng.Float64()*360 - 180
		lat := rng.Float64()*180 - 90
		restaurants[i] = models.Restaurant{
			ID: primitive.NewObjectID(),
			Name: fmt.Sprintf("%s %s %s",
				nameAdjectives[rng.Intn(len(nameAdjectives))],
				nameNouns[rng.Intn(len(nameNouns))],
				nameSuffixes[rng.Intn(len(nameSuffixes))]),
			Description: sentence(rng, 10),
			Location: models.GeoPoint{
				Type:        "Point",
				Coordinates: []float64{lon, lat},
			},
			Categories: sample(rng, categories, 2),
		}
	}
	return restaurants
}

// Users get sequential emails so the unique index never trips during a load.
func Users(rng *rand.Rand, n int) []models.User {
	now := time.Now().UTC()
	users := make([]models.User, n)
	for i := range users {
		users[i] = models.User{
			ID:        primitive.NewObjectID(),
			Username:  fmt.Sprintf("%s_%s%d", filler[rng.Intn(len(filler))], nameNouns[rng.Intn(len(nameNouns))], i),
			Email:     fmt.Sprintf("user%d@example.com", i),
			CreatedAt: timeBetween(rng, now.AddDate(-2, 0, 0), now),
		}
	}
	return users
}

func MenuItems(rng *rand.Rand, n int, restaurants []models.Restaurant) []models.MenuItem {
	items := make([]models.MenuItem, n)
	for i := range items {
		items[i] = models.MenuItem{
			ID:           primitive.NewObjectID(),
			RestaurantID: restaurants[rng.Intn(len(restaurants))].ID,
			Name:         dishWords[rng.Intn(len(dishWords))],
			Description:  sentence(rng, 6),
			Price:        roundPrice(5 + rng.Float64()*45),
			Tags:         sample(rng, itemTags, 2),
		}
	}
	return items
}

// Orders reference real users, restaurants and menu items. Each line item
// captures the menu item's current price as its unit price.
func Orders(rng *rand.Rand, n int, users []models.User, restaurants []models.Restaurant, menuItems []models.MenuItem) []models.Order {
	now := time.Now().UTC()
	orders := make([]models.Order, n)
	for i := range orders {
		k := 2 + rng.Intn(4)
		if k > len(menuItems) {
			k = len(menuItems)
		}
		lineItems := make([]models.OrderItem, k)
		for j, idx := range rng.Perm(len(menuItems))[:k] {
			lineItems[j] = models.OrderItem{
				ItemID:    menuItems[idx].ID,
				Quantity:  1 + rng.Intn(3),
				UnitPrice: menuItems[idx].Price,
			}
		}
		orders[i] = models.Order{
			ID:           primitive.NewObjectID(),
			UserID:       users[rng.Intn(len(users))].ID,
			RestaurantID: restaurants[rng.Intn(len(restaurants))].ID,
			Items:        lineItems,
			Status:       statuses[rng.Intn(len(statuses))],
			CreatedAt:    timeBetween(rng, now.AddDate(0, -6, 0), now),
		}
	}
	return orders
}

func Reviews(rng *rand.Rand, n int, users []models.User, restaurants []models.Restaurant, orders []models.Order) []models.Review {
	now := time.Now().UTC()
	reviews := make([]models.Review, n)
	for i := range reviews {
		restaurantID := restaurants[rng.Intn(len(restaurants))].ID
		orderID := orders[rng.Intn(len(orders))].ID
		reviews[i] = models.Review{
			ID:           primitive.NewObjectID(),
			UserID:       users[rng.Intn(len(users))].ID,
			RestaurantID: &restaurantID,
			OrderID:      &orderID,
			Rating:       1 + rng.Intn(5),
			Comment:      sentence(rng, 12),
			CreatedAt:    timeBetween(rng, now.AddDate(0, -3, 0), now),
		}
	}
	return reviews
}

func asDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}

// Load generates one consistent data set and inserts it. Returns the total
// number of documents written.
func Load(ctx context.Context, db *mongo.Database, counts Counts) (int64, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	restaurants := Restaurants(rng, counts.Restaurants)
	users := Users(rng, counts.Users)
	menuItems := MenuItems(rng, counts.MenuItems, restaurants)
	orders := Orders(rng, counts.Orders, users, restaurants, menuItems)
	reviews := Reviews(rng, counts.Reviews, users, restaurants, orders)

	inserts := []struct {
		collection string
		docs       []interface{}
	}{
		{"restaurants", asDocs(restaurants)},
		{"users", asDocs(users)},
		{"menu_items", asDocs(menuItems)},
		{"orders", asDocs(orders)},
		{"reviews", asDocs(reviews)},
	}

	var total int64
	for _, ins := range inserts {
		if len(ins.docs) == 0 {
			continue
		}
		result, err := db.Collection(ins.collection).InsertMany(ctx, ins.docs)
		if err != nil {
			return total, fmt.Errorf("insert %s: %w", ins.collection, err)
		}
		total += int64(len(result.InsertedIDs))
	}
	return total, nil
}
