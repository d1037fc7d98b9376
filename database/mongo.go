package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"restaurant-api/config"
)

var Client *mongo.Client
var DB *mongo.Database

func ConnectMongo() {
	uri := config.GetEnv("MONGO_URI", "mongodb://localhost:27017")
	dbName := config.GetEnv("DB_NAME", "restaurant_system")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	Client = client
	DB = client.Database(dbName)
}

func Disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := Client.Disconnect(ctx); err != nil {
		log.Println("MongoDB disconnect error:", err)
	}
}

var RestaurantCollection *mongo.Collection
var UserCollection *mongo.Collection
var MenuItemCollection *mongo.Collection
var OrderCollection *mongo.Collection
var ReviewCollection *mongo.Collection

// ImageBucket holds restaurant images in GridFS, tagged with the owning
// restaurant id in file metadata.
var ImageBucket *gridfs.Bucket

func InitCollections() {
	RestaurantCollection = DB.Collection("restaurants")
	UserCollection = DB.Collection("users")
	MenuItemCollection = DB.Collection("menu_items")
	OrderCollection = DB.Collection("orders")
	ReviewCollection = DB.Collection("reviews")

	bucket, err := gridfs.NewBucket(DB)
	if err != nil {
		log.Fatal("GridFS bucket error:", err)
	}
	ImageBucket = bucket
}
