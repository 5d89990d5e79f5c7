package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"HealisPortal/util"
)

var DB *mongo.Database

// Connect dials MongoDB and keeps the database handle in DB. Call once at
// startup before OpenCollections is used.
func Connect() error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	name := os.Getenv("MONGODB_DATABASE")
	if name == "" {
		name = "HEALIS-ADMIN"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}
	DB = client.Database(name)
	log.Println("MongoDB successfully connected")
	return nil
}

func OpenCollections(name string) *mongo.Collection {
	return DB.Collection(name)
}

// EnsureIndexes creates the indexes the services rely on: unique billNumber
// on billings, unique email on user and pharmacy accounts.
func EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := OpenCollections(util.BillingCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "billNumber", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}
	for _, coll := range []string{util.UserCollection, util.PharmacyCollection} {
		_, err = OpenCollections(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func CreateOne(ctx context.Context, collection *mongo.Collection, doc interface{}) (*mongo.InsertOneResult, error) {
	return collection.InsertOne(ctx, doc)
}

func FindOne(ctx context.Context, collection *mongo.Collection, filter bson.M, result interface{}, opts ...*options.FindOneOptions) error {
	return collection.FindOne(ctx, filter, opts...).Decode(result)
}

func FindAll(ctx context.Context, collection *mongo.Collection, filter bson.M, results interface{}, opts ...*options.FindOptions) error {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := collection.Find(ctx, filter, opts...)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

func UpdateOne(ctx context.Context, collection *mongo.Collection, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	return collection.UpdateOne(ctx, filter, update)
}

func DeleteOne(ctx context.Context, collection *mongo.Collection, filter bson.M) (*mongo.DeleteResult, error) {
	return collection.DeleteOne(ctx, filter)
}
