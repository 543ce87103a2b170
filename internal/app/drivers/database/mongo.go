package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/kralluz/imec-formularios-app/internal/app/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	connectionString := fmt.Sprintf("mongodb://%s:%s", driverConfig.MongoDB.Host, driverConfig.MongoDB.Port)
	if driverConfig.MongoDB.Username != "" {
		connectionString = fmt.Sprintf(
			"mongodb://%s:%s@%s:%s",
			driverConfig.MongoDB.Username,
			driverConfig.MongoDB.Password,
			driverConfig.MongoDB.Host,
			driverConfig.MongoDB.Port,
		)
	}

	// answers are free-form, decode nested documents as maps so they
	// serialize back to the same JSON shape
	dbOptions := options.Client().
		ApplyURI(connectionString).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}
