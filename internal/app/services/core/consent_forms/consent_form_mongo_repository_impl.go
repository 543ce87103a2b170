package consentForms

import (
	"context"
	"errors"

	"github.com/kralluz/imec-formularios-app/internal/app/contracts"
	"github.com/kralluz/imec-formularios-app/internal/app/models"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ConsentFormMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsentFormMongoRepository(db *mongo.Client, dbName string) contracts.ConsentFormRepository {
	return &ConsentFormMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsentForms),
	}
}

func (repo *ConsentFormMongoRepository) CreateConsentForm(ctx context.Context, form *models.ConsentForm) (string, error) {
	if form.ID.IsZero() {
		form.ID = primitive.NewObjectID()
	}
	_, err := repo.Collection.InsertOne(ctx, form)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return form.ID.Hex(), nil
}

func (repo *ConsentFormMongoRepository) UpdateConsentForm(ctx context.Context, form *models.ConsentForm) error {
	update := bson.M{
		"$set": bson.M{
			"title":       form.Title,
			"description": form.Description,
			"questions":   form.Questions,
			"updatedAt":   form.UpdatedAt,
		},
	}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": form.ID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrConsentFormNotFound(nil, form.ID.Hex())
	}
	return nil
}

func (repo *ConsentFormMongoRepository) FindByID(ctx context.Context, formID string) (*models.ConsentForm, error) {
	var form models.ConsentForm
	objectID, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &form, nil
}

func (repo *ConsentFormMongoRepository) FindAll(ctx context.Context) ([]models.ConsentForm, error) {
	forms := make([]models.ConsentForm, 0)
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &forms)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return forms, nil
}

func (repo *ConsentFormMongoRepository) DeleteByID(ctx context.Context, formID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
