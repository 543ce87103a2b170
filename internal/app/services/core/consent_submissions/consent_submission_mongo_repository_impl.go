package consentSubmissions

import (
	"context"
	"errors"
	"time"

	"github.com/kralluz/imec-formularios-app/internal/app/contracts"
	"github.com/kralluz/imec-formularios-app/internal/app/models"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/exceptions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ConsentSubmissionMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsentSubmissionMongoRepository(db *mongo.Client, dbName string) contracts.ConsentSubmissionRepository {
	return &ConsentSubmissionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsentSubmissions),
	}
}

func (repo *ConsentSubmissionMongoRepository) CreateSubmission(ctx context.Context, submission *models.ConsentSubmission) error {
	_, err := repo.Collection.InsertOne(ctx, submission)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *ConsentSubmissionMongoRepository) FindByID(ctx context.Context, submissionID string) (*models.ConsentSubmission, error) {
	var submission models.ConsentSubmission
	err := repo.Collection.FindOne(ctx, bson.M{"_id": submissionID}).Decode(&submission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &submission, nil
}

func (repo *ConsentSubmissionMongoRepository) FindByFormID(ctx context.Context, formID string) ([]models.ConsentSubmission, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return repo.find(ctx, bson.M{"formId": formID}, findOptions)
}

// FindRetryableExports returns, oldest first, the submissions whose export
// failed and those still pending since before staleBefore. A pending record
// that old was abandoned mid export or could not be marked exported.
func (repo *ConsentSubmissionMongoRepository) FindRetryableExports(ctx context.Context, staleBefore time.Time, limit int) ([]models.ConsentSubmission, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))
	return repo.find(ctx, retryableExportsFilter(staleBefore), findOptions)
}

func retryableExportsFilter(staleBefore time.Time) bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"exportStatus": constvars.ExportStatusFailed},
			bson.M{
				"exportStatus": constvars.ExportStatusPending,
				"createdAt":    bson.M{"$lt": staleBefore},
			},
		},
	}
}

func (repo *ConsentSubmissionMongoRepository) MarkExported(ctx context.Context, submissionID, documentObjectKey string, exportedAt time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"exportStatus":      constvars.ExportStatusExported,
			"documentObjectKey": documentObjectKey,
			"exportedAt":        exportedAt,
		},
		"$unset": bson.M{"exportError": ""},
		"$inc":   bson.M{"exportAttempts": 1},
	}
	return repo.update(ctx, submissionID, update)
}

func (repo *ConsentSubmissionMongoRepository) MarkExportFailed(ctx context.Context, submissionID, exportError string) error {
	update := bson.M{
		"$set": bson.M{
			"exportStatus": constvars.ExportStatusFailed,
			"exportError":  exportError,
		},
		"$inc": bson.M{"exportAttempts": 1},
	}
	return repo.update(ctx, submissionID, update)
}

func (repo *ConsentSubmissionMongoRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.ConsentSubmission, error) {
	submissions := make([]models.ConsentSubmission, 0)
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &submissions)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return submissions, nil
}

func (repo *ConsentSubmissionMongoRepository) update(ctx context.Context, submissionID string, update bson.M) error {
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": submissionID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrSubmissionNotFound(nil, submissionID)
	}
	return nil
}
