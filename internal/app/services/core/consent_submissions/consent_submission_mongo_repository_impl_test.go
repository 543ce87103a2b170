package consentSubmissions

import (
	"testing"
	"time"

	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRetryableExportsFilter(t *testing.T) {
	staleBefore := time.Date(2026, 10, 16, 13, 29, 40, 0, time.UTC)

	filter := retryableExportsFilter(staleBefore)

	assert.Equal(t, bson.M{
		"$or": bson.A{
			bson.M{"exportStatus": constvars.ExportStatusFailed},
			bson.M{
				"exportStatus": constvars.ExportStatusPending,
				"createdAt":    bson.M{"$lt": staleBefore},
			},
		},
	}, filter)

	_, err := bson.Marshal(filter)
	assert.NoError(t, err)
}
