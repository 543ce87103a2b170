package contracts

import (
	"context"

	"github.com/kralluz/imec-formularios-app/internal/app/models"
)

// ConsentExporter produces the export artifact of a stored submission and
// returns its object key.
type ConsentExporter interface {
	Export(ctx context.Context, submission *models.ConsentSubmission) (string, error)
}
