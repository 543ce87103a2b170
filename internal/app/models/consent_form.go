package models

import (
	"github.com/kralluz/imec-formularios-app/internal/pkg/dto/responses"
	"github.com/kralluz/imec-formularios-app/internal/pkg/formschema"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ConsentForm struct {
	ID          primitive.ObjectID    `bson:"_id,omitempty"`
	Title       string                `bson:"title"`
	Description string                `bson:"description,omitempty"`
	Questions   []formschema.Question `bson:"questions"`
	TimeModel   `bson:",inline"`
}

func (f ConsentForm) ConvertIntoResponse() responses.ConsentForm {
	questions := f.Questions
	if questions == nil {
		questions = []formschema.Question{}
	}
	return responses.ConsentForm{
		FormID:      f.ID.Hex(),
		Title:       f.Title,
		Description: f.Description,
		Questions:   questions,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
