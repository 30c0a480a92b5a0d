package model

import (
	"time"

	"github.com/google/uuid"
)

// SurveyModel mirrors the 'surveys' table. Questions are stored as a JSON array of prompts.
type SurveyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Questions   []string  `gorm:"type:jsonb;serializer:json;not null"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_surveys_owner_id"`
	CreatedAt   time.Time `gorm:"not null;index:idx_surveys_created_at"`
}

// TableName explicitly sets the table name for GORM.
func (SurveyModel) TableName() string {
	return "surveys"
}

// AnswerModel is one element of the 'responses.answers' JSON column.
type AnswerModel struct {
	QuestionIndex int    `json:"question_index"`
	Question      string `json:"question"`
	Text          string `json:"text"`
}

// ResponseModel mirrors the 'responses' table. survey_id carries no foreign key so a
// survey delete that stops halfway leaves orphans for the sweeper instead of failing.
type ResponseModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	SurveyID  uuid.UUID     `gorm:"type:uuid;not null;index:idx_responses_survey_user,priority:1"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;index:idx_responses_survey_user,priority:2"`
	Answers   []AnswerModel `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt time.Time     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ResponseModel) TableName() string {
	return "responses"
}
