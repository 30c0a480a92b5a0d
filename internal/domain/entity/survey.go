package entity

import (
	"time"

	"github.com/google/uuid"
)

// Survey is an ordered list of open-ended questions owned by one user.
type Survey struct {
	ID          uuid.UUID
	Title       string
	Description string
	Questions   []string
	OwnerID     uuid.UUID // Immutable after creation.
	CreatedAt   time.Time
}

// IsOwnedBy reports whether userID may mutate the survey or read its responses.
func (s *Survey) IsOwnedBy(userID uuid.UUID) bool {
	return s.OwnerID == userID
}

// Response is one respondent's submission for a survey.
type Response struct {
	ID        uuid.UUID
	SurveyID  uuid.UUID
	UserID    uuid.UUID
	Answers   []Answer
	CreatedAt time.Time
}

// Answer correlates a question, by position, with its answer text. Question keeps
// the prompt as it read at submission time.
type Answer struct {
	QuestionIndex int    `json:"question_index"`
	Question      string `json:"question"`
	Text          string `json:"text"`
}
