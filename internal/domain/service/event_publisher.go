package service

import (
	"context"
	"time"
)

// Survey event types.
const (
	EventSurveyCreated     = "survey.created"
	EventSurveyDeleted     = "survey.deleted"
	EventResponseSubmitted = "response.submitted"
)

// SurveyEvent describes a committed change to a survey or its responses.
type SurveyEvent struct {
	Type             string    `json:"type"`
	RequestID        string    `json:"request_id,omitempty"` // For distributed tracing
	SurveyID         string    `json:"survey_id"`
	UserID           string    `json:"user_id"`
	ResponseID       string    `json:"response_id,omitempty"`
	DeletedResponses int64     `json:"deleted_responses,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSurveyEvent publishes a survey event for async consumers
	PublishSurveyEvent(ctx context.Context, event *SurveyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
