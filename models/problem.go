package models

import "time"

// Problem is a predefined Sarthi guidance topic.
type Problem struct {
	ID       string `bson:"id" json:"id"`
	Title    string `bson:"title" json:"title"`
	Category string `bson:"category" json:"category"`
}

// ProblemGroup is the catalog grouped for display.
type ProblemGroup struct {
	Category string    `json:"category"`
	Problems []Problem `json:"problems"`
}

// ProblemSelection is what the Sarthi selector emits.
type ProblemSelection struct {
	ProblemID   string `bson:"problemId,omitempty" json:"problemId,omitempty"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Custom      bool   `bson:"custom" json:"custom"`
}

// ConsultationRequest records a submitted Sarthi selection.
type ConsultationRequest struct {
	ID        string           `bson:"id" json:"id"`
	UserID    string           `bson:"userId" json:"userId"`
	Selection ProblemSelection `bson:"selection" json:"selection"`
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
}
