package models

import "time"

// Project is a portfolio entry. Publicly listable; only the administrator
// creates, edits or deletes them.
type Project struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Technologies []string  `bson:"technologies" json:"technologies"`
	LiveURL      string    `bson:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	GithubURL    string    `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	ImageURL     string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Featured     bool      `bson:"featured" json:"featured"`
	Order        int       `bson:"order" json:"order"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
