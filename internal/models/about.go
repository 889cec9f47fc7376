package models

import "time"

// About is the singleton bio document backing the public about section.
// When no document exists the public endpoint serves EmptyAbout() instead of
// an error.
type About struct {
	ID           string    `bson:"_id,omitempty" json:"-"`
	Bio          string    `bson:"bio" json:"bio"`
	Title        string    `bson:"title" json:"title"`
	Skills       []string  `bson:"skills" json:"skills"`
	Experience   string    `bson:"experience" json:"experience"`
	Education    string    `bson:"education" json:"education"`
	DisplayName  string    `bson:"displayName" json:"displayName"`
	Initials     string    `bson:"initials" json:"initials"`
	ProfileImage string    `bson:"profileImage" json:"profileImage"`
	CreatedAt    time.Time `bson:"createdAt" json:"-"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"-"`
}

// EmptyAbout returns the structurally complete zero document: every field
// present, strings empty and the skills list non-nil.
func EmptyAbout() *About {
	return &About{Skills: []string{}}
}
