package models

import "time"

// Profile is the public-facing contact sub-document of the admin account.
type Profile struct {
	LinkedIn string `bson:"linkedin" json:"linkedin"`
	GitHub   string `bson:"github" json:"github"`
	Twitter  string `bson:"twitter" json:"twitter"`
	Email    string `bson:"email" json:"email"`
	Address  string `bson:"address" json:"address"`
	Mobile   string `bson:"mobile" json:"mobile"`
}

// Account represents the administrator. The system expects at most one of
// these to exist; it is created once by the setup routine and never deleted.
type Account struct {
	ID                 string     `bson:"_id,omitempty" json:"id"`
	Email              string     `bson:"email" json:"email"`
	PasswordHash       string     `bson:"password" json:"-"`
	Name               string     `bson:"name" json:"name"`
	Role               string     `bson:"role" json:"role"`
	Profile            Profile    `bson:"profile" json:"profile"`
	LastPasswordChange *time.Time `bson:"lastPasswordChange,omitempty" json:"lastPasswordChange,omitempty"`
	LastEmailChange    *time.Time `bson:"lastEmailChange,omitempty" json:"lastEmailChange,omitempty"`
	CreatedAt          time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time  `bson:"updatedAt" json:"updatedAt"`
}
