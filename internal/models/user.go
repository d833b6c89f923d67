package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account persisted by the catalog backend
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username       string             `bson:"username" json:"username"`
	Email          string             `bson:"email" json:"email"`
	PasswordHash   string             `bson:"password" json:"-"`
	ProfilePicture *string            `bson:"profilePicture,omitempty" json:"profilePicture"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserProfile is the public view of a user returned with tokens
type UserProfile struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profilePicture"`
}

// Profile returns the public view of u.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:             u.ID.Hex(),
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}

// Page is a page of catalog documents with pagination metadata
type Page struct {
	Items       []CatalogItem
	Total       int64
	TotalPages  int64
	CurrentPage int64
}
