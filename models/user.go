package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an identity record. Username and email are globally unique.
// Password holds the bcrypt hash; plaintext is never persisted.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"password,omitempty"`
	Roles    []string           `bson:"roles" json:"roles"`
	Active   bool               `bson:"isActive" json:"active"`
}

// Sanitize strips the credential hash before the record leaves the service.
func (u User) Sanitize() User {
	u.Password = ""
	return u
}
