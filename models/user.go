// models/user.go
package models

import "time"

// User represents a Smart-Cal account holder.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	Devices      []Device  `bson:"devices,omitempty" json:"devices,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updated_at"`
}

// UserRegistration is the payload for /api/users/register.
type UserRegistration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	DeviceID string `json:"device_id" binding:"required"`
}

// UserCredentials is the payload for /api/users/login.
type UserCredentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	DeviceID string `json:"device_id" binding:"required"`
}

// AuthResult is returned on successful register/login.
type AuthResult struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}
