package models

import "time"

// User represents a registered customer.
type User struct {
	ID        string    `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" bson:"name" gorm:"type:varchar(255)"`
	Email     string    `json:"email" bson:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password  string    `json:"-" bson:"password" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Phone     string    `json:"phone" bson:"phone" gorm:"type:varchar(50)"`
	Address   string    `json:"address" bson:"address"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// UserProfile is the public view of a user returned by the auth routes.
type UserProfile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Profile strips the identity and credential fields from u.
func (u *User) Profile() UserProfile {
	return UserProfile{
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
	}
}
