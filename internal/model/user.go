package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is the auth identity: email plus password hash. Profile data lives in
// the linked UserProfile row, created as the second step of sign-up.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password     string `gorm:"type:varchar(255);not null" json:"-"`
	TokenVersion string `gorm:"type:varchar(255);default:''" json:"-"`

	Profile *UserProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// SetPassword hashes and sets the user's password.
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies the provided password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserProfile holds display data linked 1:1 to a User identity.
type UserProfile struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FullName    string    `gorm:"type:varchar(255)" json:"full_name" validate:"required"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number"`
	Role        string    `gorm:"type:varchar(50);default:'user'" json:"role"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// UserResponse is used for API responses (without sensitive data).
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
}

// ToResponse converts User (+ optional Profile) to UserResponse.
func (u *User) ToResponse() UserResponse {
	resp := UserResponse{
		ID:    u.ID,
		Email: u.Email,
	}
	if u.Profile != nil {
		resp.FullName = u.Profile.FullName
		resp.PhoneNumber = u.Profile.PhoneNumber
		resp.Role = u.Profile.Role
	}
	return resp
}
