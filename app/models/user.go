package models

// User is a registered shopper.
type User struct {
	UserID           uint   `gorm:"column:user_id;primaryKey" json:"user_id"`
	Name             string `gorm:"column:name;type:text;not null" json:"name"`
	Email            string `gorm:"column:email;type:text;not null;uniqueIndex:idx_users_email,length:191" json:"email"`
	PasswordHash     string `gorm:"column:password_hash;size:255" json:"-"`
	Phone            string `gorm:"column:phone;type:text" json:"phone,omitempty"`
	Gender           string `gorm:"column:gender;type:text" json:"gender,omitempty"`
	RegistrationDate string `gorm:"column:registration_date;type:text" json:"registration_date,omitempty"`
	LocationID       *uint  `gorm:"column:location_id" json:"location_id,omitempty"`
	Age              *int64 `gorm:"column:age" json:"age,omitempty"`
	Verified         bool   `gorm:"column:verified;not null;default:false" json:"verified"`
}

func (User) TableName() string { return "users" }
