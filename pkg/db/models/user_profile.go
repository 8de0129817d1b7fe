package models

// ProfileID is the primary key of the only user_profile row.
const ProfileID int64 = 1

type UserProfile struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	FullName string `gorm:"column:full_name"`
	Email    string `gorm:"column:email"`
	Phone    string `gorm:"column:phone"`
}

func (UserProfile) TableName() string { return "user_profile" }
