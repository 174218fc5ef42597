package app

// User is the durable record written to the users table.
type User struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Names       string `gorm:"column:Names" json:"Names"`
	NID         string `gorm:"column:NID" json:"NID"`
	PhoneNumber string `gorm:"column:phone_number" json:"phone_number"`
	Gender      string `gorm:"column:gender" json:"gender"`
	Email       string `gorm:"column:email" json:"email"`
}

func (User) TableName() string {
	return "users"
}
