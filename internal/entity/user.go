package entity

type User struct {
	Base

	Username        string `gorm:"unique"`
	FullName        string
	Bio             string
	ProfileImageURL string
}
