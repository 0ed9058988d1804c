package db

import "gorm.io/gorm"

type Repositories struct {
	Users *UserRepository
	OTPs  *OTPRepository
	Lists *ListRepository
	Items *ItemRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users: NewUserRepository(database),
		OTPs:  NewOTPRepository(database),
		Lists: NewListRepository(database),
		Items: NewItemRepository(database),
	}
}
