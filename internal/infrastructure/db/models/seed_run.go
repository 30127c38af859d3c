package models

import "time"

type SeedRun struct {
	ID              string `gorm:"type:uuid;primaryKey"`
	Trigger         string `gorm:"type:text;not null"`
	Status          string `gorm:"type:text;not null"`
	ConfigJSON      string `gorm:"type:text;not null"`
	FailedPhase     *string
	ErrorMessage    *string `gorm:"type:text"`
	CountriesCount  int     `gorm:"not null;default:0"`
	CitiesCount     int     `gorm:"not null;default:0"`
	UsersCount      int     `gorm:"not null;default:0"`
	ProductsCount   int     `gorm:"not null;default:0"`
	OrdersCount     int     `gorm:"not null;default:0"`
	OrderItemsCount int     `gorm:"not null;default:0"`
	StartedAt       time.Time
	FinishedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (SeedRun) TableName() string {
	return "seed_runs"
}
