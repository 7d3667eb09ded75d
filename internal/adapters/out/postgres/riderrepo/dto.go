// Package riderrepo provides the rider profile lookup backing order
// rider-name resolution.
package riderrepo

// RiderDTO represents the database structure for rider profiles.
type RiderDTO struct {
	ID   string `gorm:"type:varchar(64);primaryKey"`
	Name string
}

// TableName specifies the database table name for rider profiles.
func (RiderDTO) TableName() string {
	return "riders"
}
