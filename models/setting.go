package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Setting is one site-wide configuration entry (site name, contact email,
// social links, ...). Value is arbitrary JSON.
type Setting struct {
	gorm.Model
	Key   string         `gorm:"size:100;not null;unique" json:"key"`
	Value datatypes.JSON `gorm:"type:jsonb" json:"value"`
}
