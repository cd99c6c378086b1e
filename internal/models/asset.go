package models

import "time"

// Asset: Ativo de TI rastreado pelo inventário.
// A tag de patrimônio é o identificador externo, única em toda a base.
type Asset struct {
	ID               uint      `gorm:"primaryKey"`
	Name             string    `gorm:"size:140;not null"`
	PatrimonyTag     string    `gorm:"size:60;not null;uniqueIndex"`
	Type             string    `gorm:"size:100;not null"`
	Status           string    `gorm:"size:100;not null"` // "Em uso", "Disponível", "Em manutenção"...
	AcquisitionValue float64   `gorm:"not null"`          // valor de aquisição
	InsertedAt       time.Time `gorm:"autoCreateTime"`    // definido uma única vez, na criação

	Maintenances []Maintenance `gorm:"foreignKey:AssetID"`
}
