package models

import "time"

// Maintenance: registro de manutenção vinculado a exatamente um ativo.
// Sem ponteiro de volta para o ativo; quem precisa do dono consulta por AssetID.
type Maintenance struct {
	ID          uint      `gorm:"primaryKey"`
	AssetID     uint      `gorm:"index;not null"`
	Description string    `gorm:"size:4000;not null"`
	RecordedAt  time.Time `gorm:"not null"` // padrão: momento da inserção
}
