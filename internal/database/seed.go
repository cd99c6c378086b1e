package database

import (
	"time"

	"gestao-ativos-backend/internal/models"

	"gorm.io/gorm"
)

// SeedExampleData popula a base com ativos de exemplo. Só age quando a tabela
// de ativos está vazia; rodar de novo é um no-op.
func SeedExampleData(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Asset{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now()

	assets := []models.Asset{
		{
			Name:             "Notebook Dell Vostro",
			PatrimonyTag:     "NTK-001",
			Type:             "Eletrônico",
			Status:           "Em uso",
			AcquisitionValue: 4500.00,
			Maintenances: []models.Maintenance{
				{Description: "Troca de pasta térmica e limpeza interna.", RecordedAt: now},
			},
		},
		{
			Name:             "Monitor LG UltraWide 29'",
			PatrimonyTag:     "MON-005",
			Type:             "Eletrônico",
			Status:           "Disponível",
			AcquisitionValue: 1200.50,
		},
		{
			Name:             "Cadeira de Escritório Ergonômica",
			PatrimonyTag:     "CAD-012",
			Type:             "Mobiliário",
			Status:           "Em manutenção",
			AcquisitionValue: 800.00,
			Maintenances: []models.Maintenance{
				{Description: "Reparo no pistão de gás.", RecordedAt: now},
			},
		},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range assets {
			if err := tx.Create(&assets[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
