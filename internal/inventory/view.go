package inventory

import (
	"gestao-ativos-backend/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"

type MaintenanceView struct {
	ID          uint   `json:"id"`
	Description string `json:"descricao"`
	RecordedAt  string `json:"data_manutencao"`
}

type AssetView struct {
	ID               uint              `json:"id"`
	Name             string            `json:"nome"`
	PatrimonyTag     string            `json:"tag_patrimonio"`
	Type             string            `json:"tipo"`
	Status           string            `json:"status"`
	AcquisitionValue float64           `json:"valor_aquisicao"`
	InsertedAt       string            `json:"data_insercao"`
	TotalMaintenance int               `json:"total_manutencoes"`
	Maintenances     []MaintenanceView `json:"manutencoes"`
}

// ----------------------------------------
// APRESENTAÇÃO (sem I/O, sem caminho de erro)
// ----------------------------------------

func NewAssetView(a models.Asset) AssetView {
	maintenances := make([]MaintenanceView, 0, len(a.Maintenances))
	for _, m := range a.Maintenances {
		maintenances = append(maintenances, MaintenanceView{
			ID:          m.ID,
			Description: m.Description,
			RecordedAt:  m.RecordedAt.Format(timeLayout),
		})
	}

	return AssetView{
		ID:               a.ID,
		Name:             a.Name,
		PatrimonyTag:     a.PatrimonyTag,
		Type:             a.Type,
		Status:           a.Status,
		AcquisitionValue: a.AcquisitionValue,
		InsertedAt:       a.InsertedAt.Format(timeLayout),
		TotalMaintenance: len(a.Maintenances),
		Maintenances:     maintenances,
	}
}

func NewAssetListView(assets []models.Asset) []AssetView {
	views := make([]AssetView, 0, len(assets))
	for _, a := range assets {
		views = append(views, NewAssetView(a))
	}
	return views
}
