package inventory

import (
	"strconv"
	"strings"
	"time"

	"gestao-ativos-backend/internal/database"
	"gestao-ativos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreateMaintenanceRequest struct {
	AssetID     uint    `json:"ativo_id"`
	Description string  `json:"descricao"`
	RecordedAt  *string `json:"data_manutencao"` // opcional, "2006-01-02 15:04:05"
}

type UpdateMaintenanceRequest struct {
	Description string `json:"descricao"`
}

// Re-renderiza o ativo dono de uma manutenção.
func presentOwnerAsset(c *fiber.Ctx, assetID uint) error {
	var asset models.Asset
	err := database.DB.
		Preload("Maintenances", func(db *gorm.DB) *gorm.DB {
			return db.Order("recorded_at ASC, id ASC")
		}).
		First(&asset, "id = ?", assetID).Error
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Ativo não encontrado na base.")
	}
	return c.JSON(NewAssetView(asset))
}

// POST /manutencao
func CreateMaintenanceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMaintenanceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos no corpo da requisição")
		}

		if body.AssetID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ativo_id é obrigatório")
		}
		body.Description = strings.TrimSpace(body.Description)
		if body.Description == "" {
			return fiber.NewError(fiber.StatusBadRequest, "descricao é obrigatória")
		}

		// Padrão: momento da inserção; valor explícito na requisição vence
		recordedAt := time.Now()
		if body.RecordedAt != nil {
			parsed, err := time.Parse(timeLayout, *body.RecordedAt)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "data_manutencao deve estar no formato '2006-01-02 15:04:05'")
			}
			recordedAt = parsed
		}

		var asset models.Asset
		if err := database.DB.First(&asset, "id = ?", body.AssetID).Error; err != nil {
			log.WithField("ativo_id", body.AssetID).Warn("Ativo não encontrado para nova manutenção")
			return fiber.NewError(fiber.StatusNotFound, "Ativo não encontrado na base.")
		}

		maintenance := models.Maintenance{
			AssetID:     asset.ID,
			Description: body.Description,
			RecordedAt:  recordedAt,
		}

		if err := database.DB.Create(&maintenance).Error; err != nil {
			log.WithError(err).WithField("ativo_id", asset.ID).Warn("Falha ao salvar manutenção")
			return fiber.NewError(fiber.StatusBadRequest, "Não foi possível salvar a manutenção.")
		}

		log.WithField("ativo_id", asset.ID).Debug("Manutenção adicionada")
		return presentOwnerAsset(c, asset.ID)
	}
}

// DELETE /manutencao
func DeleteMaintenanceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := c.Query("id")
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "id deve ser numérico")
		}

		res := database.DB.Delete(&models.Maintenance{}, "id = ?", uint(id))
		if res.Error != nil {
			log.WithError(res.Error).WithField("id", id).Warn("Falha ao remover manutenção")
			return fiber.NewError(fiber.StatusBadRequest, "Não foi possível remover a manutenção.")
		}
		if res.RowsAffected == 0 {
			log.WithField("id", id).Warn("Manutenção não encontrada para remoção")
			return fiber.NewError(fiber.StatusNotFound, "Manutenção não encontrada na base.")
		}

		log.WithField("id", id).Debug("Manutenção removida")
		return c.JSON(fiber.Map{
			"message": "Manutenção removida",
			"id":      uint(id),
		})
	}
}

// PUT /manutencao
func UpdateMaintenanceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := c.Query("id")
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "id deve ser numérico")
		}

		var body UpdateMaintenanceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos no corpo da requisição")
		}
		body.Description = strings.TrimSpace(body.Description)
		if body.Description == "" {
			return fiber.NewError(fiber.StatusBadRequest, "descricao é obrigatória")
		}

		var maintenance models.Maintenance
		if err := database.DB.First(&maintenance, "id = ?", uint(id)).Error; err != nil {
			log.WithField("id", id).Warn("Manutenção não encontrada para atualização")
			return fiber.NewError(fiber.StatusNotFound, "Manutenção não encontrada na base.")
		}

		maintenance.Description = body.Description
		if err := database.DB.Save(&maintenance).Error; err != nil {
			log.WithError(err).WithField("id", id).Warn("Falha ao atualizar manutenção")
			return fiber.NewError(fiber.StatusBadRequest, "Não foi possível atualizar a manutenção.")
		}

		log.WithField("id", id).Debug("Manutenção atualizada")
		return presentOwnerAsset(c, maintenance.AssetID)
	}
}
