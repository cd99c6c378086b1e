package inventory

import (
	"errors"
	"strings"

	"gestao-ativos-backend/internal/database"
	"gestao-ativos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreateAssetRequest struct {
	Name             string   `json:"nome"`
	PatrimonyTag     string   `json:"tag_patrimonio"`
	Type             string   `json:"tipo"`
	Status           string   `json:"status"`
	AcquisitionValue *float64 `json:"valor_aquisicao"` // ponteiro para distinguir ausente de 0
}

type UpdateAssetRequest struct {
	Name             *string  `json:"nome"`
	Type             *string  `json:"tipo"`
	Status           *string  `json:"status"`
	AcquisitionValue *float64 `json:"valor_aquisicao"`
}

// Carrega um ativo pela tag de patrimônio com as manutenções já ordenadas.
func findAssetByTag(tag string) (*models.Asset, error) {
	var asset models.Asset
	err := database.DB.
		Preload("Maintenances", func(db *gorm.DB) *gorm.DB {
			return db.Order("recorded_at ASC, id ASC")
		}).
		First(&asset, "patrimony_tag = ?", tag).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// POST /ativo
func CreateAssetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateAssetRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos no corpo da requisição")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.PatrimonyTag = strings.TrimSpace(body.PatrimonyTag)
		body.Type = strings.TrimSpace(body.Type)
		body.Status = strings.TrimSpace(body.Status)

		// Validações: todos os campos são obrigatórios
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "nome é obrigatório")
		}
		if body.PatrimonyTag == "" {
			return fiber.NewError(fiber.StatusBadRequest, "tag_patrimonio é obrigatória")
		}
		if body.Type == "" {
			return fiber.NewError(fiber.StatusBadRequest, "tipo é obrigatório")
		}
		if body.Status == "" {
			return fiber.NewError(fiber.StatusBadRequest, "status é obrigatório")
		}
		if body.AcquisitionValue == nil {
			return fiber.NewError(fiber.StatusBadRequest, "valor_aquisicao é obrigatório")
		}

		asset := models.Asset{
			Name:             body.Name,
			PatrimonyTag:     body.PatrimonyTag,
			Type:             body.Type,
			Status:           body.Status,
			AcquisitionValue: *body.AcquisitionValue,
		}

		if err := database.DB.Create(&asset).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.WithField("tag_patrimonio", asset.PatrimonyTag).Warn("Tag de patrimônio já cadastrada")
				return fiber.NewError(fiber.StatusConflict, "Ativo com a mesma tag de patrimônio já salvo na base.")
			}
			log.WithError(err).WithField("nome", asset.Name).Warn("Falha ao salvar novo ativo")
			return fiber.NewError(fiber.StatusBadRequest, "Não foi possível salvar novo ativo.")
		}

		log.WithField("tag_patrimonio", asset.PatrimonyTag).Debug("Ativo adicionado")
		return c.JSON(NewAssetView(asset))
	}
}

// GET /ativos
func ListAssetsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := strings.TrimSpace(c.Query("nome"))
		assetType := strings.TrimSpace(c.Query("tipo"))
		status := strings.TrimSpace(c.Query("status"))

		query := database.DB.
			Preload("Maintenances", func(db *gorm.DB) *gorm.DB {
				return db.Order("recorded_at ASC, id ASC")
			})

		// nome: busca parcial, sem diferenciar maiúsculas/minúsculas
		if name != "" {
			query = query.Where("lower(name) LIKE lower(?)", "%"+name+"%")
		}
		// tipo e status: comparação exata
		if assetType != "" {
			query = query.Where("type = ?", assetType)
		}
		if status != "" {
			query = query.Where("status = ?", status)
		}

		var assets []models.Asset
		if err := query.Order("inserted_at DESC, id DESC").Find(&assets).Error; err != nil {
			log.WithError(err).Warn("Falha ao listar ativos")
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os ativos.")
		}

		log.WithField("total", len(assets)).Debug("Ativos coletados")
		return c.JSON(fiber.Map{"ativos": NewAssetListView(assets)})
	}
}

// GET /ativo
func GetAssetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tag := strings.TrimSpace(c.Query("tag_patrimonio"))
		if tag == "" {
			return fiber.NewError(fiber.StatusBadRequest, "tag_patrimonio é obrigatória")
		}

		asset, err := findAssetByTag(tag)
		if err != nil {
			log.WithField("tag_patrimonio", tag).Warn("Ativo não encontrado")
			return fiber.NewError(fiber.StatusNotFound, "Ativo não encontrado na base.")
		}

		return c.JSON(NewAssetView(*asset))
	}
}

// PUT /ativo
func UpdateAssetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tag := strings.TrimSpace(c.Query("tag_patrimonio"))
		if tag == "" {
			return fiber.NewError(fiber.StatusBadRequest, "tag_patrimonio é obrigatória")
		}

		// Entrada malformada é rejeitada antes de qualquer acesso ao banco
		var body UpdateAssetRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos no corpo da requisição")
		}

		var asset models.Asset
		if err := database.DB.First(&asset, "patrimony_tag = ?", tag).Error; err != nil {
			log.WithField("tag_patrimonio", tag).Warn("Ativo não encontrado para atualização")
			return fiber.NewError(fiber.StatusNotFound, "Ativo não encontrado na base.")
		}

		// Só os campos presentes na requisição são aplicados
		if body.Name != nil {
			if name := strings.TrimSpace(*body.Name); name != "" {
				asset.Name = name
			}
		}
		if body.Type != nil {
			if t := strings.TrimSpace(*body.Type); t != "" {
				asset.Type = t
			}
		}
		if body.Status != nil {
			if s := strings.TrimSpace(*body.Status); s != "" {
				asset.Status = s
			}
		}
		if body.AcquisitionValue != nil {
			asset.AcquisitionValue = *body.AcquisitionValue
		}

		if err := database.DB.Save(&asset).Error; err != nil {
			log.WithError(err).WithField("tag_patrimonio", tag).Warn("Falha ao atualizar ativo")
			return fiber.NewError(fiber.StatusBadRequest, "Não foi possível atualizar o ativo.")
		}

		updated, err := findAssetByTag(asset.PatrimonyTag)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ativo não encontrado na base.")
		}

		log.WithField("tag_patrimonio", tag).Debug("Ativo atualizado")
		return c.JSON(NewAssetView(*updated))
	}
}

// DELETE /ativo
func DeleteAssetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tag := strings.TrimSpace(c.Query("tag_patrimonio"))
		if tag == "" {
			return fiber.NewError(fiber.StatusBadRequest, "tag_patrimonio é obrigatória")
		}

		// Remoção em cascata: as manutenções do ativo saem na mesma transação
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var asset models.Asset
			if err := tx.First(&asset, "patrimony_tag = ?", tag).Error; err != nil {
				return err
			}
			if err := tx.Where("asset_id = ?", asset.ID).Delete(&models.Maintenance{}).Error; err != nil {
				return err
			}
			return tx.Delete(&asset).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.WithField("tag_patrimonio", tag).Warn("Ativo não encontrado para remoção")
				return fiber.NewError(fiber.StatusNotFound, "Ativo não encontrado na base.")
			}
			log.WithError(err).WithField("tag_patrimonio", tag).Warn("Falha ao remover ativo")
			return fiber.NewError(fiber.StatusBadRequest, "Não foi possível remover o ativo.")
		}

		log.WithField("tag_patrimonio", tag).Debug("Ativo removido")
		return c.JSON(fiber.Map{
			"message":        "Ativo removido",
			"tag_patrimonio": tag,
		})
	}
}
