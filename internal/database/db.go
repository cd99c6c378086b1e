package database

import (
	"gestao-ativos-backend/internal/config"
	"gestao-ativos-backend/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open abre uma conexão gorm sobre o dialeto informado e aplica as migrações.
// TranslateError faz a violação de unicidade chegar como gorm.ErrDuplicatedKey,
// independente do dialeto.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Asset{},
		&models.Maintenance{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

func Init(cfg *config.Config) {
	var err error

	DB, err = Open(postgres.Open(cfg.DatabaseDSN))
	if err != nil {
		log.Fatalf("Não foi possível conectar ao banco de dados: %v", err)
	}

	log.Info("Conexão com o banco de dados estabelecida. Migração concluída.")
}
