package server

import (
	"embed"
	"strings"

	"gestao-ativos-backend/internal/config"
	"gestao-ativos-backend/internal/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"
)

//go:embed docs.html
var docsFS embed.FS

// New monta a aplicação fiber com as rotas de ativos e manutenções.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"message": e.Message,
				})
			}
			log.WithError(err).Error("Erro inesperado")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Erro inesperado no servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Documentação
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/docs", fiber.StatusFound)
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		page, err := docsFS.ReadFile("docs.html")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Documentação indisponível")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(page)
	})

	// Ativos
	app.Post("/ativo", inventory.CreateAssetHandler())
	app.Get("/ativos", inventory.ListAssetsHandler())
	app.Get("/ativo", inventory.GetAssetHandler())
	app.Put("/ativo", inventory.UpdateAssetHandler())
	app.Delete("/ativo", inventory.DeleteAssetHandler())

	// Manutenções
	app.Post("/manutencao", inventory.CreateMaintenanceHandler())
	app.Delete("/manutencao", inventory.DeleteMaintenanceHandler())
	app.Put("/manutencao", inventory.UpdateMaintenanceHandler())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return app
}
