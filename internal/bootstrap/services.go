package bootstrap

import (
	"go.opentelemetry.io/otel/trace"

	appanalytics "github.com/jhoicas/Granja-api/internal/application/analytics"
	"github.com/jhoicas/Granja-api/internal/application/auth"
	"github.com/jhoicas/Granja-api/internal/application/registrar"
	"github.com/jhoicas/Granja-api/internal/application/report"
	"github.com/jhoicas/Granja-api/internal/application/usecase"
	"github.com/jhoicas/Granja-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Granja-api/internal/infrastructure/session"
	"github.com/jhoicas/Granja-api/pkg/config"
)

// Services casos de uso listos para el router o la CLI.
type Services struct {
	Auth       *auth.AuthUseCase
	Goats      *usecase.GoatUseCase
	Records    *usecase.RecordUseCase
	Inventory  *usecase.InventoryUseCase
	Registrar  *registrar.Registrar
	Dashboard  *appanalytics.DashboardUseCase
	HerdReport *report.HerdUseCase
	Revocation *session.RevocationStore
}

// NewServices construye los casos de uso sobre b.
func NewServices(cfg *config.Config, b *Backend, tracer trace.Tracer) *Services {
	revocation := session.NewRevocationStore(session.DefaultCleanupInterval)
	return &Services{
		Auth: auth.NewAuthUseCase(b.Users, revocation,
			auth.JWTConfig{
				Secret:     cfg.JWT.Secret,
				ExpMinutes: cfg.JWT.Expiration,
				Issuer:     cfg.JWT.Issuer,
			},
			auth.SeedConfig{
				Email:    cfg.Seed.AdminEmail,
				Name:     cfg.Seed.AdminName,
				Password: cfg.Seed.AdminPassword,
			},
		),
		Goats:      usecase.NewGoatUseCase(b.Repos, b.TxRunner),
		Records:    usecase.NewRecordUseCase(b.Repos),
		Inventory:  usecase.NewInventoryUseCase(b.Repos.Inventory),
		Registrar:  registrar.NewRegistrar(b.TxRunner, tracer),
		Dashboard:  appanalytics.NewDashboardUseCase(b.Dashboard, tracer),
		HerdReport: report.NewHerdUseCase(b.Repos.Goats, pdf.NewMarotoPDFGenerator(), cfg.App.FarmName),
		Revocation: revocation,
	}
}
