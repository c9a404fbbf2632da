// Command seed inicializa el esquema, siembra el catálogo por defecto y crea
// el usuario administrador inicial.
//
// Uso:
//
//	go run ./cmd/seed -email admin@areperia.co -password <pass> [-name "Admin"]
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/laabuela/areperia-api/internal/application/auth"
	"github.com/laabuela/areperia-api/internal/application/dto"
	"github.com/laabuela/areperia-api/internal/domain"
	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/infrastructure/postgres"
	"github.com/laabuela/areperia-api/pkg/config"
	"github.com/laabuela/areperia-api/pkg/logger"
)

func main() {
	email := flag.String("email", os.Getenv("SEED_ADMIN_EMAIL"), "email del administrador")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "contraseña del administrador")
	name := flag.String("name", "Administrador", "nombre del administrador")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if *email == "" || *password == "" {
		log.Fatal().Msg("se requieren -email y -password (o SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD)")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}
	log.Info().Msg("esquema y catálogo listos")

	authUC := auth.New(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	user, err := authUC.RegisterUser(dto.RegisterRequest{
		Email:    *email,
		Password: *password,
		Name:     *name,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			log.Info().Str("email", *email).Msg("el administrador ya existe, nada que hacer")
			return
		}
		log.Fatal().Err(err).Msg("crear administrador")
	}
	log.Info().Str("id", user.ID).Str("email", user.Email).Msg("administrador creado")
}
