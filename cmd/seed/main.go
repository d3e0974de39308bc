// seed crea la cuenta de administrador inicial si no existe.
//
// Uso: go run ./cmd/seed
// Lee SEED_ADMIN_USER y SEED_ADMIN_PASSWORD del entorno (por defecto
// "admin" y "admin12345"); la contraseña por defecto es solo para desarrollo.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sn4yber/menchap-app-api/internal/application/auth"
	"github.com/sn4yber/menchap-app-api/internal/application/dto"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
	"github.com/sn4yber/menchap-app-api/internal/infrastructure/postgres"
	"github.com/sn4yber/menchap-app-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	username := os.Getenv("SEED_ADMIN_USER")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)

	existente, err := usuarioRepo.FindByUsername(username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "buscar usuario: %v\n", err)
		os.Exit(1)
	}
	if existente != nil {
		fmt.Printf("El usuario %q ya existe, nada que hacer\n", username)
		return
	}

	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT)
	creado, err := authUC.CrearUsuario(dto.CrearUsuarioRequest{
		Username:       username,
		Password:       password,
		NombreCompleto: "Administrador",
		Rol:            entity.RolAdmin,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "crear usuario admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Usuario admin creado: %s (id %s)\n", creado.Username, creado.ID)
}
