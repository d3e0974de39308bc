package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/sn4yber/menchap-app-api/internal/application/dto"
	"github.com/sn4yber/menchap-app-api/internal/domain"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
	"github.com/sn4yber/menchap-app-api/internal/domain/repository"
	"github.com/sn4yber/menchap-app-api/pkg/config"
	"github.com/sn4yber/menchap-app-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// UseCase autenticación por username/contraseña con emisión de JWT.
type UseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(usuarios repository.UsuarioRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login valida credenciales y devuelve el usuario con su token. Usuario
// inexistente, inactivo o contraseña errada devuelven ErrUnauthorized sin
// distinguir el caso.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	usuario, err := uc.usuarios.FindByUsername(in.Usuario)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !usuario.EstaActivo() {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Username, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	ahora := time.Now()
	if err := uc.usuarios.RegistrarAcceso(usuario.ID, ahora); err != nil {
		return nil, err
	}
	usuario.FechaUltimoAcceso = &ahora

	return &dto.LoginResponse{
		Success: true,
		Message: "Login exitoso",
		Usuario: toUsuarioResponse(usuario),
		Token:   token,
	}, nil
}

// CrearUsuario registra una cuenta nueva con la contraseña hasheada (bcrypt).
// El rol por defecto es USER.
func (uc *UseCase) CrearUsuario(in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existente, err := uc.usuarios.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrUsernameDuplicado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolUser
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:                 uuid.New().String(),
		Username:           in.Username,
		PasswordHash:       string(hash),
		Email:              in.Email,
		NombreCompleto:     in.NombreCompleto,
		Rol:                rol,
		Activo:             true,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}
	if err := uc.usuarios.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Email:              u.Email,
		NombreCompleto:     u.NombreCompleto,
		Rol:                u.Rol,
		Activo:             u.Activo,
		FechaCreacion:      u.FechaCreacion,
		FechaActualizacion: u.FechaActualizacion,
		UltimoAcceso:       u.FechaUltimoAcceso,
	}
}
