package auth

import (
	"testing"
	"time"

	"github.com/sn4yber/menchap-app-api/internal/application/dto"
	"github.com/sn4yber/menchap-app-api/internal/domain"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
	"github.com/sn4yber/menchap-app-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[string]*entity.Usuario)}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	copia := *u
	r.usuarios[u.ID] = &copia
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (r *fakeUsuarioRepo) FindByUsername(username string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	if _, ok := r.usuarios[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	copia := *u
	r.usuarios[u.ID] = &copia
	return nil
}

func (r *fakeUsuarioRepo) RegistrarAcceso(id string, cuando time.Time) error {
	u, ok := r.usuarios[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	t := cuando
	u.FechaUltimoAcceso = &t
	return nil
}

func (r *fakeUsuarioRepo) Delete(id string) error {
	delete(r.usuarios, id)
	return nil
}

var jwtCfg = config.JWTConfig{Secret: "secreto-de-prueba", Expiration: 60, Issuer: "menchap-app-api"}

func TestLoginExitoso(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := NewUseCase(repo, jwtCfg)

	_, err := uc.CrearUsuario(dto.CrearUsuarioRequest{
		Username: "admin",
		Password: "clave-segura-123",
		Rol:      entity.RolAdmin,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Usuario: "admin", Contrasena: "clave-segura-123"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.Usuario)
	assert.Equal(t, entity.RolAdmin, resp.Usuario.Rol)
	assert.NotNil(t, resp.Usuario.UltimoAcceso)
}

func TestLoginContrasenaIncorrecta(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := NewUseCase(repo, jwtCfg)

	_, err := uc.CrearUsuario(dto.CrearUsuarioRequest{Username: "admin", Password: "clave-segura-123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Usuario: "admin", Contrasena: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginUsuarioInexistente(t *testing.T) {
	uc := NewUseCase(newFakeUsuarioRepo(), jwtCfg)
	_, err := uc.Login(dto.LoginRequest{Usuario: "nadie", Contrasena: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginUsuarioInactivo(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := NewUseCase(repo, jwtCfg)

	resp, err := uc.CrearUsuario(dto.CrearUsuarioRequest{Username: "admin", Password: "clave-segura-123"})
	require.NoError(t, err)

	u, _ := repo.GetByID(resp.ID)
	u.Activo = false
	require.NoError(t, repo.Update(u))

	_, err = uc.Login(dto.LoginRequest{Usuario: "admin", Contrasena: "clave-segura-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCrearUsuarioDuplicado(t *testing.T) {
	uc := NewUseCase(newFakeUsuarioRepo(), jwtCfg)

	_, err := uc.CrearUsuario(dto.CrearUsuarioRequest{Username: "admin", Password: "clave-segura-123"})
	require.NoError(t, err)

	_, err = uc.CrearUsuario(dto.CrearUsuarioRequest{Username: "admin", Password: "otra-clave-larga"})
	assert.ErrorIs(t, err, domain.ErrUsernameDuplicado)
}

func TestCrearUsuarioRolPorDefecto(t *testing.T) {
	uc := NewUseCase(newFakeUsuarioRepo(), jwtCfg)

	resp, err := uc.CrearUsuario(dto.CrearUsuarioRequest{Username: "vendedor", Password: "clave-segura-123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RolUser, resp.Rol)
}
