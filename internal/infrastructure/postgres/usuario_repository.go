package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sn4yber/menchap-app-api/internal/domain"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
	"github.com/sn4yber/menchap-app-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColumns = `id, username, password_hash, email, nombre_completo, rol, activo,
		fecha_creacion, fecha_ultimo_acceso, fecha_actualizacion`

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario. Username es único.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Username, usuario.PasswordHash, usuario.Email,
		usuario.NombreCompleto, usuario.Rol, usuario.Activo,
		usuario.FechaCreacion, usuario.FechaUltimoAcceso, usuario.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// FindByUsername obtiene un usuario por username exacto.
func (r *UsuarioRepo) FindByUsername(username string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE username = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, username))
}

// Update actualiza un usuario existente (sin tocar el username).
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios SET password_hash = $2, email = $3, nombre_completo = $4,
			rol = $5, activo = $6, fecha_actualizacion = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.PasswordHash, usuario.Email, usuario.NombreCompleto,
		usuario.Rol, usuario.Activo, usuario.FechaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// RegistrarAcceso actualiza fecha_ultimo_acceso tras un login exitoso.
func (r *UsuarioRepo) RegistrarAcceso(id string, cuando time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET fecha_ultimo_acceso = $2 WHERE id = $1`,
		id, cuando,
	)
	if err != nil {
		return fmt.Errorf("registrar acceso: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UsuarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) scanOne(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.NombreCompleto,
		&u.Rol, &u.Activo, &u.FechaCreacion, &u.FechaUltimoAcceso, &u.FechaActualizacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
