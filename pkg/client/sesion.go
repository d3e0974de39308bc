package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sn4yber/menchap-app-api/internal/application/dto"
	"github.com/sn4yber/menchap-app-api/internal/domain/entity"
)

// datosSesion es lo que se persiste en el archivo de sesión.
type datosSesion struct {
	Usuario dto.UsuarioResponse `json:"usuario"`
	Token   string              `json:"token"`
}

// Sesion guarda a lo sumo una identidad autenticada, en memoria y en un
// archivo JSON que sirve de respaldo en arranques fríos. Cerrar sesión borra
// solo los datos de sesión (memoria + archivo), nada más. Segura para uso
// concurrente.
type Sesion struct {
	mu    sync.RWMutex
	ruta  string
	datos *datosSesion
}

// NewSesion construye la sesión leyendo el archivo si existe. Un archivo
// ausente no es error: la sesión arranca sin identidad.
func NewSesion(ruta string) (*Sesion, error) {
	s := &Sesion{ruta: ruta}
	raw, err := os.ReadFile(ruta)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("leer archivo de sesión: %w", err)
	}
	var datos datosSesion
	if err := json.Unmarshal(raw, &datos); err != nil {
		// Archivo corrupto: se ignora y se arranca sin sesión.
		return s, nil
	}
	if datos.Token != "" {
		s.datos = &datos
	}
	return s, nil
}

// Iniciar guarda usuario y token en memoria y en el archivo.
func (s *Sesion) Iniciar(usuario dto.UsuarioResponse, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datos = &datosSesion{Usuario: usuario, Token: token}
	raw, err := json.MarshalIndent(s.datos, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar sesión: %w", err)
	}
	if dir := filepath.Dir(s.ruta); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("crear directorio de sesión: %w", err)
		}
	}
	if err := os.WriteFile(s.ruta, raw, 0o600); err != nil {
		return fmt.Errorf("guardar archivo de sesión: %w", err)
	}
	return nil
}

// Cerrar limpia la identidad en memoria y elimina el archivo de sesión.
func (s *Sesion) Cerrar() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datos = nil
	if err := os.Remove(s.ruta); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("eliminar archivo de sesión: %w", err)
	}
	return nil
}

// Autenticado indica si hay una identidad activa.
func (s *Sesion) Autenticado() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.datos != nil
}

// Token devuelve el token actual, o "" sin sesión.
func (s *Sesion) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.datos == nil {
		return ""
	}
	return s.datos.Token
}

// Usuario devuelve el usuario actual, o nil sin sesión.
func (s *Sesion) Usuario() *dto.UsuarioResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.datos == nil {
		return nil
	}
	copia := s.datos.Usuario
	return &copia
}

// TieneRol indica si la sesión activa tiene el rol dado.
func (s *Sesion) TieneRol(rol string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.datos != nil && s.datos.Usuario.Rol == rol
}

// EsAdmin indica si la sesión activa es de un ADMIN.
func (s *Sesion) EsAdmin() bool {
	return s.TieneRol(entity.RolAdmin)
}
