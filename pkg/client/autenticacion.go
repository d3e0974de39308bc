package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/sn4yber/menchap-app-api/internal/application/dto"
)

// ErrCredencialesInvalidas login rechazado por la API.
var ErrCredencialesInvalidas = errors.New("credenciales inválidas")

// Autenticacion maneja login/logout y deja la sesión lista para el resto
// de los servicios (el token se adjunta automáticamente en cada petición).
type Autenticacion struct {
	c *Client
}

// NewAutenticacion construye el servicio sobre el cliente.
func NewAutenticacion(c *Client) *Autenticacion {
	return &Autenticacion{c: c}
}

// Login autentica contra POST /api/login y persiste la sesión en disco.
// Credenciales rechazadas devuelven ErrCredencialesInvalidas.
func (s *Autenticacion) Login(ctx context.Context, usuario, contrasena string) (*dto.LoginResponse, error) {
	in := dto.LoginRequest{Usuario: usuario, Contrasena: contrasena}
	var out dto.LoginResponse
	if err := s.c.do(ctx, http.MethodPost, "/api/login", in, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}
	if !out.Success || out.Usuario == nil || out.Token == "" {
		return nil, ErrCredencialesInvalidas
	}
	if s.c.sesion != nil {
		if err := s.c.sesion.Iniciar(*out.Usuario, out.Token); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// Logout cierra la sesión local. No hay invalidación server-side del token:
// expira solo.
func (s *Autenticacion) Logout() error {
	if s.c.sesion == nil {
		return nil
	}
	return s.c.sesion.Cerrar()
}
