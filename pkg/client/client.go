// Package client es el SDK Go de la API: acceso HTTP con reintentos,
// servicios tipados por dominio, agregaciones puras para dashboards,
// carrito de venta y sesión persistente.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError es un error devuelto por la API (status no-2xx).
// Message viene del campo "message" del cuerpo JSON cuando existe.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client encapsula el acceso HTTP a la API. Adjunta el Bearer token de la
// sesión cuando hay una activa. Seguro para uso concurrente.
type Client struct {
	baseURL   string
	httpc     *http.Client
	sesion    *Sesion
	bus       *Bus
	reintento Reintento
}

// NewClient construye el cliente. La sesión puede venir vacía (sin login).
func NewClient(baseURL string, sesion *Sesion) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		httpc:     &http.Client{Timeout: 30 * time.Second},
		sesion:    sesion,
		bus:       NewBus(),
		reintento: ReintentoPorDefecto(),
	}
}

// ConReintento reemplaza la política de reintentos y devuelve el mismo
// cliente, para encadenar en la construcción.
func (c *Client) ConReintento(r Reintento) *Client {
	c.reintento = r
	return c
}

// Bus devuelve el bus de eventos del cliente.
func (c *Client) Bus() *Bus { return c.bus }

// Sesion devuelve la sesión asociada al cliente.
func (c *Client) Sesion() *Sesion { return c.sesion }

// do ejecuta una petición y decodifica la respuesta JSON en out (si no es nil).
// Los status no-2xx se normalizan a *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("codificar cuerpo: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear petición: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.sesion != nil {
		if token := c.sesion.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: mensajeDeError(resp, raw)}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// descargar trae el cuerpo crudo de una respuesta (descargas binarias,
// como el ticket PDF). Los status no-2xx se normalizan igual que en do.
func (c *Client) descargar(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("crear petición: %w", err)
	}
	if c.sesion != nil {
		if token := c.sesion.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: mensajeDeError(resp, raw)}
	}
	return raw, nil
}

// mensajeDeError extrae el mejor mensaje disponible de una respuesta de error:
// el campo "message" del JSON, el texto plano del cuerpo, o el status HTTP.
func mensajeDeError(resp *http.Response, raw []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	if texto := strings.TrimSpace(string(raw)); texto != "" && !strings.HasPrefix(texto, "{") {
		return texto
	}
	return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
