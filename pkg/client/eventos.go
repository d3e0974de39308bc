package client

import "sync"

// Temas de eventos publicados por los servicios del SDK.
const (
	EventoInventarioActualizado = "inventario:updated"
	EventoVentaCreada           = "venta:created"
	EventoCompraCreada          = "compra:created"
)

// Evento es lo que recibe un suscriptor: el tema y un dato opcional.
type Evento struct {
	Tema  string
	Datos any
}

// Bus es un bus de eventos en memoria, fire-and-forget: la publicación
// entrega a los suscriptores vivos en el momento y no encola nada.
// Seguro para uso concurrente.
type Bus struct {
	mu        sync.Mutex
	siguiente int
	subs      map[string]map[int]func(Evento)
}

// NewBus construye un bus vacío.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]func(Evento))}
}

// Suscribir registra fn para un tema y devuelve una función de cancelación.
func (b *Bus) Suscribir(tema string, fn func(Evento)) (cancelar func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[tema] == nil {
		b.subs[tema] = make(map[int]func(Evento))
	}
	id := b.siguiente
	b.siguiente++
	b.subs[tema][id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[tema], id)
	}
}

// Publicar entrega el evento a los suscriptores actuales del tema, en la
// misma goroutine. Los suscriptores dados de baja no reciben nada.
func (b *Bus) Publicar(tema string, datos any) {
	b.mu.Lock()
	listeners := make([]func(Evento), 0, len(b.subs[tema]))
	for _, fn := range b.subs[tema] {
		listeners = append(listeners, fn)
	}
	b.mu.Unlock()

	ev := Evento{Tema: tema, Datos: datos}
	for _, fn := range listeners {
		fn(ev)
	}
}
