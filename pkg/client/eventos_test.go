package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusEntregaALosSuscriptoresDelTema(t *testing.T) {
	bus := NewBus()
	var recibidos []Evento
	bus.Suscribir(EventoInventarioActualizado, func(ev Evento) {
		recibidos = append(recibidos, ev)
	})
	otros := 0
	bus.Suscribir(EventoVentaCreada, func(Evento) { otros++ })

	bus.Publicar(EventoInventarioActualizado, "datos")

	assert.Len(t, recibidos, 1)
	assert.Equal(t, EventoInventarioActualizado, recibidos[0].Tema)
	assert.Equal(t, "datos", recibidos[0].Datos)
	assert.Zero(t, otros, "los temas no se cruzan")
}

func TestBusCancelarDejaDeEntregar(t *testing.T) {
	bus := NewBus()
	entregas := 0
	cancelar := bus.Suscribir(EventoVentaCreada, func(Evento) { entregas++ })

	bus.Publicar(EventoVentaCreada, nil)
	cancelar()
	bus.Publicar(EventoVentaCreada, nil)

	assert.Equal(t, 1, entregas)
}

func TestBusPublicarSinSuscriptoresNoFalla(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() { bus.Publicar(EventoCompraCreada, nil) })
}

func TestBusVariosSuscriptoresMismoTema(t *testing.T) {
	bus := NewBus()
	a, b := 0, 0
	bus.Suscribir(EventoInventarioActualizado, func(Evento) { a++ })
	bus.Suscribir(EventoInventarioActualizado, func(Evento) { b++ })

	bus.Publicar(EventoInventarioActualizado, nil)

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
