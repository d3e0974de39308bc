package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEsperaPreJitterSigueElEsquemaExponencial(t *testing.T) {
	r := Reintento{MaxIntentos: 3, EsperaBase: time.Second, EsperaMax: 5 * time.Second}

	assert.Equal(t, 1*time.Second, r.esperaPreJitter(0))
	assert.Equal(t, 2*time.Second, r.esperaPreJitter(1))
	assert.Equal(t, 4*time.Second, r.esperaPreJitter(2))
	// 8s superaría el tope: se recorta a EsperaMax.
	assert.Equal(t, 5*time.Second, r.esperaPreJitter(3))
}

func TestConJitterDentroDelRango(t *testing.T) {
	base := time.Second
	for i := 0; i < 200; i++ {
		d := conJitter(base)
		assert.GreaterOrEqual(t, d, 750*time.Millisecond)
		assert.Less(t, d, 1250*time.Millisecond)
	}
}

func TestEjecutarDevuelveElUltimoErrorTrasAgotarIntentos(t *testing.T) {
	r := Reintento{MaxIntentos: 3, EsperaBase: time.Millisecond, EsperaMax: 5 * time.Millisecond}
	quiebre := errors.New("backend caído")
	llamadas := 0

	err := r.Ejecutar(context.Background(), func() error {
		llamadas++
		return quiebre
	})

	require.ErrorIs(t, err, quiebre)
	assert.Equal(t, 3, llamadas)
}

func TestEjecutarNoReintentaTrasExito(t *testing.T) {
	r := ReintentoPorDefecto()
	llamadas := 0

	err := r.Ejecutar(context.Background(), func() error {
		llamadas++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, llamadas)
}

func TestEjecutarSeRecuperaTrasUnFallo(t *testing.T) {
	r := Reintento{MaxIntentos: 3, EsperaBase: time.Millisecond, EsperaMax: 5 * time.Millisecond}
	llamadas := 0

	err := r.Ejecutar(context.Background(), func() error {
		llamadas++
		if llamadas < 2 {
			return errors.New("transitorio")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, llamadas)
}

func TestEjecutarRespetaLaCancelacionDelContexto(t *testing.T) {
	r := Reintento{MaxIntentos: 3, EsperaBase: time.Minute, EsperaMax: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	llamadas := 0

	cancel()
	err := r.Ejecutar(ctx, func() error {
		llamadas++
		return errors.New("transitorio")
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, llamadas, "la cancelación corta durante la espera, no a mitad de un intento")
}
