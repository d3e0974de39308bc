package client

import (
	"context"
	"math/rand"
	"time"
)

// Reintento es la política de reintentos con backoff exponencial y jitter.
// La espera previa al jitter del intento n (desde 0) es min(EsperaMax,
// EsperaBase·2^n); el jitter multiplica por un factor uniforme en [0.75, 1.25).
type Reintento struct {
	MaxIntentos int
	EsperaBase  time.Duration
	EsperaMax   time.Duration
}

// ReintentoPorDefecto devuelve la política estándar: 3 intentos, base 1s, tope 5s.
func ReintentoPorDefecto() Reintento {
	return Reintento{MaxIntentos: 3, EsperaBase: time.Second, EsperaMax: 5 * time.Second}
}

// Ejecutar corre fn hasta MaxIntentos veces. Tras el último intento fallido
// devuelve el último error tal cual. La espera entre intentos respeta el
// contexto: si se cancela durante la pausa, devuelve ctx.Err().
func (r Reintento) Ejecutar(ctx context.Context, fn func() error) error {
	var ultimo error
	for intento := 0; intento < r.MaxIntentos; intento++ {
		if intento > 0 {
			if err := esperar(ctx, conJitter(r.esperaPreJitter(intento-1))); err != nil {
				return err
			}
		}
		ultimo = fn()
		if ultimo == nil {
			return nil
		}
	}
	return ultimo
}

// esperaPreJitter devuelve min(EsperaMax, EsperaBase·2^intento).
func (r Reintento) esperaPreJitter(intento int) time.Duration {
	espera := r.EsperaBase << uint(intento)
	if espera > r.EsperaMax || espera <= 0 {
		return r.EsperaMax
	}
	return espera
}

// conJitter multiplica por un factor uniforme en [0.75, 1.25).
func conJitter(d time.Duration) time.Duration {
	factor := 0.75 + rand.Float64()*0.5
	return time.Duration(float64(d) * factor)
}

// esperar duerme d respetando la cancelación del contexto.
func esperar(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
