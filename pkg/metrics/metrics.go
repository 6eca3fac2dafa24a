// Package metrics expone los contadores Prometheus del flujo de venta.
// El endpoint /metrics se monta en cmd/api cuando METRICS_ENABLED=true.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// VentasRegistradas ventas persistidas con éxito.
	VentasRegistradas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_ventas_registradas_total",
		Help: "Ventas registradas (factura generada y registro persistido).",
	})

	// FacturasGeneradas artefactos de factura escritos, por formato.
	FacturasGeneradas = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_facturas_generadas_total",
		Help: "Facturas renderizadas por formato.",
	}, []string{"formato"})

	// ErroresRender fallos de E/S al renderizar la factura (la venta no se persiste).
	ErroresRender = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_errores_render_total",
		Help: "Fallos al escribir el artefacto de factura.",
	})

	// ErroresPersistencia fallos al reescribir la colección de ventas
	// después de un render exitoso (artefacto huérfano).
	ErroresPersistencia = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_errores_persistencia_total",
		Help: "Fallos al guardar la venta tras generar la factura.",
	})
)
