package entity

import "time"

// Poliza registra que un empleado retiró una cantidad de un artículo.
// Cantidad corresponde 1:1 con el descuento aplicado al inventario al crearla;
// eliminarla devuelve exactamente esa cantidad. Fecha la asigna el servidor
// una sola vez al crear.
//
// EmpleadoGenero es la clave foránea hacia Empleado; el nombre de columna
// viene del esquema original y se conserva por compatibilidad.
type Poliza struct {
	IDPoliza       int64
	EmpleadoGenero int64
	SKU            int64
	Cantidad       int
	Fecha          time.Time
}
