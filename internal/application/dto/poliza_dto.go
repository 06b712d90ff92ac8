package dto

// PolizaRequest cuerpo de creación y actualización de póliza.
// En la actualización solo se aplica EmpleadoGenero; sku y cantidad se
// aceptan pero no modifican el registro (contrato vigente).
type PolizaRequest struct {
	IDPoliza       int64 `json:"idPoliza"`
	EmpleadoGenero int64 `json:"empleadoGenero"`
	SKU            int64 `json:"sku"`
	Cantidad       int   `json:"cantidad"`
}

// PolizaResponse vista compuesta de lectura: póliza + nombre del empleado +
// detalle del artículo.
type PolizaResponse struct {
	Poliza          PolizaItem      `json:"poliza"`
	Empleado        EmpleadoNombre  `json:"empleado"`
	DetalleArticulo DetalleArticulo `json:"detalleArticulo"`
}

// PolizaItem datos propios de la póliza en la vista compuesta.
type PolizaItem struct {
	IDPoliza int64 `json:"idPoliza"`
	Cantidad int   `json:"cantidad"`
}

// EmpleadoNombre nombre del empleado asociado a la póliza.
type EmpleadoNombre struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// DetalleArticulo artículo referenciado por la póliza.
type DetalleArticulo struct {
	SKU    int64  `json:"sku"`
	Nombre string `json:"nombre"`
}

// MensajeIDResponse confirmación de update/delete con el id de la póliza.
type MensajeIDResponse struct {
	Mensaje MensajeID `json:"mensaje"`
}

// MensajeID mensaje interno de la confirmación.
type MensajeID struct {
	IDMensaje string `json:"idMensaje"`
}

// PolizaPage una página de pólizas con metadatos de paginación.
type PolizaPage struct {
	Content     []PolizaResponse `json:"content"`
	CurrentPage int              `json:"currentPage"`
	TotalItems  int64            `json:"totalItems"`
	TotalPages  int              `json:"totalPages"`
}

// PolizaPageQuery parámetros del listado paginado de pólizas.
// EmpleadoID y SKU en nil significan "sin filtro".
type PolizaPageQuery struct {
	Page       int
	Size       int
	SortBy     string
	SortDir    string
	EmpleadoID *int64
	SKU        *int64
}
