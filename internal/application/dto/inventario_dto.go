package dto

// ArticuloRequest cuerpo de creación/actualización de un artículo de inventario.
type ArticuloRequest struct {
	SKU      int64  `json:"sku"`
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

// ArticuloResponse representación de un artículo en las respuestas.
type ArticuloResponse struct {
	SKU      int64  `json:"sku"`
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

// InventarioPage una página de artículos con metadatos de paginación.
type InventarioPage struct {
	Content     []ArticuloResponse `json:"content"`
	CurrentPage int                `json:"currentPage"`
	TotalItems  int64              `json:"totalItems"`
	TotalPages  int                `json:"totalPages"`
}

// InventarioPageQuery parámetros del listado paginado de inventario.
// Nombre vacío no filtra; si no, filtra por coincidencia parcial.
type InventarioPageQuery struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
	Nombre  string
}
