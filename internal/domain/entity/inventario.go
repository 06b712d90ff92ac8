package entity

// Inventario es un artículo en inventario identificado por SKU.
// Cantidad nunca puede quedar negativa: las pólizas la descuentan al crearse
// y la restauran al eliminarse; además es editable vía su propio CRUD.
type Inventario struct {
	SKU      int64
	Nombre   string
	Cantidad int
}
