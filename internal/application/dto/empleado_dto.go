package dto

// EmpleadoRequest cuerpo de creación/actualización de empleado.
type EmpleadoRequest struct {
	IDEmpleado int64  `json:"idEmpleado"`
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Puesto     string `json:"puesto"`
}

// EmpleadoResponse representación de un empleado en las respuestas.
type EmpleadoResponse struct {
	IDEmpleado int64  `json:"idEmpleado"`
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Puesto     string `json:"puesto"`
}
