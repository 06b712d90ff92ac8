package entity

// Empleado representa un empleado que puede generar pólizas.
// El ID es asignado externamente (no hay secuencia propia).
type Empleado struct {
	IDEmpleado int64
	Nombre     string
	Apellido   string
	Puesto     string
}
