package dto

// Meta metadatos de la respuesta: status "OK" o "FAILURE".
type Meta struct {
	Status string `json:"status"`
}

// Response envelope uniforme de todos los endpoints: {meta:{status}, data}.
type Response struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data"`
}

// Mensaje cuerpo de data en respuestas de fallo y en confirmaciones simples.
type Mensaje struct {
	Mensaje string `json:"mensaje"`
}

// Success arma el envelope de éxito.
func Success(data interface{}) Response {
	return Response{Meta: Meta{Status: "OK"}, Data: data}
}

// Failure arma el envelope de fallo con un mensaje legible para el cliente.
func Failure(mensaje string) Response {
	return Response{Meta: Meta{Status: "FAILURE"}, Data: Mensaje{Mensaje: mensaje}}
}
