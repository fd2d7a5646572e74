package dto

// Envelope envoltura estándar de todas las respuestas de la API:
// { success, data?, message?, error? }.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK construye una envoltura de éxito con datos.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail construye una envoltura de error.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}
