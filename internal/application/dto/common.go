package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListQuery límite para listados (producción, ventas, movimientos).
type ListQuery struct {
	Limit int `query:"limit"`
}

// DefaultLimit aplica el valor por defecto si Limit no viene o es inválido.
func (q *ListQuery) DefaultLimit(def int) {
	if q.Limit <= 0 {
		q.Limit = def
	}
}
