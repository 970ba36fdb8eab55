package crmdomain

// Response é o envelope padrão de todas as respostas do CRM
type Response[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Meta    Meta `json:"meta"`
}

// Meta chega como objeto nas listagens e com a mensagem de erro nas falhas
type Meta struct {
	TotalCount int    `json:"total_count,omitempty"`
	Message    string `json:"message,omitempty"`
}
