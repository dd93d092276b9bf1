package models

// BackendRequest определяет тело запроса на выбор backend-сервера.
// Пустой адрес означает перебор серверов из конфигурации.
type BackendRequest struct {
	Address string `json:"ip"`
}

// DispatchResponse представляет ответ диспетчера на команду.
type DispatchResponse struct {
	Status string `json:"status" example:"ok"`
	Result string `json:"result" example:"OK"`
}

// ErrorResponse представляет стандартный ответ с ошибкой.
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  struct {
		Code    int    `json:"code" example:"400"`
		Message string `json:"message" example:"bad request"`
	} `json:"error"`
}

// BackendResponse представляет результат макроса set_backend_server.
type BackendResponse struct {
	Status string       `json:"status" example:"ok"`
	Result string       `json:"result" example:"OK"`
	State  BackendState `json:"state"`
}
