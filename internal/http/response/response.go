// Package response содержит вспомогательные типы для формирования
// JSON‑ответов HTTP‑обработчиков: успех с сообщением и ошибка с текстом.
package response

// ErrorResponse — структура ошибки в JSON-ответе API.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// MessageResponse — успешный ответ с человеко‑читаемым сообщением.
type MessageResponse struct {
	Message string `json:"message" example:"User registered successfully"`
}

// Error возвращает ErrorResponse с переданным текстом.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// Message возвращает MessageResponse с переданным текстом.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}
