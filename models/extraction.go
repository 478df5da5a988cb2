package models

// LogExtractionResult содержит результат разбора HTTP access-лога.
// Нулевой MatchCount считается валидным результатом, а не ошибкой: решение о том,
// показывать ли пользователю "ничего не найдено", принимает вызывающий код.
type LogExtractionResult struct {
	RedirectionURL        string            `json:"redirectionUrl,omitempty"`
	QueryStringParameters map[string]string `json:"queryStringParameters"`
	MatchCount            int               `json:"matchCount"`
}
