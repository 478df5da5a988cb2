// Package extractor разбирает HTTP access-логи captive-порталов и извлекает
// из них структурированные параметры для снапшота конфигурации вендора.
package extractor

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/trekkete/spektr/models"
)

// Фиксированная грамматика строки access-лога:
// IP клиента, [метка времени], схема://хост[:порт], "МЕТОД путь[?query] HTTP/x",
// статус, размер ответа, referer, user agent и два завершающих поля в кавычках.
// Строка, не совпавшая с грамматикой целиком, пропускается, частичные
// совпадения по отдельным полям не используются.
var logLinePattern = regexp.MustCompile(
	`^(\S+) \[([^\]]+)\] (https?)://([^\s:/"]+)(?::(\d+))?` +
		` "(\S+) ([^\s?"]+)(?:\?([^\s"]*))? (HTTP/[^"]*)"` +
		` (\d{3}) (\d+|-) "([^"]*)" "([^"]*)" "([^"]*)" "([^"]*)"\s*$`,
)

// Индексы групп захвата в logLinePattern.
const (
	groupClientIP = iota + 1
	groupTimestamp
	groupScheme
	groupHost
	groupPort
	groupMethod
	groupPath
	groupQuery
	groupProto
	groupStatus
	groupSize
	groupReferer
	groupUserAgent
	groupTrailer1
	groupTrailer2
)

// Подстроки пути, указывающие на редирект captive-портала.
var redirectMarkers = []string{"start", "redirect"}

// Options задает необязательные фильтры извлечения.
type Options struct {
	// SourceIP задает точное совпадение с IP клиента в строке лога.
	SourceIP string
	// PathContains задает подстроку, которая должна входить в путь запроса.
	PathContains string
}

// ExtractFromLog разбирает многострочный текст access-лога построчно.
// Параметры query string накапливаются по правилу "первое вхождение ключа
// побеждает" (в том числе между строками), URL редиректа перезаписывается
// каждой подходящей строкой, то есть побеждает последняя. Нераспознанные
// строки молча пропускаются.
func ExtractFromLog(logText string, opts Options) models.LogExtractionResult {
	result := models.LogExtractionResult{
		QueryStringParameters: make(map[string]string),
	}

	for _, line := range strings.Split(logText, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		groups := logLinePattern.FindStringSubmatch(line)
		if groups == nil {
			// Строка не соответствует грамматике, это не ошибка.
			continue
		}

		if opts.SourceIP != "" && groups[groupClientIP] != opts.SourceIP {
			continue
		}
		path := groups[groupPath]
		if opts.PathContains != "" && !strings.Contains(path, opts.PathContains) {
			continue
		}

		result.MatchCount++

		query := groups[groupQuery]
		collectQueryParams(query, result.QueryStringParameters)

		if isRedirectPath(path) {
			result.RedirectionURL = buildURL(
				groups[groupScheme], groups[groupHost], groups[groupPort], path, query)
		}
	}

	return result
}

// collectQueryParams декодирует пары ключ-значение из query string и добавляет
// их в params, не перезаписывая уже накопленные ключи.
func collectQueryParams(query string, params map[string]string) {
	if query == "" {
		return
	}
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = unescape(key)
		if key == "" {
			continue
		}
		if _, seen := params[key]; seen {
			continue
		}
		params[key] = unescape(value)
	}
}

// unescape выполняет percent-декодирование; неразбираемые последовательности
// оставляются как есть.
func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// isRedirectPath проверяет, содержит ли путь маркер редиректа.
func isRedirectPath(path string) bool {
	lower := strings.ToLower(path)
	for _, marker := range redirectMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// buildURL восстанавливает полный URL запроса. Порт опускается только при
// литеральных значениях "80" и "443": строка "080" портом по умолчанию не считается.
func buildURL(scheme, host, port, path, query string) string {
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(host)
	if port != "" && port != "80" && port != "443" {
		b.WriteString(":")
		b.WriteString(port)
	}
	b.WriteString(path)
	if query != "" {
		b.WriteString("?")
		b.WriteString(query)
	}
	return b.String()
}
