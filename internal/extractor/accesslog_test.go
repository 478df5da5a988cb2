package extractor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trekkete/spektr/internal/extractor"
)

const sampleLine = `203.0.113.5 [10/Oct/2024:13:55:36 +0000] https://portal.example.com:443 "GET /start?client_mac=AA:BB:CC:DD:EE:FF HTTP/1.1" 200 512 "-" "UA" "-" "-"`

func TestExtractFromLog_БазоваяСтрока(t *testing.T) {
	result := extractor.ExtractFromLog(sampleLine, extractor.Options{})

	assert.Equal(t, 1, result.MatchCount)
	assert.Equal(t, map[string]string{"client_mac": "AA:BB:CC:DD:EE:FF"}, result.QueryStringParameters)
	assert.Equal(t, "https://portal.example.com/start?client_mac=AA:BB:CC:DD:EE:FF", result.RedirectionURL)
}

func TestExtractFromLog_ДубликатСтроки(t *testing.T) {
	// Повтор той же строки удваивает matchCount, но не меняет параметры.
	once := extractor.ExtractFromLog(sampleLine, extractor.Options{})
	twice := extractor.ExtractFromLog(sampleLine+"\n"+sampleLine, extractor.Options{})

	assert.Equal(t, once.QueryStringParameters, twice.QueryStringParameters)
	assert.Equal(t, once.RedirectionURL, twice.RedirectionURL)
	assert.Equal(t, 2*once.MatchCount, twice.MatchCount)
}

func TestExtractFromLog_ПоследнийРедиректПобеждает(t *testing.T) {
	log := strings.Join([]string{
		`10.0.0.1 [10/Oct/2024:13:55:36 +0000] http://portal.example.com:80 "GET /start?a=1 HTTP/1.1" 302 0 "-" "UA" "-" "-"`,
		`10.0.0.1 [10/Oct/2024:13:55:37 +0000] http://portal.example.com:80 "GET /redirect/landing?b=2 HTTP/1.1" 302 0 "-" "UA" "-" "-"`,
	}, "\n")

	result := extractor.ExtractFromLog(log, extractor.Options{})

	assert.Equal(t, 2, result.MatchCount)
	assert.Equal(t, "http://portal.example.com/redirect/landing?b=2", result.RedirectionURL)
}

func TestExtractFromLog_ПервоеВхождениеКлючаПобеждает(t *testing.T) {
	log := strings.Join([]string{
		`10.0.0.1 [10/Oct/2024:13:55:36 +0000] http://portal.example.com "GET /start?client_ip=1.1.1.1 HTTP/1.1" 200 10 "-" "UA" "-" "-"`,
		`10.0.0.1 [10/Oct/2024:13:55:37 +0000] http://portal.example.com "GET /start?client_ip=2.2.2.2&ssid=guest HTTP/1.1" 200 10 "-" "UA" "-" "-"`,
	}, "\n")

	result := extractor.ExtractFromLog(log, extractor.Options{})

	assert.Equal(t, "1.1.1.1", result.QueryStringParameters["client_ip"])
	assert.Equal(t, "guest", result.QueryStringParameters["ssid"])
}

func TestExtractFromLog_Фильтры(t *testing.T) {
	log := strings.Join([]string{
		`10.0.0.1 [10/Oct/2024:13:55:36 +0000] http://portal.example.com "GET /start?a=1 HTTP/1.1" 200 10 "-" "UA" "-" "-"`,
		`10.0.0.2 [10/Oct/2024:13:55:37 +0000] http://portal.example.com "GET /start?b=2 HTTP/1.1" 200 10 "-" "UA" "-" "-"`,
		`10.0.0.1 [10/Oct/2024:13:55:38 +0000] http://portal.example.com "GET /health HTTP/1.1" 200 10 "-" "UA" "-" "-"`,
	}, "\n")

	tests := []struct {
		name          string
		opts          extractor.Options
		expectedCount int
		expectedKeys  []string
	}{
		{
			name:          "Фильтр по IP источника",
			opts:          extractor.Options{SourceIP: "10.0.0.2"},
			expectedCount: 1,
			expectedKeys:  []string{"b"},
		},
		{
			name:          "Фильтр по подстроке пути",
			opts:          extractor.Options{PathContains: "/start"},
			expectedCount: 2,
			expectedKeys:  []string{"a", "b"},
		},
		{
			name:          "Оба фильтра сразу",
			opts:          extractor.Options{SourceIP: "10.0.0.1", PathContains: "/start"},
			expectedCount: 1,
			expectedKeys:  []string{"a"},
		},
		{
			name:          "Фильтр без совпадений дает валидный пустой результат",
			opts:          extractor.Options{SourceIP: "192.0.2.99"},
			expectedCount: 0,
			expectedKeys:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.ExtractFromLog(log, tt.opts)
			assert.Equal(t, tt.expectedCount, result.MatchCount)
			require.Len(t, result.QueryStringParameters, len(tt.expectedKeys))
			for _, key := range tt.expectedKeys {
				assert.Contains(t, result.QueryStringParameters, key)
			}
		})
	}
}

func TestExtractFromLog_НераспознанныеСтроки(t *testing.T) {
	log := strings.Join([]string{
		"произвольный мусор без структуры",
		"", // пустые строки тоже пропускаются
		`еще мусор ?client_mac=XX`, // query string без грамматики не извлекается
		sampleLine,
	}, "\n")

	result := extractor.ExtractFromLog(log, extractor.Options{})

	assert.Equal(t, 1, result.MatchCount)
	assert.Equal(t, map[string]string{"client_mac": "AA:BB:CC:DD:EE:FF"}, result.QueryStringParameters)
}

func TestExtractFromLog_ПустойQueryString(t *testing.T) {
	line := `10.0.0.1 [10/Oct/2024:13:55:36 +0000] http://portal.example.com "GET /start? HTTP/1.1" 200 10 "-" "UA" "-" "-"`

	result := extractor.ExtractFromLog(line, extractor.Options{})

	assert.Equal(t, 1, result.MatchCount)
	assert.Empty(t, result.QueryStringParameters)
}

func TestExtractFromLog_ПодавлениеПорта(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		expectedURL string
	}{
		{
			name:        "Порт 443 опускается",
			line:        sampleLine,
			expectedURL: "https://portal.example.com/start?client_mac=AA:BB:CC:DD:EE:FF",
		},
		{
			name:        "Порт 80 опускается",
			line:        `10.0.0.1 [10/Oct/2024:13:55:36 +0000] http://portal.example.com:80 "GET /start HTTP/1.1" 200 10 "-" "UA" "-" "-"`,
			expectedURL: "http://portal.example.com/start",
		},
		{
			name:        "Нестандартный порт сохраняется",
			line:        `10.0.0.1 [10/Oct/2024:13:55:36 +0000] http://portal.example.com:8080 "GET /start HTTP/1.1" 200 10 "-" "UA" "-" "-"`,
			expectedURL: "http://portal.example.com:8080/start",
		},
		{
			name:        "Подавление только литеральное: 080 не равен 80",
			line:        `10.0.0.1 [10/Oct/2024:13:55:36 +0000] http://portal.example.com:080 "GET /start HTTP/1.1" 200 10 "-" "UA" "-" "-"`,
			expectedURL: "http://portal.example.com:080/start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.ExtractFromLog(tt.line, extractor.Options{})
			require.Equal(t, 1, result.MatchCount)
			assert.Equal(t, tt.expectedURL, result.RedirectionURL)
		})
	}
}

func TestExtractFromLog_PercentДекодирование(t *testing.T) {
	line := `10.0.0.1 [10/Oct/2024:13:55:36 +0000] http://portal.example.com "GET /start?original_url=https%3A%2F%2Fexample.com%2Fhome HTTP/1.1" 200 10 "-" "UA" "-" "-"`

	result := extractor.ExtractFromLog(line, extractor.Options{})

	assert.Equal(t, "https://example.com/home", result.QueryStringParameters["original_url"])
}

func TestExtractFromLog_СтрокаБезРедиректа(t *testing.T) {
	// Совпавшая строка без маркера редиректа учитывается в matchCount,
	// но URL редиректа не устанавливает.
	line := `10.0.0.1 [10/Oct/2024:13:55:36 +0000] http://portal.example.com "GET /assets/logo.png HTTP/1.1" 200 10 "-" "UA" "-" "-"`

	result := extractor.ExtractFromLog(line, extractor.Options{})

	assert.Equal(t, 1, result.MatchCount)
	assert.Empty(t, result.RedirectionURL)
}
