package tui

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trekkete/spektr/internal/client/api"
	"github.com/trekkete/spektr/internal/wizard"
)

// Start запускает TUI приложение.
func Start(serverURL, stdParamsPath string, debugMode bool) {
	if serverURL == "" {
		fmt.Fprintln(os.Stderr, "URL сервера не указан (--server-url)")
		os.Exit(1)
	}

	apiClient := api.NewHTTPClient(serverURL)
	slog.Info("API клиент инициализирован", "baseURL", serverURL)

	stdParams, err := wizard.NewStandardParameters(stdParamsPath)
	if err != nil {
		slog.Error("Ошибка загрузки словаря стандартных параметров", "path", stdParamsPath, "error", err)
		fmt.Fprintf(os.Stderr, "Ошибка загрузки словаря параметров %s: %v\n", stdParamsPath, err)
		os.Exit(1)
	}

	m := initModel(serverURL, debugMode, apiClient, stdParams)

	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, errRun := p.Run(); errRun != nil {
		slog.Error("Ошибка при запуске TUI", "error", errRun)
		os.Exit(1)
	}
}
