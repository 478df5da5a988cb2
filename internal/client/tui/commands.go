package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trekkete/spektr/internal/client/api"
	"github.com/trekkete/spektr/models"
)

// clearStatusMsg очищает статусное сообщение внизу экрана.
type clearStatusMsg struct{}

// clearStatusCmd возвращает команду, которая отправит clearStatusMsg через delay.
func clearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// --- Сообщения и команды для API --- //

type loginSuccessMsg struct {
	Token    string
	Username string
}

type LoginError struct {
	err error
}

func (e LoginError) Error() string {
	return e.err.Error()
}

// makeLoginCmd выполняет вход через API.
func (m *model) makeLoginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		token, err := m.apiClient.Login(ctx, username, password)
		if err != nil {
			return LoginError{err: err}
		}
		return loginSuccessMsg{Token: token, Username: username}
	}
}

type registerSuccessMsg struct{}

type RegisterError struct {
	err error
}

func (e RegisterError) Error() string {
	return e.err.Error()
}

// makeRegisterCmd выполняет регистрацию через API.
func (m *model) makeRegisterCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		err := m.apiClient.Register(ctx, username, password)
		if err != nil {
			return RegisterError{err: err}
		}
		return registerSuccessMsg{}
	}
}

// --- Сообщения и команды для списков версий --- //

// versionsLoadedMsg сообщает о завершении загрузки списка версий.
type versionsLoadedMsg struct {
	versions []models.VendorConfiguration
	kind     versionListKind
}

// versionsLoadErrorMsg сообщает об ошибке при загрузке списка версий.
type versionsLoadErrorMsg struct {
	err error
}

// loadVersionsCmd загружает список версий с сервера.
func loadVersionsCmd(m *model, kind versionListKind, vendorName string) tea.Cmd {
	return func() tea.Msg {
		if m.apiClient == nil {
			return versionsLoadErrorMsg{err: errors.New("API клиент не инициализирован")}
		}
		if m.authToken == "" {
			return versionsLoadErrorMsg{err: errors.New("требуется авторизация")}
		}

		ctx := context.Background()
		var versions []models.VendorConfiguration
		var err error
		switch kind {
		case versionListMy:
			versions, err = m.apiClient.ListMyConfigurations(ctx)
		case versionListShared:
			versions, err = m.apiClient.ListSharedConfigurations(ctx)
		case versionListAll:
			versions, err = m.apiClient.ListAccessibleConfigurations(ctx)
		case versionListHistory:
			versions, err = m.apiClient.ListVersions(ctx, vendorName)
		}
		if err != nil {
			if errors.Is(err, api.ErrAuthorization) {
				slog.Error("Ошибка загрузки списка версий: ошибка авторизации")
				return versionsLoadErrorMsg{err: api.ErrAuthorization}
			}
			slog.Error("Ошибка загрузки списка версий", "error", err)
			return versionsLoadErrorMsg{err: err}
		}

		slog.Info("Список версий успешно загружен", "count", len(versions))
		return versionsLoadedMsg{versions: versions, kind: kind}
	}
}

// --- Сообщения и команды мастера --- //

// commitSuccessMsg сообщает об успешном сохранении новой версии.
type commitSuccessMsg struct {
	configuration *models.VendorConfiguration
}

// commitErrorMsg сообщает об ошибке при сохранении новой версии.
type commitErrorMsg struct {
	err error
}

// commitCmd сохраняет собранный мастером снапшот как новую версию.
func commitCmd(m *model) tea.Cmd {
	return func() tea.Msg {
		if m.composer == nil {
			return commitErrorMsg{err: errors.New("мастер не запущен")}
		}

		ctx := context.Background()
		cfg, err := m.composer.Commit(ctx)
		if err != nil {
			slog.Error("Ошибка сохранения версии", "error", err)
			return commitErrorMsg{err: err}
		}

		slog.Info("Версия сохранена", "id", cfg.ID, "vendor", cfg.VendorName, "version", cfg.Version)
		return commitSuccessMsg{configuration: cfg}
	}
}

// revisionLoadedMsg сообщает о загрузке последней ревизии линии в мастер.
type revisionLoadedMsg struct{}

// revisionLoadErrorMsg сообщает об ошибке загрузки последней ревизии.
type revisionLoadErrorMsg struct {
	err error
}

// loadPreviousRevisionCmd подтягивает в мастер последнюю версию линии вендора.
func loadPreviousRevisionCmd(m *model) tea.Cmd {
	return func() tea.Msg {
		if m.composer == nil {
			return revisionLoadErrorMsg{err: errors.New("мастер не запущен")}
		}

		ctx := context.Background()
		if err := m.composer.LoadPreviousRevision(ctx); err != nil {
			slog.Warn("Не удалось загрузить предыдущую ревизию", "error", err)
			return revisionLoadErrorMsg{err: err}
		}
		return revisionLoadedMsg{}
	}
}
