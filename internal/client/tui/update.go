package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/trekkete/spektr/internal/wizard"
)

// Init - команда, выполняемая при запуске приложения.
func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// setStatusMessage устанавливает статусное сообщение и запускает таймер для его очистки.
func (m *model) setStatusMessage(status string) (tea.Model, tea.Cmd) {
	m.savingStatus = status
	return m, clearStatusCmd(statusMessageTimeout)
}

// Update обрабатывает входящие сообщения.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := m.docStyle.GetFrameSize()
		listWidth := msg.Width - h
		listHeight := msg.Height - v - helpStatusHeightOffset
		m.mainMenu.SetSize(listWidth, listHeight)
		m.versionList.SetSize(listWidth, listHeight)
		m.paramList.SetSize(listWidth, listHeight)
		m.vendorNameInput.Width = listWidth - passwordInputOffset
		return m, nil

	case clearStatusMsg:
		m.savingStatus = ""
		return m, nil

	case loginSuccessMsg:
		return m.handleLoginSuccess(msg)

	case LoginError:
		return m.setStatusMessage("Ошибка входа: " + msg.Error())

	case registerSuccessMsg:
		m.state = loginScreen
		m.loginUsernameInput.Focus()
		m.loginPasswordInput.Blur()
		m.credentialsFocusedField = 0
		return m.setStatusMessage("Регистрация выполнена, теперь войдите")

	case RegisterError:
		return m.setStatusMessage("Ошибка регистрации: " + msg.Error())

	case versionsLoadedMsg:
		return m.handleVersionsLoaded(msg)

	case versionsLoadErrorMsg:
		m.loadingVersions = false
		m.state = mainMenuScreen
		return m.setStatusMessage(fmt.Sprintf("Ошибка загрузки версий: %v", msg.err))

	case commitSuccessMsg:
		m.composer = nil
		m.state = mainMenuScreen
		return m.setStatusMessage(fmt.Sprintf(
			"Сохранена версия %s v%d (#%d)",
			msg.configuration.VendorName, msg.configuration.Version, msg.configuration.ID))

	case commitErrorMsg:
		return m.setStatusMessage(fmt.Sprintf("Ошибка сохранения: %v", msg.err))

	case revisionLoadedMsg:
		return m.setStatusMessage("Загружена последняя ревизия линии")

	case revisionLoadErrorMsg:
		return m.setStatusMessage(fmt.Sprintf("Ревизия не загружена: %v", msg.err))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen делегирует сообщение обработчику текущего экрана.
func (m *model) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case welcomeScreen:
		return m.updateWelcomeScreen(msg)
	case loginRegisterChoiceScreen:
		return m.updateLoginRegisterChoiceScreen(msg)
	case loginScreen:
		return m.updateCredentialsScreen(msg, &m.loginUsernameInput, &m.loginPasswordInput, m.loginAction)
	case registerScreen:
		return m.updateCredentialsScreen(msg, &m.registerUsernameInput, &m.registerPasswordInput, m.registerAction)
	case mainMenuScreen:
		return m.updateMainMenuScreen(msg)
	case vendorNameInputScreen:
		return m.updateVendorNameInputScreen(msg)
	case wizardScreen:
		return m.updateWizardScreen(msg)
	case historyInputScreen:
		return m.updateHistoryInputScreen(msg)
	case versionListScreen:
		return m.updateVersionListScreen(msg)
	case paramListScreen:
		return m.updateParamListScreen(msg)
	case paramInputScreen:
		return m.updateParamInputScreen(msg)
	default:
		return m, nil
	}
}

// handleLoginSuccess сохраняет токен и переводит пользователя в главное меню.
func (m *model) handleLoginSuccess(msg loginSuccessMsg) (tea.Model, tea.Cmd) {
	m.authToken = msg.Token
	m.username = msg.Username
	m.loginStatus = "Выполнен как " + msg.Username
	m.apiClient.SetAuthToken(msg.Token)
	m.state = mainMenuScreen
	slog.Info("Вход выполнен", "username", msg.Username)
	return m.setStatusMessage("Вход выполнен")
}

// handleVersionsLoaded заполняет список версий полученными данными.
func (m *model) handleVersionsLoaded(msg versionsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadingVersions = false
	items := make([]list.Item, 0, len(msg.versions))
	for _, v := range msg.versions {
		items = append(items, versionItem{configuration: v})
	}
	cmd := m.versionList.SetItems(items)
	m.state = versionListScreen
	return m, tea.Batch(cmd, tea.ClearScreen)
}

// updateWelcomeScreen обрабатывает приветственный экран.
func (m *model) updateWelcomeScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter:
			m.state = loginRegisterChoiceScreen
			return m, nil
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// updateLoginRegisterChoiceScreen обрабатывает выбор входа или регистрации.
func (m *model) updateLoginRegisterChoiceScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "l", "L":
			m.state = loginScreen
			m.credentialsFocusedField = 0
			m.loginUsernameInput.Focus()
			m.loginPasswordInput.Blur()
			return m, textinput.Blink
		case "r", "R":
			m.state = registerScreen
			m.credentialsFocusedField = 0
			m.registerUsernameInput.Focus()
			m.registerPasswordInput.Blur()
			return m, textinput.Blink
		case keyEsc, "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// loginAction запускает вход с введенными учетными данными.
func (m *model) loginAction() (tea.Model, tea.Cmd) {
	username := m.loginUsernameInput.Value()
	password := m.loginPasswordInput.Value()
	cmd := m.makeLoginCmd(username, password)
	newM, statusCmd := m.setStatusMessage("Выполняется вход...")
	return newM, tea.Batch(cmd, statusCmd)
}

// registerAction запускает регистрацию с введенными учетными данными.
func (m *model) registerAction() (tea.Model, tea.Cmd) {
	username := m.registerUsernameInput.Value()
	password := m.registerPasswordInput.Value()
	cmd := m.makeRegisterCmd(username, password)
	newM, statusCmd := m.setStatusMessage("Выполняется регистрация...")
	return newM, tea.Batch(cmd, statusCmd)
}

// updateCredentialsScreen обрабатывает ввод пары имя/пароль на экранах входа и регистрации.
func (m *model) updateCredentialsScreen(
	msg tea.Msg,
	usernameInput, passwordInput *textinput.Model,
	submit func() (tea.Model, tea.Cmd),
) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc:
			m.state = loginRegisterChoiceScreen
			return m, nil
		case keyEnter:
			if m.credentialsFocusedField == 0 {
				// Переходим к полю пароля.
				m.credentialsFocusedField = 1
				usernameInput.Blur()
				passwordInput.Focus()
				return m, textinput.Blink
			}
			return submit()
		case keyTab, keyShiftTab, "up", "down":
			if m.credentialsFocusedField == 0 {
				m.credentialsFocusedField = 1
				usernameInput.Blur()
				passwordInput.Focus()
			} else {
				m.credentialsFocusedField = 0
				passwordInput.Blur()
				usernameInput.Focus()
			}
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	if m.credentialsFocusedField == 0 {
		*usernameInput, cmd = usernameInput.Update(msg)
	} else {
		*passwordInput, cmd = passwordInput.Update(msg)
	}
	return m, cmd
}

// updateMainMenuScreen обрабатывает главное меню.
func (m *model) updateMainMenuScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter:
			if item, ok := m.mainMenu.SelectedItem().(menuItem); ok {
				return m.handleMenuSelection(item.id)
			}
		case "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.mainMenu, cmd = m.mainMenu.Update(msg)
	return m, cmd
}

// handleMenuSelection выполняет выбранный пункт главного меню.
func (m *model) handleMenuSelection(id string) (tea.Model, tea.Cmd) {
	switch id {
	case "new_version":
		m.vendorNameInput.SetValue("")
		m.vendorNameInput.Focus()
		m.state = vendorNameInputScreen
		return m, textinput.Blink
	case "my_versions":
		m.loadingVersions = true
		m.versionListKind = versionListMy
		m.versionList.Title = "Мои версии"
		return m, loadVersionsCmd(m, versionListMy, "")
	case "shared_versions":
		m.loadingVersions = true
		m.versionListKind = versionListShared
		m.versionList.Title = "Доступные мне версии"
		return m, loadVersionsCmd(m, versionListShared, "")
	case "all_versions":
		m.loadingVersions = true
		m.versionListKind = versionListAll
		m.versionList.Title = "Все доступные версии"
		return m, loadVersionsCmd(m, versionListAll, "")
	case "history":
		m.vendorNameInput.SetValue("")
		m.vendorNameInput.Focus()
		m.state = historyInputScreen
		return m, textinput.Blink
	case "std_params":
		return m.showParamList()
	}
	return m, nil
}

// showParamList заполняет и показывает экран словаря параметров.
func (m *model) showParamList() (tea.Model, tea.Cmd) {
	if m.stdParams == nil {
		return m.setStatusMessage("Словарь параметров недоступен")
	}
	names := m.stdParams.Names()
	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		items = append(items, paramItem{name: name})
	}
	cmd := m.paramList.SetItems(items)
	m.state = paramListScreen
	return m, cmd
}

// updateVendorNameInputScreen обрабатывает ввод имени вендора для новой версии.
func (m *model) updateVendorNameInputScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc:
			m.state = mainMenuScreen
			return m, nil
		case keyEnter:
			vendorName := strings.TrimSpace(m.vendorNameInput.Value())
			if vendorName == "" {
				return m.setStatusMessage("Имя вендора не может быть пустым")
			}
			m.composer = wizard.NewComposer(m.apiClient, vendorName, m.username)
			m.wizardFocusedField = 0
			m.fieldNameInput.SetValue("")
			m.fieldValueInput.SetValue("")
			m.fieldNameInput.Focus()
			m.fieldValueInput.Blur()
			m.state = wizardScreen
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.vendorNameInput, cmd = m.vendorNameInput.Update(msg)
	return m, cmd
}

// updateHistoryInputScreen обрабатывает ввод имени вендора для истории линии.
func (m *model) updateHistoryInputScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc:
			m.state = mainMenuScreen
			return m, nil
		case keyEnter:
			vendorName := strings.TrimSpace(m.vendorNameInput.Value())
			if vendorName == "" {
				return m.setStatusMessage("Имя вендора не может быть пустым")
			}
			m.loadingVersions = true
			m.versionListKind = versionListHistory
			m.versionList.Title = "История линии " + vendorName
			return m, loadVersionsCmd(m, versionListHistory, vendorName)
		}
	}

	var cmd tea.Cmd
	m.vendorNameInput, cmd = m.vendorNameInput.Update(msg)
	return m, cmd
}

// updateWizardScreen обрабатывает пошаговый мастер заполнения снапшота.
func (m *model) updateWizardScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.composer == nil {
		m.state = mainMenuScreen
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc:
			m.composer = nil
			m.state = mainMenuScreen
			return m, nil
		case "ctrl+n":
			m.composer.Next()
			return m, nil
		case "ctrl+p":
			m.composer.Previous()
			return m, nil
		case "ctrl+e":
			m.composer.LoadSample()
			return m.setStatusMessage("Загружен демонстрационный снапшот")
		case "ctrl+l":
			return m, loadPreviousRevisionCmd(m)
		case "ctrl+s":
			newM, statusCmd := m.setStatusMessage("Сохранение версии...")
			return newM, tea.Batch(commitCmd(m), statusCmd)
		case keyTab, keyShiftTab:
			if m.wizardFocusedField == 0 {
				m.wizardFocusedField = 1
				m.fieldNameInput.Blur()
				m.fieldValueInput.Focus()
			} else {
				m.wizardFocusedField = 0
				m.fieldValueInput.Blur()
				m.fieldNameInput.Focus()
			}
			return m, textinput.Blink
		case keyEnter:
			return m.applyWizardEdit()
		}
	}

	var cmd tea.Cmd
	if m.wizardFocusedField == 0 {
		m.fieldNameInput, cmd = m.fieldNameInput.Update(msg)
	} else {
		m.fieldValueInput, cmd = m.fieldValueInput.Update(msg)
	}
	return m, cmd
}

// applyWizardEdit применяет введенную пару поле/значение к текущей секции.
func (m *model) applyWizardEdit() (tea.Model, tea.Cmd) {
	field := strings.TrimSpace(m.fieldNameInput.Value())
	if field == "" {
		return m.setStatusMessage("Укажите имя поля")
	}
	value := coerceFieldValue(m.fieldValueInput.Value())
	if err := m.composer.ApplyFieldEdit(m.composer.Current(), field, value); err != nil {
		return m.setStatusMessage(fmt.Sprintf("Ошибка: %v", err))
	}

	m.fieldNameInput.SetValue("")
	m.fieldValueInput.SetValue("")
	m.wizardFocusedField = 0
	m.fieldValueInput.Blur()
	m.fieldNameInput.Focus()
	return m.setStatusMessage("Поле " + field + " обновлено")
}

// coerceFieldValue приводит текстовый ввод к булеву или числовому значению,
// если он на них похож. Снапшот различает false и "неизвестно", поэтому
// пустая строка остается пустой строкой.
func coerceFieldValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(trimmed); err == nil && trimmed != "" {
		return n
	}
	return trimmed
}

// updateVersionListScreen обрабатывает экран списка версий.
func (m *model) updateVersionListScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc, keyBack:
			m.state = mainMenuScreen
			return m, tea.ClearScreen
		}
	}

	var cmd tea.Cmd
	m.versionList, cmd = m.versionList.Update(msg)
	return m, cmd
}

// updateParamListScreen обрабатывает экран словаря стандартных параметров.
func (m *model) updateParamListScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc, keyBack:
			m.state = mainMenuScreen
			return m, tea.ClearScreen
		case "a":
			m.paramNameInput.SetValue("")
			m.paramNameInput.Focus()
			m.state = paramInputScreen
			return m, textinput.Blink
		case "d":
			if item, ok := m.paramList.SelectedItem().(paramItem); ok {
				if err := m.stdParams.Remove(item.name); err != nil {
					return m.setStatusMessage(fmt.Sprintf("Ошибка удаления: %v", err))
				}
				return m.showParamList()
			}
		case "r":
			if err := m.stdParams.ResetToDefault(); err != nil {
				return m.setStatusMessage(fmt.Sprintf("Ошибка сброса: %v", err))
			}
			return m.showParamList()
		}
	}

	var cmd tea.Cmd
	m.paramList, cmd = m.paramList.Update(msg)
	return m, cmd
}

// updateParamInputScreen обрабатывает ввод имени нового стандартного параметра.
func (m *model) updateParamInputScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc:
			m.state = paramListScreen
			return m, nil
		case keyEnter:
			name := strings.TrimSpace(m.paramNameInput.Value())
			if name == "" {
				return m.setStatusMessage("Имя параметра не может быть пустым")
			}
			if err := m.stdParams.Add(name); err != nil {
				return m.setStatusMessage(fmt.Sprintf("Ошибка добавления: %v", err))
			}
			return m.showParamList()
		}
	}

	var cmd tea.Cmd
	m.paramNameInput, cmd = m.paramNameInput.Update(msg)
	return m, cmd
}
