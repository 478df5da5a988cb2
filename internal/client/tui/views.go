package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trekkete/spektr/internal/wizard"
)

// helpTextMap сопоставляет экранам строку подсказки внизу.
var helpTextMap = map[screenState]string{
	welcomeScreen:             "Enter - начать, q - выход",
	loginRegisterChoiceScreen: "L - войти, R - зарегистрироваться, Esc - выход",
	loginScreen:               "Enter - далее/войти, Tab - сменить поле, Esc - назад",
	registerScreen:            "Enter - далее/зарегистрироваться, Tab - сменить поле, Esc - назад",
	mainMenuScreen:            "Enter - выбрать, q - выход",
	vendorNameInputScreen:     "Enter - начать мастер, Esc - назад",
	wizardScreen: "Enter - применить поле, Tab - сменить поле, Ctrl+N/P - секции, " +
		"Ctrl+E - пример, Ctrl+L - последняя ревизия, Ctrl+S - сохранить, Esc - отмена",
	historyInputScreen: "Enter - показать историю, Esc - назад",
	versionListScreen:  "Esc/b - назад",
	paramListScreen:    "a - добавить, d - удалить, r - сбросить, Esc/b - назад",
	paramInputScreen:   "Enter - добавить, Esc - назад",
}

// getMainContentView возвращает основное содержимое для текущего состояния.
func (m *model) getMainContentView() string {
	switch m.state {
	case welcomeScreen:
		return m.viewWelcomeScreen()
	case loginRegisterChoiceScreen:
		return m.viewLoginRegisterChoiceScreen()
	case loginScreen:
		return m.viewCredentialsScreen("Вход в учетную запись", m.loginUsernameInput.View(), m.loginPasswordInput.View())
	case registerScreen:
		return m.viewCredentialsScreen("Регистрация", m.registerUsernameInput.View(), m.registerPasswordInput.View())
	case mainMenuScreen:
		return m.mainMenu.View()
	case vendorNameInputScreen:
		return m.viewVendorNameInputScreen("Новая версия конфигурации")
	case wizardScreen:
		return m.viewWizardScreen()
	case historyInputScreen:
		return m.viewVendorNameInputScreen("История линии вендора")
	case versionListScreen:
		return m.viewVersionListScreen()
	case paramListScreen:
		return m.paramList.View()
	case paramInputScreen:
		return fmt.Sprintf("Новый стандартный параметр\n\n%s", m.paramNameInput.View())
	default:
		return "Неизвестное состояние!"
	}
}

// viewWelcomeScreen отображает приветственный экран.
func (m *model) viewWelcomeScreen() string {
	return fmt.Sprintf(
		"Spektr: профили интеграции вендоров captive-портала\n\nСервер: %s\nВход: %s",
		m.serverURL, m.loginStatus)
}

// viewLoginRegisterChoiceScreen отображает экран выбора входа или регистрации.
func (m *model) viewLoginRegisterChoiceScreen() string {
	return "Войти или зарегистрироваться?\n\n[L] Войти\n[R] Зарегистрироваться"
}

// viewCredentialsScreen отображает экран ввода пары имя/пароль.
func (m *model) viewCredentialsScreen(title, usernameView, passwordView string) string {
	return fmt.Sprintf("%s\n\n%s\n%s", title, usernameView, passwordView)
}

// viewVendorNameInputScreen отображает экран ввода имени вендора.
func (m *model) viewVendorNameInputScreen(title string) string {
	return fmt.Sprintf("%s\n\n%s", title, m.vendorNameInput.View())
}

// viewVersionListScreen отображает экран со списком версий.
func (m *model) viewVersionListScreen() string {
	if m.loadingVersions {
		return "Загрузка списка версий..."
	}
	if len(m.versionList.Items()) == 0 {
		return m.versionList.Title + "\n\nВерсий пока нет."
	}
	return m.versionList.View()
}

// viewWizardScreen отображает текущую секцию мастера и поля редактирования.
func (m *model) viewWizardScreen() string {
	if m.composer == nil {
		return "Мастер не запущен."
	}

	var view strings.Builder
	view.WriteString(fmt.Sprintf("Вендор: %s\n", m.composer.VendorName()))
	view.WriteString(fmt.Sprintf("Секция %d/%d: %s\n\n",
		int(m.composer.Current())+1, wizard.SectionTotal(), m.composer.Current()))

	view.WriteString(m.currentSectionJSON())
	view.WriteString("\n\n")
	view.WriteString(m.fieldNameInput.View())
	view.WriteString("\n")
	view.WriteString(m.fieldValueInput.View())
	return view.String()
}

// currentSectionJSON возвращает текущую секцию снапшота в виде JSON для просмотра.
func (m *model) currentSectionJSON() string {
	snapshot := m.composer.Snapshot()
	var section any
	switch m.composer.Current() {
	case wizard.SectionBasicInfo:
		section = map[string]string{
			"vendorName":      m.composer.VendorName(),
			"model":           snapshot.Model,
			"firmwareVersion": snapshot.FirmwareVersion,
			"operator":        snapshot.Operator,
		}
	case wizard.SectionCaptivePortal:
		section = snapshot.CaptivePortal
	case wizard.SectionRadius:
		section = snapshot.Radius
	case wizard.SectionWalledGarden:
		section = snapshot.WalledGarden
	case wizard.SectionLoginMethods:
		section = snapshot.LoginMethods
	}
	if section == nil {
		return "(секция пока не заполнена)"
	}
	raw, err := json.MarshalIndent(section, "", "  ")
	if err != nil {
		return fmt.Sprintf("(ошибка отображения секции: %v)", err)
	}
	return string(raw)
}

// getDebugInfoString генерирует отладочную информацию.
func (m *model) getDebugInfoString() string {
	var debugInfo strings.Builder
	debugInfo.WriteString(fmt.Sprintf(" [State: %s]\n", m.state.String()))
	debugInfo.WriteString(fmt.Sprintf(" [URL: %s]\n", m.serverURL))
	debugInfo.WriteString(fmt.Sprintf(" [Login: %s]\n", m.loginStatus))
	if m.composer != nil {
		debugInfo.WriteString(fmt.Sprintf(" [Wizard: %s, section %s]\n",
			m.composer.VendorName(), m.composer.Current()))
	}
	return debugInfo.String()
}

// View отрисовывает пользовательский интерфейс.
func (m *model) View() string {
	mainContent := m.getMainContentView()
	help, ok := helpTextMap[m.state]
	if !ok {
		help = fmt.Sprintf("State: %s", m.state.String())
	}

	var footer strings.Builder
	if m.savingStatus != "" {
		footer.WriteString("\n")
		footer.WriteString(m.savingStatus)
	}
	if m.debugMode {
		footer.WriteString("\n\n---\nОтладка:\n")
		footer.WriteString(m.getDebugInfoString())
	}

	styledContent := m.docStyle.Render(mainContent)
	return fmt.Sprintf("%s\n%s%s", styledContent, help, footer.String())
}
