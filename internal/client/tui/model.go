package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/trekkete/spektr/internal/client/api"
	"github.com/trekkete/spektr/internal/wizard"
	"github.com/trekkete/spektr/models"
)

// Состояния (экраны) приложения.
type screenState int

const (
	welcomeScreen             screenState = iota // Приветственный экран
	loginRegisterChoiceScreen                    // Экран выбора "Войти или Зарегистрироваться?"
	loginScreen                                  // Экран ввода данных для входа
	registerScreen                               // Экран ввода данных для регистрации
	mainMenuScreen                               // Главное меню
	vendorNameInputScreen                        // Экран ввода имени вендора для новой версии
	wizardScreen                                 // Пошаговый мастер заполнения снапшота
	historyInputScreen                           // Экран ввода имени вендора для истории
	versionListScreen                            // Экран списка версий
	paramListScreen                              // Экран словаря стандартных параметров
	paramInputScreen                             // Экран ввода нового стандартного параметра
)

// String возвращает человекочитаемое имя состояния для отладки.
func (s screenState) String() string {
	names := map[screenState]string{
		welcomeScreen:             "welcome",
		loginRegisterChoiceScreen: "loginRegisterChoice",
		loginScreen:               "login",
		registerScreen:            "register",
		mainMenuScreen:            "mainMenu",
		vendorNameInputScreen:     "vendorNameInput",
		wizardScreen:              "wizard",
		historyInputScreen:        "historyInput",
		versionListScreen:         "versionList",
		paramListScreen:           "paramList",
		paramInputScreen:          "paramInput",
	}
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Какой список версий запрошен с сервера.
type versionListKind int

const (
	versionListMy versionListKind = iota
	versionListShared
	versionListAll
	versionListHistory
)

// Константы для TUI.
const (
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyBack     = "b"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"

	helpStatusHeightOffset   = 2
	passwordInputOffset      = 4
	docStyleMarginVertical   = 1
	docStyleMarginHorizontal = 2

	statusMessageTimeout = 2 * time.Second
)

// menuItem представляет пункт главного меню.
type menuItem struct {
	title string
	id    string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return "" }
func (i menuItem) FilterValue() string { return i.title }

// versionItem представляет версию конфигурации в списке.
// Реализует интерфейс list.Item.
type versionItem struct {
	configuration models.VendorConfiguration
}

func (i versionItem) Title() string {
	return fmt.Sprintf("%s v%d (#%d)", i.configuration.VendorName, i.configuration.Version, i.configuration.ID)
}

func (i versionItem) Description() string {
	desc := fmt.Sprintf("Владелец: %s | %s",
		i.configuration.OwnerUsername,
		i.configuration.CreatedAt.Format("2006-01-02 15:04"))
	if i.configuration.Description != "" {
		desc += " | " + i.configuration.Description
	}
	return desc
}

func (i versionItem) FilterValue() string { return i.configuration.VendorName }

// paramItem представляет имя стандартного параметра в списке словаря.
type paramItem struct {
	name string
}

func (i paramItem) Title() string       { return i.name }
func (i paramItem) Description() string { return "" }
func (i paramItem) FilterValue() string { return i.name }

// model представляет состояние TUI приложения.
type model struct {
	state     screenState
	serverURL string
	debugMode bool

	// Интеграция с сервером.
	apiClient   api.Client
	authToken   string
	username    string
	loginStatus string

	// Мастер составления ревизии.
	composer  *wizard.Composer
	stdParams *wizard.StandardParameters

	// Компоненты экранов.
	mainMenu              list.Model
	versionList           list.Model
	paramList             list.Model
	loginUsernameInput    textinput.Model
	loginPasswordInput    textinput.Model
	registerUsernameInput textinput.Model
	registerPasswordInput textinput.Model
	vendorNameInput       textinput.Model
	fieldNameInput        textinput.Model
	fieldValueInput       textinput.Model
	paramNameInput        textinput.Model

	credentialsFocusedField int // 0 - имя пользователя, 1 - пароль
	wizardFocusedField      int // 0 - имя поля, 1 - значение

	versionListKind versionListKind
	loadingVersions bool

	savingStatus string
	err          error
	width        int
	height       int

	docStyle lipgloss.Style
}

// Константы, используемые при инициализации.
const (
	initUserCharLimit     = 128
	initUserWidth         = 30
	initPasswordCharLimit = 156
	initVendorCharLimit   = 128
	initFieldCharLimit    = 1024
	initFieldWidth        = 40
)

// initLoginInputs инициализирует поля для экрана входа.
func initLoginInputs() (textinput.Model, textinput.Model) {
	userInput := textinput.New()
	userInput.Placeholder = "Имя пользователя"
	userInput.CharLimit = initUserCharLimit
	userInput.Width = initUserWidth

	passInput := textinput.New()
	passInput.Placeholder = "Пароль"
	passInput.CharLimit = initPasswordCharLimit
	passInput.Width = initUserWidth
	passInput.EchoMode = textinput.EchoPassword
	return userInput, passInput
}

// initVendorNameInput инициализирует поле ввода имени вендора.
func initVendorNameInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Имя вендора, например cisco-meraki"
	ti.CharLimit = initVendorCharLimit
	ti.Width = initFieldWidth
	return ti
}

// initFieldInputs инициализирует поля редактирования секции мастера.
func initFieldInputs() (textinput.Model, textinput.Model) {
	nameInput := textinput.New()
	nameInput.Placeholder = "Имя поля, например loginUrl"
	nameInput.CharLimit = initUserCharLimit
	nameInput.Width = initFieldWidth

	valueInput := textinput.New()
	valueInput.Placeholder = "Значение"
	valueInput.CharLimit = initFieldCharLimit
	valueInput.Width = initFieldWidth
	return nameInput, valueInput
}

// initParamNameInput инициализирует поле ввода имени стандартного параметра.
func initParamNameInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Имя параметра, например vlan_id"
	ti.CharLimit = initUserCharLimit
	ti.Width = initFieldWidth
	return ti
}

// initMainMenu инициализирует компонент списка главного меню.
func initMainMenu() list.Model {
	menu := list.New([]list.Item{
		menuItem{title: "Новая версия конфигурации", id: "new_version"},
		menuItem{title: "Мои версии", id: "my_versions"},
		menuItem{title: "Доступные мне версии", id: "shared_versions"},
		menuItem{title: "Все доступные версии", id: "all_versions"},
		menuItem{title: "История линии вендора", id: "history"},
		menuItem{title: "Словарь стандартных параметров", id: "std_params"},
	}, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Spektr: профили интеграции вендоров"
	menu.SetShowHelp(false)
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.Styles.Title = list.DefaultStyles().Title.Bold(true)
	return menu
}

// initVersionList инициализирует компонент списка версий.
func initVersionList() list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Версии конфигураций"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = list.DefaultStyles().Title.Bold(true)
	return l
}

// initParamList инициализирует компонент списка стандартных параметров.
func initParamList() list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Стандартные параметры captive-портала"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = list.DefaultStyles().Title.Bold(true)
	return l
}

// initDocStyle инициализирует основной стиль документа.
func initDocStyle() lipgloss.Style {
	return lipgloss.NewStyle().Margin(docStyleMarginVertical, docStyleMarginHorizontal)
}

// initModel создает начальное состояние модели.
func initModel(serverURL string, debugMode bool, apiClient api.Client, stdParams *wizard.StandardParameters) model {
	loginUserInput, loginPassInput := initLoginInputs()
	regUserInput, regPassInput := initLoginInputs()
	fieldNameInput, fieldValueInput := initFieldInputs()

	return model{
		state:                 welcomeScreen,
		serverURL:             serverURL,
		debugMode:             debugMode,
		apiClient:             apiClient,
		stdParams:             stdParams,
		loginStatus:           "Не выполнен",
		mainMenu:              initMainMenu(),
		versionList:           initVersionList(),
		paramList:             initParamList(),
		loginUsernameInput:    loginUserInput,
		loginPasswordInput:    loginPassInput,
		registerUsernameInput: regUserInput,
		registerPasswordInput: regPassInput,
		vendorNameInput:       initVendorNameInput(),
		fieldNameInput:        fieldNameInput,
		fieldValueInput:       fieldValueInput,
		paramNameInput:        initParamNameInput(),
		docStyle:              initDocStyle(),
	}
}
