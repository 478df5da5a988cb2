//nolint:testpackage // Это тесты в том же пакете для доступа к приватным компонентам
package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trekkete/spektr/internal/client/api"
	"github.com/trekkete/spektr/internal/wizard"
	"github.com/trekkete/spektr/models"
)

// stubAPIClient реализует минимальную заглушку API клиента для тестов модели.
type stubAPIClient struct {
	token string
}

func newStubAPIClient() api.Client { return &stubAPIClient{} }

func (s *stubAPIClient) Register(_ context.Context, _, _ string) error { return nil }
func (s *stubAPIClient) Login(_ context.Context, _, _ string) (string, error) {
	return s.token, nil
}

func (s *stubAPIClient) CreateConfiguration(
	_ context.Context,
	_ *models.VendorConfigurationRequest,
) (*models.VendorConfiguration, error) {
	return &models.VendorConfiguration{}, nil
}

func (s *stubAPIClient) GetConfiguration(_ context.Context, _ int64) (*models.VendorConfiguration, error) {
	return &models.VendorConfiguration{}, nil
}

func (s *stubAPIClient) ListVersions(_ context.Context, _ string) ([]models.VendorConfiguration, error) {
	return nil, nil
}

func (s *stubAPIClient) ListMyConfigurations(_ context.Context) ([]models.VendorConfiguration, error) {
	return nil, nil
}

func (s *stubAPIClient) ListSharedConfigurations(_ context.Context) ([]models.VendorConfiguration, error) {
	return nil, nil
}

func (s *stubAPIClient) ListAccessibleConfigurations(_ context.Context) ([]models.VendorConfiguration, error) {
	return nil, nil
}

func (s *stubAPIClient) ShareConfiguration(_ context.Context, _ int64, _ []string) error { return nil }
func (s *stubAPIClient) DeleteConfiguration(_ context.Context, _ int64) error            { return nil }

func (s *stubAPIClient) ParseCapture(
	_ context.Context,
	_ string,
	_ []byte,
	_, _ string,
) (*models.PcapParseResponse, error) {
	return &models.PcapParseResponse{}, nil
}

func (s *stubAPIClient) ExtractFromLog(
	_ context.Context,
	_, _, _ string,
) (*models.LogExtractionResult, error) {
	return &models.LogExtractionResult{}, nil
}

func (s *stubAPIClient) SetAuthToken(token string) { s.token = token }

// newTestModel создает модель для тестов с временным словарем параметров.
func newTestModel(t *testing.T) *model {
	t.Helper()
	stdParams, err := wizard.NewStandardParameters(filepath.Join(t.TempDir(), "std_params.json"))
	require.NoError(t, err)
	m := initModel("http://localhost:8080", false, nil, stdParams)
	return &m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// TestUpdateWelcomeScreen проверяет переходы с приветственного экрана.
func TestUpdateWelcomeScreen(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result, ok := updated.(*model)
	require.True(t, ok)
	assert.Equal(t, loginRegisterChoiceScreen, result.state)
}

// TestUpdateLoginRegisterChoice проверяет выбор входа и регистрации.
func TestUpdateLoginRegisterChoice(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantState screenState
	}{
		{"Вход", "l", loginScreen},
		{"Регистрация", "r", registerScreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.state = loginRegisterChoiceScreen

			updated, _ := m.Update(keyMsg(tt.key))
			result, ok := updated.(*model)
			require.True(t, ok)
			assert.Equal(t, tt.wantState, result.state)
			assert.Equal(t, 0, result.credentialsFocusedField)
		})
	}
}

// TestUpdateCredentialsScreen проверяет навигацию по полям входа.
func TestUpdateCredentialsScreen(t *testing.T) {
	t.Run("Tab переключает поле", func(t *testing.T) {
		m := newTestModel(t)
		m.state = loginScreen
		m.loginUsernameInput.Focus()

		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		result, ok := updated.(*model)
		require.True(t, ok)
		assert.Equal(t, 1, result.credentialsFocusedField)
		assert.True(t, result.loginPasswordInput.Focused())
		assert.False(t, result.loginUsernameInput.Focused())
	})

	t.Run("Enter на первом поле переводит к паролю", func(t *testing.T) {
		m := newTestModel(t)
		m.state = loginScreen
		m.loginUsernameInput.Focus()

		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		result, ok := updated.(*model)
		require.True(t, ok)
		assert.Equal(t, loginScreen, result.state)
		assert.Equal(t, 1, result.credentialsFocusedField)
	})

	t.Run("Esc возвращает к выбору", func(t *testing.T) {
		m := newTestModel(t)
		m.state = loginScreen

		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		result, ok := updated.(*model)
		require.True(t, ok)
		assert.Equal(t, loginRegisterChoiceScreen, result.state)
	})
}

// TestHandleLoginSuccess проверяет обработку успешного входа.
func TestHandleLoginSuccess(t *testing.T) {
	m := newTestModel(t)
	m.state = loginScreen
	// Используем заглушку клиента через реальный http-клиент, токен важнее.
	m.apiClient = newStubAPIClient()

	updated, _ := m.Update(loginSuccessMsg{Token: "jwt-token", Username: "alice"})
	result, ok := updated.(*model)
	require.True(t, ok)
	assert.Equal(t, mainMenuScreen, result.state)
	assert.Equal(t, "jwt-token", result.authToken)
	assert.Equal(t, "Выполнен как alice", result.loginStatus)
}

// TestVendorNameInput_StartsWizard проверяет запуск мастера после ввода имени.
func TestVendorNameInput_StartsWizard(t *testing.T) {
	m := newTestModel(t)
	m.state = vendorNameInputScreen
	m.username = "alice"
	m.vendorNameInput.SetValue("acme")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result, ok := updated.(*model)
	require.True(t, ok)
	assert.Equal(t, wizardScreen, result.state)
	require.NotNil(t, result.composer)
	assert.Equal(t, "acme", result.composer.VendorName())
	assert.Equal(t, "alice", result.composer.Snapshot().Operator)
}

// TestVendorNameInput_Empty проверяет, что пустое имя не запускает мастер.
func TestVendorNameInput_Empty(t *testing.T) {
	m := newTestModel(t)
	m.state = vendorNameInputScreen
	m.vendorNameInput.SetValue("   ")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result, ok := updated.(*model)
	require.True(t, ok)
	assert.Equal(t, vendorNameInputScreen, result.state)
	assert.Nil(t, result.composer)
	assert.NotEmpty(t, result.savingStatus)
}

// TestWizardScreen_ApplyEdit проверяет применение поля к текущей секции.
func TestWizardScreen_ApplyEdit(t *testing.T) {
	m := newTestModel(t)
	m.state = wizardScreen
	m.composer = wizard.NewComposer(nil, "acme", "alice")
	m.composer.JumpTo(wizard.SectionCaptivePortal)
	m.fieldNameInput.SetValue("loginUrl")
	m.fieldValueInput.SetValue("https://portal/login")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result, ok := updated.(*model)
	require.True(t, ok)

	portal := result.composer.Snapshot().CaptivePortal
	require.NotNil(t, portal)
	assert.Equal(t, "https://portal/login", portal.LoginURL)
	// После применения поля очищаются для следующего ввода.
	assert.Empty(t, result.fieldNameInput.Value())
	assert.Empty(t, result.fieldValueInput.Value())
}

// TestWizardScreen_SectionNavigation проверяет переключение секций мастера.
func TestWizardScreen_SectionNavigation(t *testing.T) {
	m := newTestModel(t)
	m.state = wizardScreen
	m.composer = wizard.NewComposer(nil, "acme", "alice")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	result, ok := updated.(*model)
	require.True(t, ok)
	assert.Equal(t, wizard.SectionCaptivePortal, result.composer.Current())

	updated, _ = result.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	result, ok = updated.(*model)
	require.True(t, ok)
	assert.Equal(t, wizard.SectionBasicInfo, result.composer.Current())
}

// TestWizardScreen_EscCancels проверяет отмену мастера.
func TestWizardScreen_EscCancels(t *testing.T) {
	m := newTestModel(t)
	m.state = wizardScreen
	m.composer = wizard.NewComposer(nil, "acme", "alice")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	result, ok := updated.(*model)
	require.True(t, ok)
	assert.Equal(t, mainMenuScreen, result.state)
	assert.Nil(t, result.composer)
}

// TestHandleVersionsLoaded проверяет заполнение списка версий.
func TestHandleVersionsLoaded(t *testing.T) {
	m := newTestModel(t)
	m.state = mainMenuScreen
	m.loadingVersions = true

	updated, _ := m.Update(versionsLoadedMsg{
		versions: []models.VendorConfiguration{
			{ID: 2, VendorName: "acme", Version: 2},
			{ID: 1, VendorName: "acme", Version: 1},
		},
		kind: versionListHistory,
	})
	result, ok := updated.(*model)
	require.True(t, ok)
	assert.Equal(t, versionListScreen, result.state)
	assert.False(t, result.loadingVersions)
	assert.Len(t, result.versionList.Items(), 2)
}

// TestParamListScreen проверяет операции со словарем стандартных параметров.
func TestParamListScreen(t *testing.T) {
	t.Run("Добавление параметра", func(t *testing.T) {
		m := newTestModel(t)
		m.state = paramInputScreen
		m.paramNameInput.SetValue("vlan_id")

		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		result, ok := updated.(*model)
		require.True(t, ok)
		assert.Equal(t, paramListScreen, result.state)
		assert.Contains(t, result.stdParams.Names(), "vlan_id")
	})

	t.Run("Сброс к словарю по умолчанию", func(t *testing.T) {
		m := newTestModel(t)
		require.NoError(t, m.stdParams.Add("vlan_id"))
		m.state = paramListScreen

		updated, _ := m.Update(keyMsg("r"))
		result, ok := updated.(*model)
		require.True(t, ok)
		assert.NotContains(t, result.stdParams.Names(), "vlan_id")
	})
}
