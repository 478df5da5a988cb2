package wizard_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trekkete/spektr/internal/wizard"
)

func newTestStandardParameters(t *testing.T) *wizard.StandardParameters {
	t.Helper()
	path := filepath.Join(t.TempDir(), "std_params.json")
	params, err := wizard.NewStandardParameters(path)
	require.NoError(t, err)
	return params
}

func TestStandardParameters_Defaults(t *testing.T) {
	params := newTestStandardParameters(t)

	assert.Equal(t, []string{
		"client_ip",
		"client_mac",
		"ap_mac",
		"ssid",
		"nas_id",
		"original_url",
	}, params.Names())
}

func TestStandardParameters_Add(t *testing.T) {
	params := newTestStandardParameters(t)

	require.NoError(t, params.Add("vlan_id"))
	assert.Contains(t, params.Names(), "vlan_id")

	// Дубликат и пустое имя не меняют словарь.
	before := params.Names()
	require.NoError(t, params.Add("vlan_id"))
	require.NoError(t, params.Add(""))
	assert.Equal(t, before, params.Names())
}

func TestStandardParameters_Remove(t *testing.T) {
	params := newTestStandardParameters(t)

	require.NoError(t, params.Remove("ssid"))
	assert.NotContains(t, params.Names(), "ssid")

	// Удаление отсутствующего имени не является ошибкой.
	require.NoError(t, params.Remove("ghost"))
}

func TestStandardParameters_Update(t *testing.T) {
	t.Run("Имя заменяется с сохранением позиции", func(t *testing.T) {
		params := newTestStandardParameters(t)

		require.NoError(t, params.Update("client_mac", "station_mac"))
		names := params.Names()
		assert.Equal(t, "station_mac", names[1])
		assert.NotContains(t, names, "client_mac")
	})

	t.Run("Новое имя уже есть в словаре", func(t *testing.T) {
		params := newTestStandardParameters(t)

		require.NoError(t, params.Update("client_mac", "ssid"))
		names := params.Names()
		assert.NotContains(t, names, "client_mac")
		assert.Equal(t, 1, countOf(names, "ssid"))
	})

	t.Run("Отсутствующее старое имя игнорируется", func(t *testing.T) {
		params := newTestStandardParameters(t)
		before := params.Names()

		require.NoError(t, params.Update("ghost", "anything"))
		assert.Equal(t, before, params.Names())
	})
}

func TestStandardParameters_ResetToDefault(t *testing.T) {
	params := newTestStandardParameters(t)

	require.NoError(t, params.Add("vlan_id"))
	require.NoError(t, params.Remove("ssid"))
	require.NoError(t, params.ResetToDefault())

	names := params.Names()
	assert.Contains(t, names, "ssid")
	assert.NotContains(t, names, "vlan_id")
}

func TestStandardParameters_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "std_params.json")

	params, err := wizard.NewStandardParameters(path)
	require.NoError(t, err)
	require.NoError(t, params.Add("vlan_id"))
	require.NoError(t, params.Remove("nas_id"))

	// Новый экземпляр читает то же состояние с диска.
	reloaded, err := wizard.NewStandardParameters(path)
	require.NoError(t, err)
	assert.Equal(t, params.Names(), reloaded.Names())
	assert.Contains(t, reloaded.Names(), "vlan_id")
	assert.NotContains(t, reloaded.Names(), "nas_id")
}

func countOf(names []string, target string) int {
	count := 0
	for _, name := range names {
		if name == target {
			count++
		}
	}
	return count
}
