package pcap_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trekkete/spektr/internal/pcap"
	"github.com/trekkete/spektr/models"
)

// --- Mock Decoder --- //

type MockDecoder struct {
	mock.Mock
}

func (m *MockDecoder) Parse(
	ctx context.Context,
	capture []byte,
	sourceIPFilter, textFilter string,
) (*models.PcapParseResponse, error) {
	args := m.Called(ctx, capture, sourceIPFilter, textFilter)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.(*models.PcapParseResponse), args.Error(1)
}

// --- Tests --- //

func TestGateway_Extract_ВалидацияФильтра(t *testing.T) {
	tests := []struct {
		name        string
		filter      string
		expectError bool
	}{
		{name: "Пустой фильтр допустим", filter: "", expectError: false},
		{name: "Корректный IPv4", filter: "192.168.1.10", expectError: false},
		{name: "Не IP-адрес", filter: "not-an-ip", expectError: true},
		{name: "IPv6 не подходит", filter: "2001:db8::1", expectError: true},
		{name: "Неполный адрес", filter: "10.0.0", expectError: true},
		{name: "Лишний октет", filter: "10.0.0.1.2", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDecoder := new(MockDecoder)
			gw := pcap.NewGateway(mockDecoder)

			if !tt.expectError {
				mockDecoder.On("Parse", mock.Anything, mock.Anything, tt.filter, "").
					Return(&models.PcapParseResponse{}, nil).Once()
			}

			_, err := gw.Extract(context.Background(), []byte{0x01}, tt.filter, "")

			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, pcap.ErrInvalidFilter)
				// Декодер не должен вызываться с невалидным фильтром.
				mockDecoder.AssertNotCalled(t, "Parse")
			} else {
				require.NoError(t, err)
				mockDecoder.AssertExpectations(t)
			}
		})
	}
}

func TestGateway_Extract_ОшибкиДекодера(t *testing.T) {
	tests := []struct {
		name        string
		decoderErr  error
		expectedErr error
	}{
		{
			name:        "Отказ декодера",
			decoderErr:  errors.New("corrupted capture"),
			expectedErr: pcap.ErrDecodeFailed,
		},
		{
			name:        "Таймаут декодера",
			decoderErr:  context.DeadlineExceeded,
			expectedErr: pcap.ErrDecodeTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDecoder := new(MockDecoder)
			mockDecoder.On("Parse", mock.Anything, mock.Anything, "", "").
				Return(nil, tt.decoderErr).Once()

			gw := pcap.NewGateway(mockDecoder)
			resp, err := gw.Extract(context.Background(), []byte{0x01}, "", "")

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.expectedErr)
			mockDecoder.AssertExpectations(t)
		})
	}
}

func TestRenderPackets(t *testing.T) {
	records := []models.RadiusPacketData{
		{
			SourceIP:      "10.0.0.1",
			DestinationIP: "10.0.0.2",
			Timestamp:     1728568536000, // 2024-10-10T13:55:36Z
			RawData:       "Code: 1, Identifier: 5, Length: 44\n  User-Name: guest\n",
		},
		{
			SourceIP:      "10.0.0.3",
			DestinationIP: "10.0.0.2",
			Timestamp:     1728568537000,
			RawData:       "Code: 1, Identifier: 6, Length: 44\n",
		},
	}

	block := pcap.RenderPackets(records)

	lines := strings.Split(block, "\n")
	assert.Equal(t, "[2024-10-10T13:55:36Z] 10.0.0.1 -> 10.0.0.2", lines[0])
	assert.Contains(t, block, "User-Name: guest")
	// Пакеты разделены строкой-разделителем.
	assert.Equal(t, 1, strings.Count(block, "----------------------------------------"))
}

func TestRenderPackets_ПустойСписок(t *testing.T) {
	assert.Empty(t, pcap.RenderPackets(nil))
}

func TestApplyToSnapshot(t *testing.T) {
	snapshot := models.IntegrationSnapshot{
		Radius: &models.RadiusConfig{
			AccessRequest:  "старое описание access-request",
			AccountingStop: "старое описание accounting-stop",
			Notes:          "заметки оператора",
		},
	}
	resp := &models.PcapParseResponse{
		AccessRequests: []models.RadiusPacketData{
			{SourceIP: "10.0.0.1", DestinationIP: "10.0.0.2", Timestamp: 1728568536000, RawData: "Code: 1\n"},
		},
		// AccountingStops пуст: прежний текст поля должен сохраниться.
		TotalPacketsProcessed: 120,
		RadiusPacketsFound:    7,
	}

	pcap.ApplyToSnapshot(&snapshot, resp)

	// Непустой блок заменяет поле целиком.
	assert.NotEqual(t, "старое описание access-request", snapshot.Radius.AccessRequest)
	assert.Contains(t, snapshot.Radius.AccessRequest, "10.0.0.1 -> 10.0.0.2")
	// Пустой блок не трогает прежнее значение.
	assert.Equal(t, "старое описание accounting-stop", snapshot.Radius.AccountingStop)
	// Заметка о происхождении дописывается, не заменяя существующий текст.
	assert.True(t, strings.HasPrefix(snapshot.Radius.Notes, "заметки оператора"))
	assert.Contains(t, snapshot.Radius.Notes, "Обработано пакетов: 120, из них RADIUS: 7")
}

func TestApplyToSnapshot_БезСекцииRadius(t *testing.T) {
	snapshot := models.IntegrationSnapshot{}
	resp := &models.PcapParseResponse{TotalPacketsProcessed: 3, RadiusPacketsFound: 0}

	pcap.ApplyToSnapshot(&snapshot, resp)

	require.NotNil(t, snapshot.Radius)
	assert.Contains(t, snapshot.Radius.Notes, "Обработано пакетов: 3")
}

func TestHTTPDecoder_Parse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "10.0.0.1", r.FormValue("sourceIpFilter"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"accessRequests": [{"packetType": "Access-Request", "sourceIp": "10.0.0.1", "destinationIp": "10.0.0.2", "timestamp": 1728568536000, "attributes": {}, "rawData": "Code: 1"}],
			"accountingStarts": [], "accountingUpdates": [], "accountingStops": [],
			"totalPacketsProcessed": 10, "radiusPacketsFound": 1
		}`))
	}))
	defer server.Close()

	decoder := pcap.NewHTTPDecoder(server.URL, 0)
	resp, err := decoder.Parse(context.Background(), []byte{0xd4, 0xc3, 0xb2, 0xa1}, "10.0.0.1", "")

	require.NoError(t, err)
	require.Len(t, resp.AccessRequests, 1)
	assert.Equal(t, models.PacketTypeAccessRequest, resp.AccessRequests[0].PacketType)
	assert.Equal(t, 10, resp.TotalPacketsProcessed)
}

func TestHTTPDecoder_Parse_ОшибкаСтатуса(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad capture", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	decoder := pcap.NewHTTPDecoder(server.URL, 0)
	resp, err := decoder.Parse(context.Background(), []byte{0x01}, "", "")

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}
