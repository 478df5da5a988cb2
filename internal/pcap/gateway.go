// Package pcap отдает дампы трафика внешнему сервису декодирования RADIUS
// и переносит результат в снапшот конфигурации вендора.
package pcap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/trekkete/spektr/models"
)

// Кастомные ошибки шлюза.
var (
	ErrInvalidFilter = errors.New("некорректный фильтр IP-адреса")
	ErrDecodeFailed  = errors.New("не удалось декодировать дамп трафика")
	ErrDecodeTimeout = errors.New("превышено время ожидания сервиса декодирования")
)

// Разделитель между пакетами в текстовом представлении.
const packetDelimiter = "----------------------------------------"

// Decoder описывает контракт внешнего сервиса декодирования дампов.
// Сервис принимает сырые байты дампа и необязательные фильтры, возвращает
// типизированные RADIUS-пакеты, сгруппированные по типу сообщения.
type Decoder interface {
	Parse(ctx context.Context, capture []byte, sourceIPFilter, textFilter string) (*models.PcapParseResponse, error)
}

// Gateway формирует запросы к декодеру, валидирует фильтры и переносит
// результат декодирования в снапшот. Сам дамп шлюз не разбирает.
type Gateway struct {
	decoder Decoder
}

// NewGateway создает новый шлюз извлечения пакетов.
func NewGateway(decoder Decoder) *Gateway {
	return &Gateway{decoder: decoder}
}

// Extract проверяет фильтры и запрашивает декодирование дампа.
// Некорректный IP-фильтр отклоняется до обращения к декодеру. Любой
// неуспешный ответ декодера превращается в ErrDecodeFailed (или
// ErrDecodeTimeout при истечении времени ожидания); частично примененных
// результатов не бывает.
func (g *Gateway) Extract(
	ctx context.Context,
	capture []byte,
	sourceIPFilter, textFilter string,
) (*models.PcapParseResponse, error) {
	if err := validateIPFilter(sourceIPFilter); err != nil {
		return nil, err
	}

	resp, err := g.decoder.Parse(ctx, capture, sourceIPFilter, textFilter)
	if err != nil {
		if isTimeout(err) {
			log.Printf("[PcapGateway] Таймаут декодирования дампа: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrDecodeTimeout, err)
		}
		log.Printf("[PcapGateway] Ошибка декодирования дампа: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	log.Printf("[PcapGateway] Дамп декодирован: пакетов всего %d, RADIUS %d",
		resp.TotalPacketsProcessed, resp.RadiusPacketsFound)
	return resp, nil
}

// ApplyToSnapshot переносит результат декодирования в RADIUS-секцию снапшота.
// Каждый непустой текстовый блок целиком заменяет соответствующее поле;
// если пакетов данного типа нет, прежний текст поля сохраняется. Заметка
// о количестве пакетов дописывается к существующим заметкам, не заменяя их.
func ApplyToSnapshot(snapshot *models.IntegrationSnapshot, resp *models.PcapParseResponse) {
	if snapshot.Radius == nil {
		snapshot.Radius = &models.RadiusConfig{}
	}
	radius := snapshot.Radius

	if block := RenderPackets(resp.AccessRequests); block != "" {
		radius.AccessRequest = block
	}
	if block := RenderPackets(resp.AccountingStarts); block != "" {
		radius.AccountingStart = block
	}
	if block := RenderPackets(resp.AccountingUpdates); block != "" {
		radius.AccountingUpdate = block
	}
	if block := RenderPackets(resp.AccountingStops); block != "" {
		radius.AccountingStop = block
	}

	note := fmt.Sprintf("Обработано пакетов: %d, из них RADIUS: %d",
		resp.TotalPacketsProcessed, resp.RadiusPacketsFound)
	if radius.Notes != "" {
		radius.Notes += "\n" + note
	} else {
		radius.Notes = note
	}
}

// RenderPackets склеивает пакеты одного типа в единый текстовый блок:
// на каждый пакет приходится строка с меткой времени и адресами, затем сырое
// текстовое представление; пакеты разделены фиксированной строкой-разделителем.
func RenderPackets(records []models.RadiusPacketData) string {
	if len(records) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(records))
	for _, record := range records {
		ts := time.UnixMilli(record.Timestamp).UTC().Format(time.RFC3339)
		header := fmt.Sprintf("[%s] %s -> %s", ts, record.SourceIP, record.DestinationIP)
		blocks = append(blocks, header+"\n"+strings.TrimRight(record.RawData, "\n"))
	}
	return strings.Join(blocks, "\n"+packetDelimiter+"\n")
}

// validateIPFilter требует от непустого фильтра синтаксически корректного
// IPv4-адреса в виде четырех октетов через точку.
func validateIPFilter(filter string) error {
	if filter == "" {
		return nil
	}
	ip := net.ParseIP(filter)
	if ip == nil || ip.To4() == nil || strings.Count(filter, ".") != 3 {
		return fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}
	return nil
}

// isTimeout распознает таймаут контекста или сетевой таймаут.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
