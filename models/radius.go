package models

// Типы RADIUS-пакетов, которые возвращает внешний сервис декодирования.
const (
	PacketTypeAccessRequest          = "Access-Request"
	PacketTypeAccountingStart        = "Accounting-Start"
	PacketTypeAccountingUpdate       = "Accounting-Interim-Update"
	PacketTypeAccountingStop         = "Accounting-Stop"
	PacketTypeAccountingRequestOther = "Accounting-Request"
)

// RadiusPacketData представляет один типизированный RADIUS-пакет из дампа трафика.
// Производится внешним сервисом декодирования, здесь только потребляется.
type RadiusPacketData struct {
	PacketType    string            `json:"packetType"`
	SourceIP      string            `json:"sourceIp"`
	DestinationIP string            `json:"destinationIp"`
	Timestamp     int64             `json:"timestamp"` // Unix-время в миллисекундах
	Attributes    map[string]string `json:"attributes"`
	RawData       string            `json:"rawData"`
}

// PcapParseResponse содержит результат декодирования дампа: пакеты, сгруппированные
// по типу сообщения, и счетчики обработанных пакетов.
type PcapParseResponse struct {
	AccessRequests        []RadiusPacketData `json:"accessRequests"`
	AccountingStarts      []RadiusPacketData `json:"accountingStarts"`
	AccountingUpdates     []RadiusPacketData `json:"accountingUpdates"`
	AccountingStops       []RadiusPacketData `json:"accountingStops"`
	TotalPacketsProcessed int                `json:"totalPacketsProcessed"`
	RadiusPacketsFound    int                `json:"radiusPacketsFound"`
	Message               string             `json:"message,omitempty"`
}
