package message

// Type is the wire tag selecting a message variant.
type Type string

// Known message types.
const (
	TypeConnectionEstablished Type = "connection_established"
	TypeMarketUpdate          Type = "market_update"
	TypePriceAlert            Type = "price_alert"
	TypeNewSignal             Type = "new_signal"
	TypeSignalUpdate          Type = "signal_update"
	TypeNewNotification       Type = "new_notification"
	TypePortfolioUpdate       Type = "portfolio_update"
)

// Message is one decoded inbound push message. Implementations are the seven
// known variants plus Unknown.
type Message interface {
	MessageType() Type
}

// ConnectionEstablished confirms a channel is live server-side.
type ConnectionEstablished struct {
	Message string `json:"message"`
}

func (ConnectionEstablished) MessageType() Type { return TypeConnectionEstablished }

// MarketUpdate carries a price tick for one symbol.
type MarketUpdate struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	Volume    float64 `json:"volume"`
	Timestamp string  `json:"timestamp"`
}

func (MarketUpdate) MessageType() Type { return TypeMarketUpdate }

// PriceAlert fires when a watched symbol crosses a configured threshold.
type PriceAlert struct {
	Symbol  string  `json:"symbol"`
	Message string  `json:"message"`
	Price   float64 `json:"price"`
}

func (PriceAlert) MessageType() Type { return TypePriceAlert }

// NewSignal announces a freshly generated trading signal.
type NewSignal struct {
	ID         int64   `json:"id"`
	Symbol     string  `json:"symbol"`
	SignalType string  `json:"signal_type"` // e.g. "BUY", "SELL"
	Price      float64 `json:"price"`
	Confidence float64 `json:"confidence"`
}

func (NewSignal) MessageType() Type { return TypeNewSignal }

// SignalUpdate patches an existing signal's update info.
type SignalUpdate struct {
	SignalID   int64  `json:"signal_id"`
	UpdateInfo string `json:"update_info"`
}

func (SignalUpdate) MessageType() Type { return TypeSignalUpdate }

// NewNotification is a server-originated user notification.
type NewNotification struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"` // "high" maps to an error toast, anything else to info
	Category string `json:"category"`
}

func (NewNotification) MessageType() Type { return TypeNewNotification }

// PortfolioUpdate carries aggregate portfolio figures.
type PortfolioUpdate struct {
	TotalValue         float64 `json:"total_value"`
	DailyChange        float64 `json:"daily_change"`
	DailyChangePercent float64 `json:"daily_change_percent"`
}

func (PortfolioUpdate) MessageType() Type { return TypePortfolioUpdate }

// Unknown preserves a message whose type tag is not recognized.
type Unknown struct {
	TypeTag string
	Raw     []byte
}

func (Unknown) MessageType() Type { return Type("") }
