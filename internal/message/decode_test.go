package message

import (
	"testing"
)

func TestDecodeMarketUpdate(t *testing.T) {
	data := []byte(`{"type":"market_update","symbol":"BTC","price":50000,"change":-1.5,"volume":1000000,"timestamp":"12:30:45"}`)

	msg, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	update, ok := msg.(MarketUpdate)
	if !ok {
		t.Fatalf("decoded type = %T, want MarketUpdate", msg)
	}
	if update.Symbol != "BTC" {
		t.Errorf("Symbol = %q, want BTC", update.Symbol)
	}
	if update.Price != 50000 {
		t.Errorf("Price = %v, want 50000", update.Price)
	}
	if update.Change != -1.5 {
		t.Errorf("Change = %v, want -1.5", update.Change)
	}
	if update.Volume != 1000000 {
		t.Errorf("Volume = %v, want 1000000", update.Volume)
	}
	if update.Timestamp != "12:30:45" {
		t.Errorf("Timestamp = %q, want 12:30:45", update.Timestamp)
	}
}

func TestDecodeNewSignal(t *testing.T) {
	data := []byte(`{"type":"new_signal","id":42,"symbol":"ETH","signal_type":"BUY","price":2500.5,"confidence":0.87}`)

	msg, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	signal, ok := msg.(NewSignal)
	if !ok {
		t.Fatalf("decoded type = %T, want NewSignal", msg)
	}
	if signal.ID != 42 {
		t.Errorf("ID = %d, want 42", signal.ID)
	}
	if signal.Symbol != "ETH" {
		t.Errorf("Symbol = %q, want ETH", signal.Symbol)
	}
	if signal.SignalType != "BUY" {
		t.Errorf("SignalType = %q, want BUY", signal.SignalType)
	}
}

func TestDecodeVariants(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Type
	}{
		{"connection_established", `{"type":"connection_established","message":"market data connected"}`, TypeConnectionEstablished},
		{"price_alert", `{"type":"price_alert","symbol":"BTC","message":"BTC crossed 50000","price":50000}`, TypePriceAlert},
		{"signal_update", `{"type":"signal_update","signal_id":42,"update_info":"target reached"}`, TypeSignalUpdate},
		{"new_notification", `{"type":"new_notification","title":"Order filled","message":"BTC order filled","priority":"high"}`, TypeNewNotification},
		{"portfolio_update", `{"type":"portfolio_update","total_value":10000,"daily_change":-250,"daily_change_percent":-2.5}`, TypePortfolioUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode([]byte(tt.data))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if msg.MessageType() != tt.want {
				t.Errorf("MessageType() = %q, want %q", msg.MessageType(), tt.want)
			}
		})
	}
}

func TestDecodeUnknownType(t *testing.T) {
	data := []byte(`{"type":"heartbeat","ts":123}`)

	msg, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	unknown, ok := msg.(Unknown)
	if !ok {
		t.Fatalf("decoded type = %T, want Unknown", msg)
	}
	if unknown.TypeTag != "heartbeat" {
		t.Errorf("TypeTag = %q, want heartbeat", unknown.TypeTag)
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	if _, err := Decode([]byte("not json at all")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestDecodeMalformedVariant(t *testing.T) {
	// Recognized tag with a body that contradicts the schema.
	data := []byte(`{"type":"market_update","price":"not-a-number"}`)

	if _, err := Decode(data); err == nil {
		t.Error("expected error for malformed variant body")
	}
}
