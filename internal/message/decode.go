package message

import (
	"encoding/json"
	"fmt"
)

// envelope extracts the type tag without committing to a variant.
type envelope struct {
	Type Type `json:"type"`
}

// Decode parses a raw inbound frame into its typed variant. A recognized tag
// with a malformed body is an error; an unrecognized tag is not — it decodes
// into Unknown so the caller can log and drop it.
func Decode(data []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse message envelope: %w", err)
	}

	switch env.Type {
	case TypeConnectionEstablished:
		return decodeAs[ConnectionEstablished](data)
	case TypeMarketUpdate:
		return decodeAs[MarketUpdate](data)
	case TypePriceAlert:
		return decodeAs[PriceAlert](data)
	case TypeNewSignal:
		return decodeAs[NewSignal](data)
	case TypeSignalUpdate:
		return decodeAs[SignalUpdate](data)
	case TypeNewNotification:
		return decodeAs[NewNotification](data)
	case TypePortfolioUpdate:
		return decodeAs[PortfolioUpdate](data)
	default:
		raw := make([]byte, len(data))
		copy(raw, data)
		return Unknown{TypeTag: string(env.Type), Raw: raw}, nil
	}
}

func decodeAs[T Message](data []byte) (Message, error) {
	var msg T
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("parse %s message: %w", msg.MessageType(), err)
	}
	return msg, nil
}
