package models

// Ledger operation names used in published events.
const (
	OperationMint       = "mint"
	OperationBurn       = "burn"
	OperationDistribute = "distribute"
)

// LedgerEvent represents a completed ledger operation published to Kafka.
type LedgerEvent struct {
	EventID   string `json:"event_id"`             // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`            // Timestamp is the Unix timestamp (in seconds) when the operation completed.
	Operation string `json:"operation"`            // Operation is "mint", "burn" or "distribute".
	Token     string `json:"token"`                // Token is the symbol of the token involved.
	FromEmail string `json:"from_email,omitempty"` // FromEmail is the debited account, empty for mint.
	ToEmail   string `json:"to_email,omitempty"`   // ToEmail is the credited account, empty for burn.
	Amount    int64  `json:"amount"`               // Amount moved by the operation.
	Balance   int64  `json:"balance"`              // Balance of the primary wallet after the operation.
}
