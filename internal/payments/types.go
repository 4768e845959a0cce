package payments

import "github.com/zeebo/errs"

// Gateway identifies a supported payment provider.
type Gateway int

const (
	GatewayVisa Gateway = iota
	GatewayMastercard
)

func (g Gateway) String() string {
	switch g {
	case GatewayVisa:
		return "VISA"
	case GatewayMastercard:
		return "MASTERCARD"
	default:
		return "UNKNOWN"
	}
}

// ParseGateway maps a provider name, as typed on the command line, to a
// Gateway.
func ParseGateway(s string) (Gateway, error) {
	switch s {
	case "visa", "VISA":
		return GatewayVisa, nil
	case "mastercard", "MASTERCARD", "mc", "MC":
		return GatewayMastercard, nil
	default:
		return 0, ErrUnsupportedGateway
	}
}

// Status tracks a payment through its lifecycle. A payment starts Pending,
// moves to Processing when its gateway picks it up, and settles as either
// Success or Failed.
type Status int

const (
	StatusPending Status = iota
	StatusProcessing
	StatusFailed
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusProcessing:
		return "Processing"
	case StatusFailed:
		return "Failed"
	case StatusSuccess:
		return "Success"
	default:
		return "Unknown"
	}
}

// Payment is the externally visible record of a registered payment. The
// snapshot returned when a payment settles doubles as its receipt.
type Payment struct {
	Key           string
	Gateway       Gateway
	Amount        float64
	TransactionID string
	Status        Status
}

var (
	// Error is the class wrapping every error this package returns.
	Error = errs.Class("payments")

	ErrInvalidAmount      = Error.New("amount must be greater than zero")
	ErrUnsupportedGateway = Error.New("unsupported payment gateway")
	ErrUnknownPayment     = Error.New("no payment registered under that key")
)
