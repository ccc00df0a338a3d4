package trade

import (
	"time"

	"github.com/KirkDiggler/theta-arc/internal/entities"
)

// DefaultTTL is how long an offer waits for the recipient
const DefaultTTL = 60 * time.Second

// Listing names one instance on either side of an offer
type Listing struct {
	InstanceID int
	Name       string
}

// OfferInput defines the request for creating a trade offer. Offer and
// Want are raw item strings, see ParseItems.
type OfferInput struct {
	GuildID   string
	ChannelID string
	UserID    string
	Target    string
	Offer     string
	Want      string
}

// OfferOutput defines the response for creating a trade offer
type OfferOutput struct {
	Trade   entities.Trade
	Offered []Listing
	Wanted  []Listing
}

// AcceptInput defines the request for accepting an offer
type AcceptInput struct {
	TradeID string
	UserID  string
}

// AcceptOutput defines the response for accepting an offer
type AcceptOutput struct {
	Trade entities.Trade
}

// DeclineInput defines the request for declining an offer
type DeclineInput struct {
	TradeID string
	UserID  string
}

// DeclineOutput defines the response for declining an offer
type DeclineOutput struct {
	Trade entities.Trade
}

// SweepInput defines the request for expiring stale offers
type SweepInput struct{}

// SweepOutput lists the offers that expired, oldest first
type SweepOutput struct {
	Expired []entities.Trade
}
