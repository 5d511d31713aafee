package payment

import (
	"context"
	"fmt"
	"strconv"

	"smartedybot/internal/config"
	"smartedybot/internal/domain"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

type sessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeProvider creates Stripe Checkout sessions for the fixed tiers
type StripeProvider struct {
	sessions   sessionCreator
	successURL string
	cancelURL  string
}

// NewStripeProvider creates a provider using the secret key from cfg
func NewStripeProvider(cfg config.StripeConfig) *StripeProvider {
	return &StripeProvider{
		sessions: &session.Client{
			B:   stripe.GetBackend(stripe.APIBackend),
			Key: cfg.SecretKey,
		},
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

// CreateSession opens a one-off card payment for tier
func (p *StripeProvider) CreateSession(ctx context.Context, userID int64, tier domain.Tier) (domain.CheckoutSession, error) {
	s, err := p.sessions.New(p.sessionParams(ctx, userID, tier))
	if err != nil {
		return domain.CheckoutSession{}, fmt.Errorf("stripe: %w", err)
	}

	return domain.CheckoutSession{
		UserID:    userID,
		Tier:      tier,
		SessionID: s.ID,
		URL:       s.URL,
	}, nil
}

func (p *StripeProvider) sessionParams(ctx context.Context, userID int64, tier domain.Tier) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(domain.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(tier.ProductLabel()),
					},
					UnitAmount: stripe.Int64(tier.UnitAmount()),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(p.successURL),
		CancelURL:         stripe.String(p.cancelURL),
		ClientReferenceID: stripe.String(strconv.FormatInt(userID, 10)),
	}
	params.Context = ctx
	params.AddMetadata("tier", tier.String())
	return params
}
