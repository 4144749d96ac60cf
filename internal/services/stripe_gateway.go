package services

import (
	"encoding/json"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/refund"
	"github.com/stripe/stripe-go/v76/webhook"
)

// WebhookEvent is the slice of a processor callback the orchestrator acts on.
type WebhookEvent struct {
	Type     string
	IntentID string
}

// PaymentGateway abstracts the hosted payment processor.
type PaymentGateway interface {
	CreateIntent(amountMinor int64, currency string, metadata map[string]string) (intentID, clientSecret string, err error)
	IntentStatus(intentID string) (string, error)
	CreateRefund(intentID string) (refundID string, err error)
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

const (
	IntentStatusSucceeded = string(stripe.PaymentIntentStatusSucceeded)

	WebhookIntentSucceeded = "payment_intent.succeeded"
	WebhookIntentFailed    = "payment_intent.payment_failed"
)

type stripeGateway struct {
	webhookSecret string
}

// NewStripeGateway configures the global stripe client with the secret key.
func NewStripeGateway(secretKey, webhookSecret string) PaymentGateway {
	stripe.Key = secretKey
	return &stripeGateway{webhookSecret: webhookSecret}
}

func (g *stripeGateway) CreateIntent(amountMinor int64, currency string, metadata map[string]string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", "", err
	}
	return intent.ID, intent.ClientSecret, nil
}

func (g *stripeGateway) IntentStatus(intentID string) (string, error) {
	intent, err := paymentintent.Get(intentID, nil)
	if err != nil {
		return "", err
	}
	return string(intent.Status), nil
}

func (g *stripeGateway) CreateRefund(intentID string) (string, error) {
	r, err := refund.New(&stripe.RefundParams{
		PaymentIntent: stripe.String(intentID),
	})
	if err != nil {
		return "", err
	}
	return r.ID, nil
}

// VerifyWebhook checks the signature against the configured secret before
// trusting any payload contents.
func (g *stripeGateway) VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, err
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return nil, err
	}

	return &WebhookEvent{
		Type:     string(event.Type),
		IntentID: intent.ID,
	}, nil
}
