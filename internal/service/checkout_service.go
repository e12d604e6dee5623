package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/creation2music/checkout-backend/internal/catalog"
	"github.com/creation2music/checkout-backend/internal/models"
	"github.com/creation2music/checkout-backend/pkg/payment"
	"github.com/creation2music/checkout-backend/pkg/utils"
)

// ErrPaymentProvider is returned when the Stripe call fails. The underlying
// cause is logged server-side and never reaches the client.
var ErrPaymentProvider = errors.New("payment provider request failed")

// ValidationError is a client fault: the request never reaches Stripe and the
// message is safe to return as-is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// SessionCreator is the boundary to the payment processor.
type SessionCreator interface {
	CreateCheckoutSession(params payment.CheckoutParams) (*payment.CheckoutSession, error)
}

type CheckoutService struct {
	sessions    SessionCreator
	catalog     *catalog.Catalog
	validator   *utils.Validator
	frontendURL string
	logger      *zap.Logger
}

func NewCheckoutService(sessions SessionCreator, cat *catalog.Catalog, validator *utils.Validator, frontendURL string, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		sessions:    sessions,
		catalog:     cat,
		validator:   validator,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// CreateCheckoutSession validates the request against the catalog and
// exchanges it for a Stripe checkout session. The unit price always comes
// from the catalog, never from the client.
func (s *CheckoutService) CreateCheckoutSession(req *models.CheckoutSessionRequest) (*models.CheckoutSession, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &ValidationError{Reason: validationReason(err)}
	}

	product, ok := s.catalog.Lookup(req.ProductID)
	if !ok {
		return nil, &ValidationError{Reason: "Produit non trouvé"}
	}

	description := fmt.Sprintf("Style musical : %s\nMessage personnalisé : %s",
		req.Config.Style, req.Config.Message)

	sess, err := s.sessions.CreateCheckoutSession(payment.CheckoutParams{
		Name:        product.Name,
		Description: description,
		UnitAmount:  product.Price,
		Currency:    "eur",
		SuccessURL:  s.frontendURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   s.frontendURL + "/products",
		Metadata: map[string]string{
			"productId": req.ProductID,
			"style":     req.Config.Style,
			"message":   req.Config.Message,
		},
	})
	if err != nil {
		s.logger.Error("stripe checkout session creation failed",
			zap.String("product_id", req.ProductID),
			zap.Error(err),
		)
		return nil, ErrPaymentProvider
	}

	return &models.CheckoutSession{ID: sess.ID}, nil
}

func validationReason(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Tag() {
			case "max":
				return "Message trop long (2000 caractères maximum)"
			case "music_style":
				return "Style musical invalide"
			}
		}
	}
	return "Données manquantes"
}
