package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"filmapp/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultPaymentDelay = 1500 * time.Millisecond

var (
	ErrProcessing    = errors.New("payment is already processing")
	ErrFlowComplete  = errors.New("payment already confirmed")
	ErrFlowCancelled = errors.New("payment flow cancelled")
	ErrUnknownLevel  = errors.New("unknown VIP level")
	ErrUnknownMethod = errors.New("unknown payment method")
	ErrFormInactive  = errors.New("details form is not shown for the selected method")
)

var paymentMessages = map[string]string{
	"card_number.required":      "Enter card number",
	"card_number.len":           "Enter 16-digit card number",
	"card_number.number":        "Enter 16-digit card number",
	"expiry.required":           "Enter expiration date",
	"expiry.mmyy":               "Use MM/YY format",
	"cvv.required":              "Enter CVV",
	"cvv.len":                   "Enter 3-digit CVV",
	"cvv.number":                "Enter 3-digit CVV",
	"paypal_email.required":     "Enter PayPal email",
	"paypal_email.paypal_email": "Enter valid email address",
	"paypal_password.required":  "Enter PayPal password",
	"paypal_password.min":       "Password must be at least 6 characters",
}

type cardDetails struct {
	Number string `json:"card_number" validate:"required,len=16,number"`
	Expiry string `json:"expiry" validate:"required,mmyy"`
	CVV    string `json:"cvv" validate:"required,len=3,number"`
}

type paypalDetails struct {
	Email    string `json:"paypal_email" validate:"required,paypal_email"`
	Password string `json:"paypal_password" validate:"required,min=6"`
}

type PaymentConfig struct {
	Delay       time.Duration
	Logger      *logrus.Logger
	OnConfirmed func(models.PaymentSummary)
}

// PaymentStatus is a point-in-time view of a flow.
type PaymentStatus struct {
	ID         string                 `json:"id"`
	State      models.PaymentState    `json:"state"`
	Level      models.VIPLevel        `json:"level"`
	Method     models.PaymentMethod   `json:"method"`
	Processing bool                   `json:"processing"`
	Cancelled  bool                   `json:"cancelled"`
	Summary    *models.PaymentSummary `json:"summary,omitempty"`
}

// PaymentFlow walks one VIP subscription from tier selection to a mocked
// confirmation. Confirmation completes on a timer after Confirm succeeds; Cancel
// stops the timer and discards its result.
type PaymentFlow struct {
	mu sync.Mutex

	id     string
	level  models.VIPLevel
	method models.PaymentMethod
	card   cardDetails
	paypal paypalDetails

	processing bool
	confirmed  bool
	cancelled  bool
	summary    *models.PaymentSummary
	startedAt  time.Time
	finishedAt time.Time

	timer *time.Timer
	gen   int
	done  chan struct{}

	delay       time.Duration
	onConfirmed func(models.PaymentSummary)
	logger      *logrus.Logger
}

func NewPaymentFlow(cfg PaymentConfig) *PaymentFlow {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultPaymentDelay
	}

	return &PaymentFlow{
		id:          uuid.NewString(),
		startedAt:   time.Now(),
		done:        make(chan struct{}),
		delay:       cfg.Delay,
		onConfirmed: cfg.OnConfirmed,
		logger:      cfg.Logger,
	}
}

func (f *PaymentFlow) ID() string {
	return f.id
}

// Done is closed once the flow is confirmed or cancelled.
func (f *PaymentFlow) Done() <-chan struct{} {
	return f.done
}

func (f *PaymentFlow) SelectLevel(level models.VIPLevel) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.mutable(); err != nil {
		return err
	}
	if _, ok := models.TierFor(level); !ok {
		return ErrUnknownLevel
	}

	f.level = level
	f.logger.WithFields(logrus.Fields{
		"flow_id": f.id,
		"level":   level,
	}).Debug("VIP level selected")
	return nil
}

// SelectMethod picks the payment method. Moving between the card form and the PayPal
// form wipes whatever was typed into the form being hidden.
func (f *PaymentFlow) SelectMethod(method models.PaymentMethod) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.mutable(); err != nil {
		return err
	}
	if !method.Valid() {
		return ErrUnknownMethod
	}

	switch {
	case f.method.IsCard() && method == models.MethodPayPal:
		f.card = cardDetails{}
	case f.method == models.MethodPayPal && method.IsCard():
		f.paypal = paypalDetails{}
	}

	f.method = method
	f.logger.WithFields(logrus.Fields{
		"flow_id": f.id,
		"method":  method,
	}).Debug("Payment method selected")
	return nil
}

func (f *PaymentFlow) EnterCard(number, expiry, cvv string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.mutable(); err != nil {
		return err
	}
	if !f.method.IsCard() {
		return ErrFormInactive
	}

	f.card = cardDetails{
		Number: strings.TrimSpace(number),
		Expiry: strings.TrimSpace(expiry),
		CVV:    strings.TrimSpace(cvv),
	}
	return nil
}

func (f *PaymentFlow) EnterPayPal(email, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.mutable(); err != nil {
		return err
	}
	if f.method != models.MethodPayPal {
		return ErrFormInactive
	}

	f.paypal = paypalDetails{
		Email:    strings.TrimSpace(email),
		Password: strings.TrimSpace(password),
	}
	return nil
}

// Confirm validates level, method and the active details form in that order. The
// first failure comes back as a *FieldError. On success the flow starts processing
// and completes after the configured delay.
func (f *PaymentFlow) Confirm() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.mutable(); err != nil {
		return err
	}
	if err := f.check(); err != nil {
		return err
	}

	f.processing = true
	gen := f.gen
	f.timer = time.AfterFunc(f.delay, func() { f.complete(gen) })

	f.logger.WithFields(logrus.Fields{
		"flow_id": f.id,
		"level":   f.level,
		"method":  f.method,
	}).Info("Processing payment")
	return nil
}

// Cancel tears the flow down. A confirmed flow is left as is.
func (f *PaymentFlow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.confirmed || f.cancelled {
		return
	}

	f.cancelled = true
	f.finishedAt = time.Now()
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
	}
	close(f.done)

	f.logger.WithField("flow_id", f.id).Info("Payment flow cancelled")
}

// Finished reports when the flow was confirmed or cancelled.
func (f *PaymentFlow) Finished() (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.finishedAt, !f.finishedAt.IsZero()
}

func (f *PaymentFlow) StartedAt() time.Time {
	return f.startedAt
}

func (f *PaymentFlow) Processing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.processing
}

func (f *PaymentFlow) State() models.PaymentState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state()
}

// Summary returns the confirmation payload once the flow is confirmed.
func (f *PaymentFlow) Summary() (models.PaymentSummary, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.summary == nil {
		return models.PaymentSummary{}, false
	}
	return *f.summary, true
}

func (f *PaymentFlow) Status() PaymentStatus {
	f.mu.Lock()
	defer f.mu.Unlock()

	st := PaymentStatus{
		ID:         f.id,
		State:      f.state(),
		Level:      f.level,
		Method:     f.method,
		Processing: f.processing,
		Cancelled:  f.cancelled,
	}
	if f.summary != nil {
		s := *f.summary
		st.Summary = &s
	}
	return st
}

func (f *PaymentFlow) state() models.PaymentState {
	switch {
	case f.confirmed:
		return models.StateConfirmed
	case f.processing:
		return models.StateDetailsValid
	case f.level != models.VIPNone && f.method != models.MethodNone:
		return models.StateMethodSelected
	case f.level != models.VIPNone:
		return models.StateLevelSelected
	default:
		return models.StateNoSelection
	}
}

func (f *PaymentFlow) mutable() error {
	switch {
	case f.confirmed:
		return ErrFlowComplete
	case f.cancelled:
		return ErrFlowCancelled
	case f.processing:
		return ErrProcessing
	}
	return nil
}

func (f *PaymentFlow) check() error {
	if f.level == models.VIPNone {
		return &FieldError{Field: "level", Message: "Please select a VIP level"}
	}
	if f.method == models.MethodNone {
		return &FieldError{Field: "method", Message: "Please select a payment method"}
	}

	var err error
	if f.method.IsCard() {
		err = validate.Struct(f.card)
	} else {
		err = validate.Struct(f.paypal)
	}
	if err != nil {
		fe := translate(err, paymentMessages)[0]
		return &fe
	}
	return nil
}

func (f *PaymentFlow) complete(gen int) {
	f.mu.Lock()
	if gen != f.gen || f.cancelled || f.confirmed {
		f.mu.Unlock()
		return
	}

	tier, _ := models.TierFor(f.level)
	summary := models.PaymentSummary{
		Level:       f.level,
		Price:       tier.Price,
		Description: tier.Description,
		Method:      f.method,
		SavePayment: false,
		Reference:   "PAY-" + uuid.NewString(),
	}
	if f.method == models.MethodPayPal {
		summary.PayPalEmail = f.paypal.Email
	}

	f.confirmed = true
	f.finishedAt = time.Now()
	f.summary = &summary
	close(f.done)
	handler := f.onConfirmed
	f.mu.Unlock()

	f.logger.WithFields(logrus.Fields{
		"flow_id":   f.id,
		"reference": summary.Reference,
	}).Info("Payment confirmed")

	if handler != nil {
		handler(summary)
	}
}
