package handlers

import (
	"errors"
	"net/http"

	"filmapp/internal/container"
	"filmapp/internal/models"
	"filmapp/internal/services"

	"github.com/go-chi/chi/v5"
)

type levelRequest struct {
	Level models.VIPLevel `json:"level"`
}

type methodRequest struct {
	Method models.PaymentMethod `json:"method"`
}

type cardRequest struct {
	Number string `json:"card_number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

type paypalRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func writePaymentError(w http.ResponseWriter, c *container.Container, err error) {
	var fe *services.FieldError
	switch {
	case errors.As(err, &fe):
		writeJSON(w, c.Logger, http.StatusUnprocessableEntity, fe)
	case errors.Is(err, services.ErrFlowNotFound):
		writeError(w, c.Logger, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUnknownLevel), errors.Is(err, services.ErrUnknownMethod):
		writeError(w, c.Logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrProcessing),
		errors.Is(err, services.ErrFlowComplete),
		errors.Is(err, services.ErrFlowCancelled),
		errors.Is(err, services.ErrFormInactive):
		writeError(w, c.Logger, http.StatusConflict, err.Error())
	default:
		c.Logger.WithError(err).Error("Payment request failed")
		writeError(w, c.Logger, http.StatusInternalServerError, "payment request failed")
	}
}

// withFlow resolves {id} to an open flow before calling fn.
func withFlow(c *container.Container, fn func(w http.ResponseWriter, r *http.Request, flow *services.PaymentFlow)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flow, err := c.Payments.Get(chi.URLParam(r, "id"))
		if err != nil {
			writePaymentError(w, c, err)
			return
		}
		fn(w, r, flow)
	}
}

func StartPayment(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flow := c.Payments.Start()
		writeJSON(w, c.Logger, http.StatusCreated, map[string]any{
			"status": flow.Status(),
			"tiers":  models.Tiers(),
		})
	}
}

func PaymentStatus(c *container.Container) http.HandlerFunc {
	return withFlow(c, func(w http.ResponseWriter, r *http.Request, flow *services.PaymentFlow) {
		writeJSON(w, c.Logger, http.StatusOK, flow.Status())
	})
}

func CancelPayment(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.Payments.End(chi.URLParam(r, "id")); err != nil {
			writePaymentError(w, c, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func SelectLevel(c *container.Container) http.HandlerFunc {
	return withFlow(c, func(w http.ResponseWriter, r *http.Request, flow *services.PaymentFlow) {
		var req levelRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, c.Logger, http.StatusBadRequest, "invalid level payload")
			return
		}
		if err := flow.SelectLevel(req.Level); err != nil {
			writePaymentError(w, c, err)
			return
		}
		writeJSON(w, c.Logger, http.StatusOK, flow.Status())
	})
}

func SelectMethod(c *container.Container) http.HandlerFunc {
	return withFlow(c, func(w http.ResponseWriter, r *http.Request, flow *services.PaymentFlow) {
		var req methodRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, c.Logger, http.StatusBadRequest, "invalid method payload")
			return
		}
		if err := flow.SelectMethod(req.Method); err != nil {
			writePaymentError(w, c, err)
			return
		}
		writeJSON(w, c.Logger, http.StatusOK, flow.Status())
	})
}

func EnterCard(c *container.Container) http.HandlerFunc {
	return withFlow(c, func(w http.ResponseWriter, r *http.Request, flow *services.PaymentFlow) {
		var req cardRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, c.Logger, http.StatusBadRequest, "invalid card payload")
			return
		}
		if err := flow.EnterCard(req.Number, req.Expiry, req.CVV); err != nil {
			writePaymentError(w, c, err)
			return
		}
		writeJSON(w, c.Logger, http.StatusOK, flow.Status())
	})
}

func EnterPayPal(c *container.Container) http.HandlerFunc {
	return withFlow(c, func(w http.ResponseWriter, r *http.Request, flow *services.PaymentFlow) {
		var req paypalRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, c.Logger, http.StatusBadRequest, "invalid paypal payload")
			return
		}
		if err := flow.EnterPayPal(req.Email, req.Password); err != nil {
			writePaymentError(w, c, err)
			return
		}
		writeJSON(w, c.Logger, http.StatusOK, flow.Status())
	})
}

// ConfirmPayment answers 202 while the mocked processing delay runs; clients poll
// GET /payments/{id} for the summary.
func ConfirmPayment(c *container.Container) http.HandlerFunc {
	return withFlow(c, func(w http.ResponseWriter, r *http.Request, flow *services.PaymentFlow) {
		if err := flow.Confirm(); err != nil {
			writePaymentError(w, c, err)
			return
		}
		writeJSON(w, c.Logger, http.StatusAccepted, flow.Status())
	})
}
