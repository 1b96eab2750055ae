package translator

import (
	"fmt"
	"math"
	"net/http"

	"github.com/jeffleon2/draftea-device-payments/internal/models"
)

// Formatter shapes payment outcomes for one device category.
type Formatter interface {
	Success(result models.PaymentResult) models.DeviceResponse
	Failure(err *models.PaymentError, result models.PaymentResult) models.DeviceResponse
}

// OutputTranslator maps payment outcomes to device-specific responses. Every
// category must have a formatter; there is no silent default branch.
type OutputTranslator struct {
	formatters map[models.Category]Formatter
}

// NewOutputTranslator fails if any category in models.AllCategories has no
// formatter.
func NewOutputTranslator(formatters map[models.Category]Formatter) (*OutputTranslator, error) {
	for _, category := range models.AllCategories() {
		if _, ok := formatters[category]; !ok {
			return nil, fmt.Errorf("no output formatter for device category %s", category)
		}
	}
	return &OutputTranslator{formatters: formatters}, nil
}

// DefaultFormatters returns the built-in formatter for every category.
func DefaultFormatters() map[models.Category]Formatter {
	return map[models.Category]Formatter{
		models.CategoryMobile:  mobileFormatter{},
		models.CategoryTV:      tvFormatter{},
		models.CategoryIoT:     iotFormatter{},
		models.CategoryVoice:   voiceFormatter{},
		models.CategoryGaming:  gamingFormatter{},
		models.CategoryGeneric: genericFormatter{},
	}
}

func DefaultOutputTranslator() *OutputTranslator {
	return &OutputTranslator{formatters: DefaultFormatters()}
}

func (t *OutputTranslator) TranslateOutput(result models.PaymentResult, device models.Device) models.DeviceResponse {
	f := t.formatterFor(device)
	if !result.Success {
		return f.Failure(models.NewDeclinedError(result.Error), result)
	}
	return f.Success(result)
}

func (t *OutputTranslator) TranslateError(err error, device models.Device) models.DeviceResponse {
	return t.TranslateFailure(err, models.PaymentResult{}, device)
}

// TranslateFailure shapes an error for a payment that already has a result,
// so the response keeps its transaction id and amount.
func (t *OutputTranslator) TranslateFailure(err error, result models.PaymentResult, device models.Device) models.DeviceResponse {
	pe := models.AsPaymentError(err)
	result.Success = false
	result.Error = pe.Error()
	return t.formatterFor(device).Failure(pe, result)
}

func (t *OutputTranslator) formatterFor(device models.Device) Formatter {
	category := models.CategoryGeneric
	if device != nil {
		category = models.CategoryOf(device.DeviceType())
	}
	return t.formatters[category]
}

func formatAmount(amount float64, currency string) string {
	return fmt.Sprintf("%.2f %s", amount, currency)
}

type mobileFormatter struct{}

func (mobileFormatter) Success(r models.PaymentResult) models.DeviceResponse {
	return models.MobileResponse{
		Message:          "Payment of " + formatAmount(r.Amount, r.Currency) + " successful",
		VibrationPattern: "success_double",
		Notification: models.Notification{
			Title: "Payment Successful",
			Body:  fmt.Sprintf("Paid %s (transaction %s)", formatAmount(r.Amount, r.Currency), r.TransactionID),
			Icon:  "check_circle",
		},
	}
}

func (mobileFormatter) Failure(err *models.PaymentError, _ models.PaymentResult) models.DeviceResponse {
	return models.MobileResponse{
		Message:          "Payment failed: " + err.Error(),
		VibrationPattern: "error_long",
		Notification: models.Notification{
			Title: "Payment Failed",
			Body:  err.Error(),
			Icon:  "error",
		},
	}
}

type tvFormatter struct{}

func (tvFormatter) Success(r models.PaymentResult) models.DeviceResponse {
	return models.TVResponse{
		FullScreen:      true,
		DisplayDuration: 5000,
		Content: models.TVContent{
			Title:   "Payment Complete",
			Message: "Transaction " + r.TransactionID,
			Amount:  r.Amount,
		},
		AudioFeedback: models.AudioFeedback{Sound: "chime_success", Volume: 0.6},
	}
}

func (tvFormatter) Failure(err *models.PaymentError, r models.PaymentResult) models.DeviceResponse {
	return models.TVResponse{
		FullScreen:      true,
		DisplayDuration: 8000,
		Content: models.TVContent{
			Title:   "Payment Failed",
			Message: err.Error(),
			Amount:  r.Amount,
		},
		AudioFeedback: models.AudioFeedback{Sound: "tone_error", Volume: 0.6},
	}
}

type iotFormatter struct{}

func (iotFormatter) Success(r models.PaymentResult) models.DeviceResponse {
	return models.IoTResponse{
		LEDPattern:  "solid_green",
		DisplayText: "PAID " + formatAmount(r.Amount, r.Currency),
		BeepPattern: "single_short",
		StatusCode:  http.StatusOK,
	}
}

func (iotFormatter) Failure(err *models.PaymentError, _ models.PaymentResult) models.DeviceResponse {
	code := err.HTTPStatus
	if code == 0 {
		code = http.StatusInternalServerError
	}
	return models.IoTResponse{
		LEDPattern:  "blink_red",
		DisplayText: "ERROR",
		BeepPattern: "triple_long",
		StatusCode:  code,
	}
}

// voiceFormatter ends the session after a successful payment and keeps it
// open after a failure so the user can retry by voice.
type voiceFormatter struct{}

func (voiceFormatter) Success(r models.PaymentResult) models.DeviceResponse {
	return models.VoiceResponse{
		Speech: fmt.Sprintf("Your payment of %.2f %s was successful. Your transaction ID is %s.",
			r.Amount, r.Currency, r.TransactionID),
		ShouldEndSession: true,
	}
}

func (voiceFormatter) Failure(err *models.PaymentError, _ models.PaymentResult) models.DeviceResponse {
	return models.VoiceResponse{
		Speech:           fmt.Sprintf("Sorry, your payment could not be completed: %s.", err.Error()),
		ShouldEndSession: false,
	}
}

type gamingFormatter struct{}

// bigSpenderThreshold unlocks the purchase achievement on gaming consoles.
const bigSpenderThreshold = 100

func (gamingFormatter) Success(r models.PaymentResult) models.DeviceResponse {
	resp := models.GamingResponse{
		OverlayMessage: "Purchase complete! " + formatAmount(r.Amount, r.Currency),
		HapticPattern:  "pulse_success",
		BonusCurrency:  bonusCurrency(r.Amount),
	}
	if r.Amount >= bigSpenderThreshold {
		resp.Achievement = "big_spender"
	}
	return resp
}

// maxBonusCurrency caps the reward so huge amounts never overflow int.
const maxBonusCurrency = 1_000_000

func bonusCurrency(amount float64) int {
	bonus := math.Floor(amount * 10)
	switch {
	case math.IsNaN(bonus) || bonus <= 0:
		return 0
	case bonus >= maxBonusCurrency:
		return maxBonusCurrency
	default:
		return int(bonus)
	}
}

func (gamingFormatter) Failure(err *models.PaymentError, _ models.PaymentResult) models.DeviceResponse {
	return models.GamingResponse{
		OverlayMessage: "Purchase failed: " + err.Error(),
		HapticPattern:  "rumble_error",
	}
}

type genericFormatter struct{}

func (genericFormatter) Success(r models.PaymentResult) models.DeviceResponse {
	return models.GenericResponse{
		Success:       true,
		Message:       "Payment successful",
		TransactionID: r.TransactionID,
		Amount:        r.Amount,
	}
}

func (genericFormatter) Failure(err *models.PaymentError, r models.PaymentResult) models.DeviceResponse {
	return models.GenericResponse{
		Success:       false,
		Message:       "Payment failed",
		TransactionID: r.TransactionID,
		Amount:        r.Amount,
		Error:         err.Error(),
	}
}
