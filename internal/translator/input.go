package translator

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	InputNFCTap          = "nfc_tap"
	InputQRScan          = "qr_scan"
	InputVoiceCommand    = "voice_command"
	InputSensorTrigger   = "sensor_trigger"
	InputControllerInput = "controller_input"
	InputManualEntry     = "manual_entry"
	InputUnknown         = "unknown"
)

// paymentData is what a parser could extract. Zero values mean "not found";
// amountSet distinguishes a missing amount from an explicit zero.
type paymentData struct {
	amount      float64
	amountSet   bool
	currency    string
	merchantID  string
	description string
	metadata    map[string]any
}

type parser func(event gjson.Result, caps models.CapabilitySet) paymentData

// InputTranslator turns raw device events into canonical payment requests.
// Translate never fails: missing or malformed fields fall back to defaults
// and the dispatch engine rejects the result during validation.
type InputTranslator struct {
	parsers           map[string]parser
	fallbackMerchants map[string]string
	demoAmounts       map[string]float64
	demoDefaults      bool
	now               func() time.Time
}

// NewInputTranslator builds a translator with the built-in parsers. With
// demoDefaults a missing amount becomes a fixed per-input demo amount instead
// of zero.
func NewInputTranslator(demoDefaults bool) *InputTranslator {
	return &InputTranslator{
		parsers: map[string]parser{
			InputNFCTap:          parseNFCTap,
			InputQRScan:          parseQRScan,
			InputVoiceCommand:    parseVoiceCommand,
			InputSensorTrigger:   parseSensorTrigger,
			InputControllerInput: parseControllerInput,
			InputManualEntry:     parseManualEntry,
		},
		fallbackMerchants: map[string]string{
			InputNFCTap:          "nfc_merchant",
			InputQRScan:          "qr_merchant",
			InputVoiceCommand:    "voice_merchant",
			InputSensorTrigger:   "iot_merchant",
			InputControllerInput: "gaming_merchant",
			InputManualEntry:     "manual_merchant",
			InputUnknown:         "unknown_merchant",
		},
		demoAmounts: map[string]float64{
			InputNFCTap:          25.99,
			InputQRScan:          10.00,
			InputVoiceCommand:    5.00,
			InputSensorTrigger:   4.99,
			InputControllerInput: 0.99,
			InputManualEntry:     1.00,
			InputUnknown:         1.00,
		},
		demoDefaults: demoDefaults,
		now:          time.Now,
	}
}

// InputTypes returns the discriminators with a dedicated parser.
func (t *InputTranslator) InputTypes() []string {
	types := make([]string, 0, len(t.parsers))
	for name := range t.parsers {
		types = append(types, name)
	}
	return types
}

// FallbackMerchant is the merchant id used when an input of the given type
// carries none.
func (t *InputTranslator) FallbackMerchant(inputType string) string {
	if merchant, ok := t.fallbackMerchants[inputType]; ok {
		return merchant
	}
	return t.fallbackMerchants[InputUnknown]
}

func (t *InputTranslator) Translate(raw models.RawEvent, caps models.CapabilitySet) models.PaymentRequest {
	var event gjson.Result
	if gjson.ValidBytes(raw) {
		event = gjson.ParseBytes(raw)
	}

	inputType := InputUnknown
	if typ := event.Get("type"); typ.Type == gjson.String {
		if _, ok := t.parsers[typ.Str]; ok {
			inputType = typ.Str
		}
	}

	parse, ok := t.parsers[inputType]
	if !ok {
		parse = parseManualEntry
	}
	data := parse(event, caps)

	var defaults []string
	amount := data.amount
	if !data.amountSet {
		defaults = append(defaults, "amount")
		amount = 0
		if t.demoDefaults {
			amount = t.demoAmounts[inputType]
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(data.currency))
	if currency == "" {
		defaults = append(defaults, "currency")
		currency = models.DefaultCurrency
	}

	merchantID := strings.TrimSpace(data.merchantID)
	if merchantID == "" {
		defaults = append(defaults, "merchant_id")
		merchantID = t.FallbackMerchant(inputType)
	}

	description := data.description
	if description == "" {
		description = strings.ReplaceAll(inputType, "_", " ") + " payment"
	}

	metadata := map[string]any{}
	for k, v := range data.metadata {
		metadata[k] = v
	}
	metadata[models.MetaInputType] = inputType
	metadata[models.MetaCapturedAt] = t.capturedAt(event)
	if confidence, ok := number(event.Get("confidence")); ok {
		metadata[models.MetaConfidence] = confidence
	}
	if len(defaults) > 0 {
		metadata[models.MetaDefaultsApplied] = defaults
		logrus.WithFields(logrus.Fields{
			"input_type": inputType,
			"defaults":   strings.Join(defaults, ","),
		}).Warn("Input translator applied defaults")
	}

	return models.PaymentRequest{
		Amount:      amount,
		Currency:    currency,
		Description: description,
		MerchantID:  merchantID,
		Location:    location(event.Get("location")),
		Metadata:    metadata,
	}
}

func (t *InputTranslator) capturedAt(event gjson.Result) string {
	if ts := text(event.Get("timestamp")); ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			return parsed.UTC().Format(time.RFC3339)
		}
	}
	return t.now().UTC().Format(time.RFC3339)
}

// number reads a finite number from a JSON number or numeric string.
func number(r gjson.Result) (float64, bool) {
	var f float64
	switch r.Type {
	case gjson.Number:
		f = r.Num
	case gjson.String:
		s := strings.TrimPrefix(strings.TrimSpace(r.Str), "$")
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func firstNumber(event gjson.Result, paths ...string) (float64, bool) {
	for _, path := range paths {
		if f, ok := number(event.Get(path)); ok {
			return f, true
		}
	}
	return 0, false
}

// text reads a string field; numbers are accepted in their raw form so an
// id sent as 42 still becomes "42".
func text(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return strings.TrimSpace(r.Str)
	case gjson.Number:
		return r.Raw
	default:
		return ""
	}
}

func firstText(event gjson.Result, paths ...string) string {
	for _, path := range paths {
		if s := text(event.Get(path)); s != "" {
			return s
		}
	}
	return ""
}

func location(r gjson.Result) *models.Location {
	if !r.IsObject() {
		return nil
	}
	lat, latOK := firstNumber(r, "latitude", "lat")
	lng, lngOK := firstNumber(r, "longitude", "lng", "lon")
	if !latOK || !lngOK {
		return nil
	}
	return &models.Location{Latitude: lat, Longitude: lng, Label: text(r.Get("label"))}
}

func roundCents(f float64) float64 {
	return math.Round(f*100) / 100
}
