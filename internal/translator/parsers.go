package translator

import (
	"net/url"
	"strings"

	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/tidwall/gjson"
)

// metaCapabilityMismatch flags inputs a device claims it cannot produce. The
// request is still translated; the flag is kept for debugging.
const metaCapabilityMismatch = "capability_mismatch"

func parseNFCTap(event gjson.Result, caps models.CapabilitySet) paymentData {
	data := commonFields(event)
	if token := text(event.Get("card_token")); token != "" {
		data.metadata[models.MetaCardToken] = token
	}
	if tagID := text(event.Get("tag_id")); tagID != "" {
		data.metadata["tag_id"] = tagID
	}
	if !caps.HasNFC {
		data.metadata[metaCapabilityMismatch] = "has_nfc"
	}
	return data
}

// parseQRScan reads qr_data as embedded JSON or as a payment URL such as
// "pay://merchant?amount=12.50&merchant=cafe_42". Top-level event fields fill
// whatever the QR payload leaves out.
func parseQRScan(event gjson.Result, caps models.CapabilitySet) paymentData {
	data := paymentData{metadata: map[string]any{}}
	payload := strings.TrimSpace(text(event.Get("qr_data")))

	switch {
	case payload == "":
		data.metadata["qr_format"] = "missing"
	case gjson.Valid(payload) && gjson.Parse(payload).IsObject():
		data = commonFields(gjson.Parse(payload))
		data.metadata["qr_format"] = "json"
	default:
		data.metadata["qr_format"] = "unknown"
		if u, err := url.Parse(payload); err == nil && len(u.Query()) > 0 {
			data.metadata["qr_format"] = "url"
			q := u.Query()
			if f, ok := number(gjson.Result{Type: gjson.String, Str: q.Get("amount")}); ok {
				data.amount, data.amountSet = f, true
			}
			data.currency = q.Get("currency")
			data.merchantID = firstNonEmpty(q.Get("merchant_id"), q.Get("merchant"))
			data.description = firstNonEmpty(q.Get("description"), q.Get("note"))
		}
	}

	fallback := commonFields(event)
	if !data.amountSet {
		data.amount, data.amountSet = fallback.amount, fallback.amountSet
	}
	data.currency = firstNonEmpty(data.currency, fallback.currency)
	data.merchantID = firstNonEmpty(data.merchantID, fallback.merchantID)
	data.description = firstNonEmpty(data.description, fallback.description)
	if !caps.HasCamera {
		data.metadata[metaCapabilityMismatch] = "has_camera"
	}
	return data
}

func parseVoiceCommand(event gjson.Result, caps models.CapabilitySet) paymentData {
	transcript := text(event.Get("transcript"))
	data := paymentData{
		description: transcript,
		metadata:    map[string]any{"transcript": transcript},
	}

	amountEnd := 0
	if amount, end, ok := parseVoiceAmount(transcript); ok {
		data.amount, data.amountSet = amount, true
		amountEnd = end
	}
	data.merchantID = parseVoiceMerchant(transcript, amountEnd)
	data.currency = text(event.Get("currency"))
	if !caps.HasVoiceIO {
		data.metadata[metaCapabilityMismatch] = "has_voice_io"
	}
	return data
}

// parseSensorTrigger handles automatic reorders: price times quantity.
func parseSensorTrigger(event gjson.Result, _ models.CapabilitySet) paymentData {
	data := paymentData{metadata: map[string]any{}}

	if price, ok := firstNumber(event, "price", "amount"); ok {
		quantity, ok := number(event.Get("quantity"))
		if !ok || quantity <= 0 {
			quantity = 1
		}
		data.amount, data.amountSet = roundCents(price*quantity), true
		data.metadata["quantity"] = quantity
	}
	data.currency = text(event.Get("currency"))
	data.merchantID = text(event.Get("merchant_id"))

	sensorID := text(event.Get("sensor_id"))
	productID := text(event.Get("product_id"))
	if sensorID != "" {
		data.metadata["sensor_id"] = sensorID
	}
	if productID != "" {
		data.metadata["product_id"] = productID
		data.description = "Automatic reorder of " + productID
	}
	return data
}

func parseControllerInput(event gjson.Result, _ models.CapabilitySet) paymentData {
	data := paymentData{metadata: map[string]any{}}
	if amount, ok := firstNumber(event, "item_price", "amount"); ok {
		data.amount, data.amountSet = amount, true
	}
	data.currency = text(event.Get("currency"))
	data.description = text(event.Get("item_name"))

	gameID := text(event.Get("game_id"))
	data.merchantID = text(event.Get("merchant_id"))
	if data.merchantID == "" && gameID != "" {
		data.merchantID = "game_" + gameID
	}
	if gameID != "" {
		data.metadata["game_id"] = gameID
	}
	if seq := event.Get("button_sequence"); seq.Exists() {
		data.metadata["button_sequence"] = seq.Raw
	}
	return data
}

func parseManualEntry(event gjson.Result, _ models.CapabilitySet) paymentData {
	return commonFields(event)
}

func commonFields(event gjson.Result) paymentData {
	data := paymentData{
		currency:    text(event.Get("currency")),
		merchantID:  firstText(event, "merchant_id", "merchant"),
		description: text(event.Get("description")),
		metadata:    map[string]any{},
	}
	if amount, ok := number(event.Get("amount")); ok {
		data.amount, data.amountSet = amount, true
	}
	return data
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
