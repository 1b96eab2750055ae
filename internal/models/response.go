package models

// Category groups device types that share a response shape.
type Category string

const (
	CategoryMobile  Category = "mobile"
	CategoryTV      Category = "tv"
	CategoryIoT     Category = "iot"
	CategoryVoice   Category = "voice"
	CategoryGaming  Category = "gaming"
	CategoryGeneric Category = "generic"
)

// AllCategories lists every category. Output formatters must cover each one.
func AllCategories() []Category {
	return []Category{CategoryMobile, CategoryTV, CategoryIoT, CategoryVoice, CategoryGaming, CategoryGeneric}
}

// CategoryOf maps a device type onto its response category.
func CategoryOf(t DeviceType) Category {
	switch t {
	case DeviceSmartphone, DeviceSmartwatch:
		return CategoryMobile
	case DeviceSmartTV:
		return CategoryTV
	case DeviceIoT:
		return CategoryIoT
	case DeviceVoiceAssistant, DeviceCarSystem:
		return CategoryVoice
	case DeviceGamingConsole:
		return CategoryGaming
	default:
		return CategoryGeneric
	}
}

// DeviceResponse is a response payload shaped for one device category.
type DeviceResponse interface {
	Category() Category
}

type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
}

type MobileResponse struct {
	Message          string       `json:"message"`
	VibrationPattern string       `json:"vibration_pattern"`
	Notification     Notification `json:"notification"`
}

func (MobileResponse) Category() Category { return CategoryMobile }

type TVContent struct {
	Title   string  `json:"title"`
	Message string  `json:"message"`
	Amount  float64 `json:"amount,omitempty"`
}

type AudioFeedback struct {
	Sound  string  `json:"sound"`
	Volume float64 `json:"volume"`
}

type TVResponse struct {
	FullScreen      bool          `json:"full_screen"`
	DisplayDuration int           `json:"display_duration_ms"`
	Content         TVContent     `json:"content"`
	AudioFeedback   AudioFeedback `json:"audio_feedback"`
}

func (TVResponse) Category() Category { return CategoryTV }

type IoTResponse struct {
	LEDPattern  string `json:"led_pattern"`
	DisplayText string `json:"display_text"`
	BeepPattern string `json:"beep_pattern"`
	StatusCode  int    `json:"status_code"`
}

func (IoTResponse) Category() Category { return CategoryIoT }

type VoiceResponse struct {
	Speech           string `json:"speech"`
	ShouldEndSession bool   `json:"should_end_session"`
}

func (VoiceResponse) Category() Category { return CategoryVoice }

type GamingResponse struct {
	OverlayMessage string `json:"overlay_message"`
	HapticPattern  string `json:"haptic_pattern"`
	Achievement    string `json:"achievement,omitempty"`
	BonusCurrency  int    `json:"bonus_currency,omitempty"`
}

func (GamingResponse) Category() Category { return CategoryGaming }

type GenericResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Error         string  `json:"error,omitempty"`
}

func (GenericResponse) Category() Category { return CategoryGeneric }
