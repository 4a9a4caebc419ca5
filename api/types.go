// Request/response DTOs. The front-end sends numbers as numbers or strings
// interchangeably and duplicates several field names; the flexible types
// here absorb that at the boundary so the core only sees normalized input.
package api

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"roofquote/core/metal"
	"roofquote/core/quote"
)

// FlexFloat accepts a JSON number, a numeric string, or null.
// A present-but-unparseable value is kept as NaN so the pricers can reject
// it with BAD_DIMENSIONS instead of it vanishing silently.
type FlexFloat struct {
	value float64
	set   bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			return nil
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			f.set = true
			f.value = math.NaN()
			return nil
		}
		f.set = true
		f.value = v
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		f.set = true
		f.value = math.NaN()
		return nil
	}
	f.set = true
	f.value = v
	return nil
}

// Ptr returns the parsed value, nil when absent
func (f FlexFloat) Ptr() *float64 {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

// FlexInt accepts a JSON integer, a numeric string, or null
type FlexInt struct {
	value int
	set   bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	var ff FlexFloat
	if err := ff.UnmarshalJSON(b); err != nil {
		return err
	}
	if p := ff.Ptr(); p != nil && !math.IsNaN(*p) && !math.IsInf(*p, 0) {
		f.set = true
		f.value = int(*p)
	}
	return nil
}

// Ptr returns the parsed value, nil when absent or unparseable
func (f FlexInt) Ptr() *int {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

// FlexBool accepts true/false, "true"/"false" (case-insensitive), and "1"/"0"
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexBool) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(str)) {
		case "true", "1":
			*f = true
		}
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*f = FlexBool(v)
		return nil
	}
	// Numeric 1 counts as true, anything else stays false
	var n float64
	if err := json.Unmarshal(b, &n); err == nil && n == 1 {
		*f = true
	}
	return nil
}

// CalculateRequest is the POST /api/calculate body. Every field is optional;
// aliases mirror what successive front-end builds have sent.
type CalculateRequest struct {
	Product   string   `json:"product"`
	Metal     string   `json:"metal"`
	MetalType string   `json:"metalType"`
	Tier      string   `json:"tier"`
	Powdercoat FlexBool `json:"powdercoat"`

	Length FlexFloat `json:"length"`
	L      FlexFloat `json:"L"`
	Width  FlexFloat `json:"width"`
	W      FlexFloat `json:"W"`
	Skirt  FlexFloat `json:"skirt"`
	S      FlexFloat `json:"S"`

	Holes          FlexInt  `json:"holes"`
	HoleCount      FlexInt  `json:"holeCount"`
	H              FlexInt  `json:"H"`
	HoleType       string   `json:"holeType"`
	MultiHoleCount FlexInt  `json:"multiHoleCount"`
	Unsquare       FlexBool `json:"unsquare"`
	U              FlexBool `json:"U"`

	NailingFlange FlexFloat `json:"nailingFlange"`
	BaseOverhang  FlexFloat `json:"baseOverhang"`

	Model string `json:"model"`

	ScreenHeight FlexFloat `json:"screenHeight"`
	Screen       FlexFloat `json:"screen"`
	LidOverhang  FlexFloat `json:"lidOverhang"`
	Overhang     FlexFloat `json:"overhang"`
	Inset        FlexFloat `json:"inset"`
	Pitch        FlexFloat `json:"pitch"`
}

// ToQuoteRequest coalesces aliases and normalizes tokens for the engine
func (r *CalculateRequest) ToQuoteRequest() *quote.Request {
	rawMetal := firstNonEmpty(r.Metal, r.MetalType)
	return &quote.Request{
		Product:        strings.ToLower(strings.TrimSpace(r.Product)),
		Metal:          metal.Normalize(rawMetal),
		RawMetal:       strings.ToLower(strings.TrimSpace(rawMetal)),
		Tier:           r.Tier,
		Powdercoat:     bool(r.Powdercoat),
		Length:         firstFloat(r.Length, r.L),
		Width:          firstFloat(r.Width, r.W),
		Skirt:          firstFloat(r.Skirt, r.S),
		Holes:          firstInt(r.Holes, r.HoleCount, r.H),
		HoleType:       r.HoleType,
		MultiHoleCount: r.MultiHoleCount.Ptr(),
		Unsquare:       bool(r.Unsquare) || bool(r.U),
		NailingFlange:  r.NailingFlange.Ptr(),
		BaseOverhang:   r.BaseOverhang.Ptr(),
		Model:          strings.TrimSpace(r.Model),
		Screen:         firstFloat(r.ScreenHeight, r.Screen),
		Overhang:       firstFloat(r.LidOverhang, r.Overhang),
		Inset:          r.Inset.Ptr(),
		Pitch:          r.Pitch.Ptr(),
	}
}

// QuoteResponse mirrors the canonical finalPrice into the legacy "price"
// field at the serialization boundary only.
type QuoteResponse struct {
	*quote.Quote
	Price float64 `json:"price"`
}

// NewQuoteResponse wraps a quote for serialization
func NewQuoteResponse(q *quote.Quote) QuoteResponse {
	return QuoteResponse{Quote: q, Price: q.FinalPrice}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func firstFloat(values ...FlexFloat) *float64 {
	for _, v := range values {
		if p := v.Ptr(); p != nil {
			return p
		}
	}
	return nil
}

func firstInt(values ...FlexInt) *int {
	for _, v := range values {
		if p := v.Ptr(); p != nil {
			return p
		}
	}
	return nil
}
