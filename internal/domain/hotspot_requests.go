package domain

import (
	"encoding/json"
)

// CreateHotspotRequest is the decoded POST body. Nil Lat/Lng mean the field was
// absent or not a number.
type CreateHotspotRequest struct {
	Lat  *float64 `json:"lat" validate:"required,finite"`
	Lng  *float64 `json:"lng" validate:"required,finite"`
	Note *string  `json:"note"`
}

// NewCreateHotspotRequest extracts a request from an arbitrary decoded JSON value.
// Numbers must be decoded as json.Number. Wrong types are dropped, not rejected:
// validation decides what is missing.
func NewCreateHotspotRequest(body any) CreateHotspotRequest {
	var req CreateHotspotRequest

	obj, ok := body.(map[string]any)
	if !ok {
		return req
	}

	req.Lat = numberField(obj, "lat")
	req.Lng = numberField(obj, "lng")
	if s, ok := obj["note"].(string); ok {
		req.Note = &s
	}
	return req
}

func numberField(obj map[string]any, key string) *float64 {
	var f float64
	switch v := obj[key].(type) {
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case float64:
		f = v
	default:
		return nil
	}
	return &f
}

type NearbyRequest struct {
	Lat      float64 `query:"lat" validate:"lat"`
	Lng      float64 `query:"lng" validate:"lng"`
	RadiusKM float64 `query:"radius_km" validate:"radius_km"`
}
