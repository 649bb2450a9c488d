// Package domain models active weather alerts published by the National
// Weather Service (NWS) API.
//
// # Data Source
//
// Alerts come from https://api.weather.gov/alerts/active, which answers with a
// GeoJSON feature collection:
//
//	{"type": "FeatureCollection", "features": [{"id": "...", "properties": {...}}, ...]}
//
// The optional "area" query parameter scopes the collection to a state or
// marine area code, e.g. "CA" or "AM". The API rejects requests that carry no
// User-Agent, so every request identifies the client with a contact string.
//
// # Property Conventions
//
// Only string-valued properties are read. The eleven keys used here are:
//
//	event        "Winter Storm Warning"
//	areaDesc     "Lassen; Western Plumas County"      (semicolon separated zones)
//	severity     Extreme | Severe | Moderate | Minor | Unknown
//	certainty    Observed | Likely | Possible | Unlikely | Unknown
//	urgency      Immediate | Expected | Future | Past | Unknown
//	effective    "2024-01-31T13:05:00-08:00"          (ISO 8601 with offset)
//	expires      "2024-02-01T04:00:00-08:00"
//	description  free text, may contain newlines
//	instruction  free text or null
//	senderName   "NWS Sacramento CA"
//	id           "urn:oid:2.49.0.1.840.0...."
//
// Timestamps are kept as the text the API sent; the viewer shows them verbatim.
//
// # Missing Data
//
// A key that is absent, null, or not a JSON string yields the empty string.
// Normalization never fails: one feature in always means one row out.
package domain
