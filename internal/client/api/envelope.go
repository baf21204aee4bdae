package api

import (
	"bytes"
	"encoding/json"
)

// Envelope is the application-level response wrapper the backend uses,
// distinguished from the raw transport status: {code, data, message}.
// Some endpoints use "msg" instead of "message".
type Envelope struct {
	Code    *int            `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Msg     string          `json:"msg"`
}

// Success reports whether the envelope's application code signals success.
// The backend uses both 0 and 200 for success; the predicate keeps that
// equivalence in one place.
func (e *Envelope) Success() bool {
	return e.Code != nil && (*e.Code == 0 || *e.Code == 200)
}

// ErrorMessage returns the embedded failure message, whichever field the
// endpoint used, with a generic fallback.
func (e *Envelope) ErrorMessage() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Msg != "" {
		return e.Msg
	}
	return "request failed"
}

var jsonNull = []byte("null")

// Payload returns the part of a successful envelope handed to the caller:
// the nested data field when it carries a value, else the whole envelope
// body.
func (e *Envelope) Payload(body []byte) json.RawMessage {
	if len(e.Data) > 0 && !bytes.Equal(e.Data, jsonNull) {
		return e.Data
	}
	return body
}

// decodeEnvelope tries to interpret body as an application envelope.
// A body is enveloped iff it is a JSON object carrying a "code" field;
// anything else (bare payloads, arrays, non-JSON) is passed through raw.
func decodeEnvelope(body []byte) (*Envelope, bool) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false
	}
	if env.Code == nil {
		return nil, false
	}
	return &env, true
}
