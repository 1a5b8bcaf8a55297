package client

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strconv"
)

// Outcome is the decoded provider envelope: either Ok or Failure.
// Use a type switch to find out which one was returned.
type Outcome[T any] interface {
	isOutcome()
}

// Ok carries the data of a {success:true} envelope
type Ok[T any] struct {
	Data T
}

func (Ok[T]) isOutcome() {}

// Failure carries the error of a {success:false} envelope
type Failure struct {
	Message string
	Code    string
}

func (Failure) isOutcome() {}

// unknownFailureMessage stands in when the error object carries no message
const unknownFailureMessage = "provider reported failure without details"

var (
	errMissingSuccess = stderrors.New("response envelope has no success flag")
	errMissingError   = stderrors.New("response envelope reports failure without an error object")
	errMissingData    = stderrors.New("response envelope reports success without data")
)

type rawEnvelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
}

type envelopeError struct {
	Message    string    `json:"message"`
	StatusCode errorCode `json:"statusCode"`
}

// errorCode accepts the provider's statusCode as either a JSON string or number
type errorCode string

func (c *errorCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*c = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = errorCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("statusCode must be a string or number: %w", err)
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*c = errorCode(strconv.FormatInt(i, 10))
		return nil
	}
	*c = errorCode(n.String())
	return nil
}

// decodeEnvelope parses body into an Outcome. A non-nil error means the body
// is not a well-formed envelope: the success flag is missing, a failure has no
// error object, or a success has no data.
func decodeEnvelope[T any](body []byte) (Outcome[T], error) {
	var env rawEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	if env.Success == nil {
		return nil, errMissingSuccess
	}

	if !*env.Success {
		if env.Error == nil {
			return nil, errMissingError
		}
		failure := Failure{Message: env.Error.Message, Code: string(env.Error.StatusCode)}
		if failure.Message == "" {
			failure.Message = unknownFailureMessage
		}
		return failure, nil
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil, errMissingData
	}
	var data T
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, err
	}
	return Ok[T]{Data: data}, nil
}
