package verifier

import (
	"encoding/base64"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Header is the decoded first segment of a token. Parameters carries every
// header member other than "alg", unmodified and uninterpreted.
type Header struct {
	Algorithm  Algorithm
	Parameters map[string]any
}

// schema checks `validate` tags on struct payloads. Shared and safe for
// concurrent use.
var schema = validator.New(validator.WithRequiredStructEnabled())

// decodeSegment decodes one base64url segment. Canonical segments are
// unpadded but padded input is tolerated.
func decodeSegment(segment string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(segment, "="))
}

func decodeHeader(segment string) (Header, error) {
	raw, err := decodeSegment(segment)
	if err != nil {
		return Header{}, &InvalidHeaderError{Messages: []string{
			fmt.Sprintf("header segment is not valid base64url: %s", err),
		}}
	}

	var params map[string]any
	if err := json.Unmarshal(raw, &params); err != nil {
		return Header{}, &InvalidHeaderError{Messages: []string{
			fmt.Sprintf("header is not a JSON object: %s", err),
		}}
	}

	algValue, ok := params["alg"]
	if !ok {
		return Header{}, &InvalidHeaderError{Messages: []string{
			`header is missing the "alg" parameter`,
		}}
	}
	algName, ok := algValue.(string)
	if !ok {
		return Header{}, &InvalidHeaderError{Messages: []string{
			`header "alg" parameter is not a string`,
		}}
	}
	alg := Algorithm(algName)
	if !alg.Recognized() {
		return Header{}, &InvalidHeaderError{Messages: []string{
			fmt.Sprintf("header declares unrecognized algorithm %q", algName),
		}}
	}

	delete(params, "alg")
	return Header{Algorithm: alg, Parameters: params}, nil
}

func decodePayload[P any](segment string) (P, error) {
	var payload P

	raw, err := decodeSegment(segment)
	if err != nil {
		var zero P
		return zero, &InvalidPayloadError{Messages: []string{
			fmt.Sprintf("payload segment is not valid base64url: %s", err),
		}}
	}

	if err := json.Unmarshal(raw, &payload); err != nil {
		var zero P
		return zero, &InvalidPayloadError{Messages: []string{
			fmt.Sprintf("payload does not deserialize into %T: %s", payload, err),
		}}
	}

	if messages := validateSchema(payload); len(messages) > 0 {
		var zero P
		return zero, &InvalidPayloadError{Messages: messages}
	}

	return payload, nil
}

// validateSchema runs `validate` tag rules over struct payloads, yielding
// one message per violated field. Non-struct payloads have no schema to
// check and pass through.
func validateSchema(payload any) []string {
	value := reflect.ValueOf(payload)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if !value.IsValid() || value.Kind() != reflect.Struct {
		return nil
	}

	err := schema.Struct(value.Interface())
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, fmt.Sprintf(
			"field %s fails the %q rule", fieldError.Namespace(), fieldError.Tag(),
		))
	}
	return messages
}
