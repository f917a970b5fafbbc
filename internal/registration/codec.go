package registration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"gopkg.in/yaml.v3"
)

const maxPayloadBytes = 1 << 20

// decode reads the request body into v. JSON is assumed when no content
// type is sent.
func decode(r *http.Request, v any) error {
	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnsupportedPayload, ct)
		}
		mediaType = parsed
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes+1))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if len(raw) > maxPayloadBytes {
		return fmt.Errorf("%w: max %d bytes", ErrPayloadTooLarge, maxPayloadBytes)
	}

	body := bytes.NewReader(raw)
	switch mediaType {
	case "application/json":
		dec := json.NewDecoder(body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
	case "application/yaml", "application/x-yaml", "text/yaml":
		dec := yaml.NewDecoder(body)
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedPayload, mediaType)
	}
	return nil
}
