// Package share encodes a task type and option set into a URL-safe payload
// and decodes it back, so a generated prompt's inputs can be passed around
// as a single query parameter.
package share

import (
	"encoding/base64"
	"encoding/json"

	"github.com/Omodaka9375/code-prompt/internal/errors"
	"github.com/Omodaka9375/code-prompt/internal/schema"
)

// Payload is the shareable record: everything needed to rebuild a prompt.
type Payload struct {
	TaskType schema.TaskType `json:"taskType"`
	Options  schema.Options  `json:"options"`
}

// Encode serializes a payload to a base64url string.
func Encode(p Payload) (string, error) {
	if p.Options == nil {
		p.Options = schema.Options{}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", errors.Wrap(errors.ErrShareInvalid, "could not encode share payload", "", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode parses a base64url payload back into core inputs. Standard base64
// is accepted too, so payloads survive tools that re-pad or re-encode them.
func Decode(s string) (Payload, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		if data, err = base64.StdEncoding.DecodeString(s); err != nil {
			return Payload{}, errors.ShareInvalid(err)
		}
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, errors.ShareInvalid(err)
	}
	if p.Options == nil {
		p.Options = schema.Options{}
	}
	return p, nil
}
