package manifest

import (
	"encoding/json"
	"errors"
	"strings"

	apperrors "github.com/Creativityliberty/stylepropre/pkg/errors"
)

// Parse decodes an AI-produced manifest payload. Models frequently wrap their
// JSON in markdown code fences or surrounding prose, so the payload is trimmed
// down to its outermost object before decoding. Unknown fields are ignored;
// only genuinely undecodable payloads fail.
func Parse(data []byte) (*RawManifest, error) {
	payload := extractJSON(string(data))
	if payload == "" {
		return nil, apperrors.NewParseError("manifest payload", 0, errEmptyPayload)
	}

	var raw RawManifest
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, apperrors.NewParseError("manifest payload", syntaxErr.Offset, err)
		}
		return nil, apperrors.NewParseError("manifest payload", 0, err)
	}

	return &raw, nil
}

// ParseFile is Parse plus source attribution for disk-loaded manifests.
func ParseFile(path string, data []byte) (*RawManifest, error) {
	raw, err := Parse(data)
	if err != nil {
		var parseErr *apperrors.ParseError
		if errors.As(err, &parseErr) {
			return nil, apperrors.NewParseError(path, parseErr.Offset, parseErr.Err)
		}
		return nil, err
	}
	return raw, nil
}

var errEmptyPayload = &emptyPayloadError{}

type emptyPayloadError struct{}

func (*emptyPayloadError) Error() string { return "payload contains no JSON object" }

// extractJSON strips code fences and surrounding prose, returning the text
// between the first '{' and the last '}'.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}
