// Copyright 2025 Riftforge Games
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package response

import (
	"encoding/json"
	"strings"
)

const (
	jsonFence = "```json"
	fence     = "```"
)

// Clean strips surrounding whitespace and every markdown code-fence marker
// from raw model output. Clean is idempotent.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, jsonFence, "")
	s = strings.ReplaceAll(s, fence, "")
	return strings.TrimSpace(s)
}

// Option configures Parse.
type Option func(*options)

type options struct {
	repair bool
}

// WithRepair enables the key-quote repair pass before decoding.
// Small local models sometimes drop the opening quote of object keys.
func WithRepair() Option {
	return func(o *options) {
		o.repair = true
	}
}

// Parse cleans raw model output and decodes it as a JSON array.
//
// Returns *MalformedResponseError if the cleaned text is not valid JSON and
// *UnexpectedShapeError if it decodes to anything other than an array.
// Both carry the raw text for diagnostics.
func Parse(raw string, opts ...Option) ([]any, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cleaned := Clean(raw)
	if o.repair {
		cleaned = repairJSON(cleaned)
	}

	var decoded any
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}

	entries, ok := decoded.([]any)
	if !ok {
		return nil, &UnexpectedShapeError{Raw: raw, Got: jsonKind(decoded)}
	}
	return entries, nil
}

// jsonKind names the JSON type of a decoded value.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	}
	return "unknown"
}
