package model

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// artifactSchema describes the on-disk model document
const artifactSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "kind", "features", "intercept", "coefficients"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "version": {"type": "string"},
    "kind": {"type": "string", "enum": ["linear"]},
    "features": {
      "type": "array",
      "minItems": 1,
      "uniqueItems": true,
      "items": {"type": "string", "minLength": 1}
    },
    "intercept": {"type": "number"},
    "coefficients": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "number"}
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(artifactSchema)

func validateArtifact(raw []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %v", ErrInvalidArtifact, errs)
	}

	return nil
}
