package extraction

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON string

// responseSchema only checks shape: root object, list fields are arrays and
// single fields are scalars. Missing keys are allowed and filled in later.
var responseSchema = mustCompileSchema(schemaJSON)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("extraction: invalid response schema: %v", err))
	}
	return schema
}

// validateShape checks content against the response schema.
func validateShape(content []byte) error {
	res, err := responseSchema.Validate(gojsonschema.NewBytesLoader(content))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
