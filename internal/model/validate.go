package model

import (
	_ "embed"
	"fmt"
	"strings"

	"cv-exporter/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed document.schema.json
var documentSchema string

// ValidateDocument checks a DocumentModel against the embedded JSON
// schema. Callers on the export path treat a failure as advisory; the
// tests treat it as a contract.
func ValidateDocument(doc *domain.DocumentModel) error {
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	docLoader := gojsonschema.NewGoLoader(doc)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
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
