package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const schemaName = "script.schema.json"

//go:embed script.schema.json
var schemaData []byte

var (
	scriptSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// compileSchema compiles the embedded script schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
		if err != nil {
			compileErr = zerr.Wrap(err, "failed to unmarshal script schema")
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaName, doc); err != nil {
			compileErr = zerr.Wrap(err, "failed to add script schema resource")
			return
		}

		scriptSchema, err = compiler.Compile(schemaName)
		if err != nil {
			compileErr = zerr.Wrap(err, "failed to compile script schema")
		}
	})
	return compileErr
}

// validateNode checks a decoded YAML document against the script schema.
// The document is converted to its JSON form first so that the validator
// sees the same value types it would for a JSON file.
func validateNode(doc *yaml.Node) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var raw any
	if err := doc.Decode(&raw); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if err := scriptSchema.Validate(v); err != nil {
		return zerr.Wrap(err, domain.ErrSchemaValidationFailed.Error())
	}
	return nil
}
