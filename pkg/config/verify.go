package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks the config against the required fields and minimums
// declared in the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	defs, _ := schema["$defs"].(map[string]any)
	if err := verifyObject(resolve(schema, defs), configMap, defs, ""); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// resolve follows a local $ref to its definition
func resolve(node, defs map[string]any) map[string]any {
	ref, ok := node["$ref"].(string)
	if !ok {
		return node
	}
	def, ok := defs[strings.TrimPrefix(ref, "#/$defs/")].(map[string]any)
	if !ok {
		return node
	}
	return def
}

func verifyObject(node, value, defs map[string]any, path string) error {
	required, _ := node["required"].([]any)
	for _, r := range required {
		name, _ := r.(string)
		if v, ok := value[name]; !ok || v == nil || v == "" {
			return fmt.Errorf("%s%s is required", path, name)
		}
	}

	props, _ := node["properties"].(map[string]any)
	for name, p := range props {
		prop, ok := p.(map[string]any)
		if !ok {
			continue
		}
		prop = resolve(prop, defs)
		switch v := value[name].(type) {
		case map[string]any:
			if err := verifyObject(prop, v, defs, path+name+"."); err != nil {
				return err
			}
		case []any:
			items, ok := prop["items"].(map[string]any)
			if !ok {
				continue
			}
			items = resolve(items, defs)
			for i, el := range v {
				if obj, ok := el.(map[string]any); ok {
					if err := verifyObject(items, obj, defs, fmt.Sprintf("%s%s[%d].", path, name, i)); err != nil {
						return err
					}
				}
			}
		case float64:
			if minimum, ok := prop["minimum"].(float64); ok && v < minimum {
				return fmt.Errorf("%s%s must be at least %v", path, name, minimum)
			}
		}
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return SchemaReflector().Reflect(&Config{}), nil
}

// SchemaReflector makes the reflector used for schema.json, required fields come from jsonschema tags
func SchemaReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{RequiredFromJSONSchemaTags: true}
}
