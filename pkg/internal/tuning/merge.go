package tuning

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Overrides is a partial, possibly nested tuning profile keyed by the same
// names as the Config JSON tags. Keys absent from the override keep the base
// value; nested groups merge recursively.
type Overrides map[string]interface{}

// Merge applies overrides onto a base profile and returns the merged result.
// The base is not mutated. Unknown keys are rejected so typos do not silently
// fall back to defaults.
func Merge(base Config, overrides Overrides) (Config, error) {
	if len(overrides) == 0 {
		return base, nil
	}

	raw, err := json.Marshal(base)
	if err != nil {
		return Config{}, fmt.Errorf("encode base profile: %w", err)
	}
	var tree map[string]interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return Config{}, fmt.Errorf("decode base profile: %w", err)
	}

	if err := mergeTree(tree, overrides, ""); err != nil {
		return Config{}, err
	}

	merged, err := json.Marshal(tree)
	if err != nil {
		return Config{}, fmt.Errorf("encode merged profile: %w", err)
	}

	var out Config
	dec := json.NewDecoder(bytes.NewReader(merged))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return Config{}, fmt.Errorf("decode merged profile: %w", err)
	}
	return out, nil
}

func mergeTree(base map[string]interface{}, overrides map[string]interface{}, path string) error {
	for key, value := range overrides {
		childPath := key
		if path != "" {
			childPath = path + "." + key
		}
		current, ok := base[key]
		if !ok {
			return fmt.Errorf("unknown tuning key: %s", childPath)
		}
		switch v := value.(type) {
		case map[string]interface{}:
			sub, ok := current.(map[string]interface{})
			if !ok {
				return fmt.Errorf("tuning key %s is not a group", childPath)
			}
			if err := mergeTree(sub, v, childPath); err != nil {
				return err
			}
		case Overrides:
			sub, ok := current.(map[string]interface{})
			if !ok {
				return fmt.Errorf("tuning key %s is not a group", childPath)
			}
			if err := mergeTree(sub, map[string]interface{}(v), childPath); err != nil {
				return err
			}
		default:
			base[key] = value
		}
	}
	return nil
}
