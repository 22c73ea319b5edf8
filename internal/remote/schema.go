package remote

// questionSchema is the JSON schema a remote question document must satisfy
// before it is admitted into the engine.
var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":     map[string]any{"type": "string", "minLength": 1},
		"prompt": map[string]any{"type": "string", "minLength": 1},
		"kind": map[string]any{
			"type": "string",
			"enum": []any{"single", "multi"},
		},
		"difficulty": map[string]any{
			"type":    "integer",
			"minimum": 1,
			"maximum": 5,
		},
		"time_limit_secs": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
		"points": map[string]any{"type": "number"},
		"sub_theme": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":   map[string]any{"type": "string", "minLength": 1},
				"name": map[string]any{"type": "string"},
				"theme": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":    map[string]any{"type": "string", "minLength": 1},
						"name":  map[string]any{"type": "string"},
						"color": map[string]any{"type": "string"},
					},
					"required": []any{"id", "name"},
				},
			},
			"required": []any{"id", "name", "theme"},
		},
		"answers": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":      map[string]any{"type": "string", "minLength": 1},
					"label":   map[string]any{"type": "string"},
					"text":    map[string]any{"type": "string"},
					"correct": map[string]any{"type": "boolean"},
				},
				"required": []any{"id", "text"},
			},
		},
		"explanation": map[string]any{"type": "string"},
		"active":      map[string]any{"type": "boolean"},
	},
	"required": []any{"id", "prompt", "kind", "sub_theme", "answers"},
}
