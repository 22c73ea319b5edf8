package remote

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/quizzine/engine/internal/question"
)

// ErrInvalidDocument indicates a remote question document failed schema
// validation. The document is rejected at the boundary, never admitted in
// a loosely-typed form.
type ErrInvalidDocument struct {
	ID  string // document id when known, may be empty
	Err error
}

func (e *ErrInvalidDocument) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("invalid question document %q: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("invalid question document: %v", e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error { return e.Err }

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the compiled question schema, compiling it once.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		// Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(questionSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// questionDoc is the wire shape of a remote question document.
type questionDoc struct {
	ID            string `json:"id"`
	Prompt        string `json:"prompt"`
	Kind          string `json:"kind"`
	Difficulty    int    `json:"difficulty"`
	TimeLimitSecs int    `json:"time_limit_secs"`
	Points        float64 `json:"points"`
	SubTheme      struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Theme struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Color string `json:"color"`
		} `json:"theme"`
	} `json:"sub_theme"`
	Answers []struct {
		ID      string `json:"id"`
		Label   string `json:"label"`
		Text    string `json:"text"`
		Correct bool   `json:"correct"`
	} `json:"answers"`
	Explanation string `json:"explanation"`
	Active      bool   `json:"active"`
}

// decodeQuestion validates raw JSON against the question schema and maps it
// to the engine's Question type. Returns *ErrInvalidDocument on any shape
// problem.
func decodeQuestion(raw json.RawMessage) (question.Question, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return question.Question{}, &ErrInvalidDocument{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiled()
	if err != nil {
		return question.Question{}, fmt.Errorf("compile question schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		id := ""
		if m, ok := parsed.(map[string]any); ok {
			id, _ = m["id"].(string)
		}
		return question.Question{}, &ErrInvalidDocument{ID: id, Err: err}
	}

	var doc questionDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return question.Question{}, &ErrInvalidDocument{Err: err}
	}

	q := question.Question{
		ID:          doc.ID,
		Prompt:      doc.Prompt,
		Kind:        question.Kind(doc.Kind),
		Difficulty:  doc.Difficulty,
		TimeLimit:   time.Duration(doc.TimeLimitSecs) * time.Second,
		Points:      doc.Points,
		Explanation: doc.Explanation,
		Active:      doc.Active,
	}
	q.SubTheme = question.SubTheme{
		ID:   doc.SubTheme.ID,
		Name: doc.SubTheme.Name,
		Theme: question.Theme{
			ID:    doc.SubTheme.Theme.ID,
			Name:  doc.SubTheme.Theme.Name,
			Color: doc.SubTheme.Theme.Color,
		},
	}
	for _, a := range doc.Answers {
		q.Answers = append(q.Answers, question.Answer{
			ID:      a.ID,
			Label:   a.Label,
			Text:    a.Text,
			Correct: a.Correct,
		})
	}
	return q, nil
}
