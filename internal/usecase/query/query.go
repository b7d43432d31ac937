package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/ports"
)

// Runs answers JSONPath queries over saved run artifacts, e.g.
//
//	$.Records[?(@.Outcome == "invalid_operation")].Line
//	$.Summary.Succeeded
type Runs struct {
	store ports.ArtifactStore
}

func NewRuns(store ports.ArtifactStore) *Runs {
	return &Runs{store: store}
}

// Execute loads run id and evaluates expr against it. Array results are
// flattened one level so each match becomes one value.
func (q *Runs) Execute(id, expr string) ([]string, error) {
	art, err := q.store.LoadRun(id)
	if err != nil {
		return nil, err
	}
	return Artifact(art, expr)
}

// Artifact evaluates expr against an in-memory artifact.
func Artifact(art domain.RunArtifact, expr string) ([]string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, invalid(expr, fmt.Errorf("empty jsonpath expression"))
	}

	doc, err := toDocument(art)
	if err != nil {
		return nil, &domain.OpError{Op: "query.encode", Kind: domain.KindExecution, Err: err}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, invalid(expr, err)
	}

	if isEmptyValue(val) {
		return []string{}, nil
	}

	var items []any
	if arr, ok := val.([]any); ok {
		items = arr
	} else {
		items = []any{val}
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		s, err := toString(it)
		if err != nil {
			return nil, invalid(expr, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// toDocument round-trips through JSON so jsonpath sees plain maps and slices.
func toDocument(art domain.RunArtifact) (any, error) {
	b, err := json.Marshal(art)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		// JSON numbers decode as float64; integral values print without exponent.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t)), nil
		}
		return fmt.Sprint(t), nil
	case bool, nil:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func invalid(expr string, err error) error {
	return &domain.OpError{
		Op:   "query.jsonpath",
		Kind: domain.KindInvalidInput,
		Err:  fmt.Errorf("%q: %w", expr, err),
	}
}
