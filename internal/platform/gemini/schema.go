package gemini

import (
	"strings"

	"github.com/phrazzld/quizgen-api/internal/generation"
	"google.golang.org/genai"
)

var schemaTypes = map[string]genai.Type{
	generation.TypeObject:  genai.TypeObject,
	generation.TypeArray:   genai.TypeArray,
	generation.TypeString:  genai.TypeString,
	generation.TypeInteger: genai.TypeInteger,
}

// toGenaiSchema converts a provider-neutral schema to the Gemini OpenAPI
// subset. additionalProperties has no Gemini equivalent and is dropped; the
// response validator enforces the exact shape anyway.
func toGenaiSchema(s *generation.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        schemaType(s.Type),
		Description: s.Description,
		Required:    append([]string(nil), s.Required...),
		Items:       toGenaiSchema(s.Items),
		MinItems:    int64Ptr(s.MinItems),
		MaxItems:    int64Ptr(s.MaxItems),
		MinLength:   int64Ptr(s.MinLength),
		Minimum:     float64Ptr(s.Minimum),
		Maximum:     float64Ptr(s.Maximum),
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
		out.PropertyOrdering = append([]string(nil), s.PropertyOrder...)
	}

	return out
}

func schemaType(t string) genai.Type {
	if gt, ok := schemaTypes[t]; ok {
		return gt
	}
	return genai.Type(strings.ToUpper(t))
}

func int64Ptr(v *int) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}

func float64Ptr(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
