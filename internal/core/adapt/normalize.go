package adapt

import (
	"encoding/json"
	"strings"
)

// Normalize shapes raw model text into the result form the profile declares.
func Normalize(raw string, shape OutputShape) (Result, error) {
	switch shape {
	case ShapeChunkedMarkdown:
		return Result{
			Shape:   ShapeChunkedMarkdown,
			Content: raw,
			Chunks:  SplitChunks(raw),
		}, nil
	case ShapeStructuredLesson:
		return normalizeLesson(raw)
	default:
		return normalizePlainText(raw)
	}
}

// SplitChunks partitions markdown on literal "---" separators, dropping
// blank segments and preserving first-occurrence order.
func SplitChunks(text string) []string {
	parts := strings.Split(text, "---")
	chunks := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		chunks = append(chunks, strings.TrimSpace(part))
	}
	return chunks
}

type levelOutput struct {
	Summary   string `json:"summary"`
	Rephrased string `json:"rephrased"`
}

// normalizePlainText trims the output and, when the model followed the
// reading-level instructions and returned {"summary","rephrased"} JSON,
// unpacks it. Anything else non-empty passes through as-is.
func normalizePlainText(raw string) (Result, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Result{}, &NormalizationError{Reason: "empty model output", Raw: raw}
	}

	cleaned := stripCodeFences(trimmed)
	var parsed levelOutput
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil && parsed.Rephrased != "" {
		return Result{
			Shape:   ShapePlainText,
			Text:    parsed.Rephrased,
			Summary: parsed.Summary,
		}, nil
	}

	return Result{Shape: ShapePlainText, Text: trimmed}, nil
}

// normalizeLesson parses a structured lesson: strict parse first, then a
// single salvage pass (fence strip, then the last balanced top-level object
// embedded in the text). No further repair is attempted.
func normalizeLesson(raw string) (Result, error) {
	candidate := strings.TrimSpace(raw)
	if !json.Valid([]byte(candidate)) {
		candidate = stripCodeFences(candidate)
	}
	if !json.Valid([]byte(candidate)) {
		candidate = lastJSONObject(candidate)
	}
	if candidate == "" || !json.Valid([]byte(candidate)) {
		return Result{}, &SchemaError{Reason: "model did not return valid JSON", Raw: raw}
	}

	if err := validateLesson(candidate); err != nil {
		return Result{}, err
	}

	var lesson Lesson
	if err := json.Unmarshal([]byte(candidate), &lesson); err != nil {
		return Result{}, &SchemaError{Reason: "lesson decode failed: " + err.Error(), Raw: raw}
	}
	return Result{Shape: ShapeStructuredLesson, Lesson: &lesson}, nil
}

// stripCodeFences removes a surrounding ```json / ``` fence if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if nl := strings.Index(s, "\n"); nl != -1 {
			s = s[nl+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// lastJSONObject returns the last brace-balanced {...} span in s, or "".
// Balancing does not account for braces inside string literals; callers
// re-check the span with json.Valid, so a bad span just fails the salvage.
func lastJSONObject(s string) string {
	end := strings.LastIndexByte(s, '}')
	if end == -1 {
		return ""
	}
	depth := 0
	for i := end; i >= 0; i-- {
		switch s[i] {
		case '}':
			depth++
		case '{':
			depth--
			if depth == 0 {
				return s[i : end+1]
			}
		}
	}
	return ""
}
