package adapt

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const validLessonJSON = `{
  "Summary": ["Plants use sunlight.", "Leaves absorb light.", "Roots take in water.", "Sugar is made.", "Oxygen is released."],
  "Vocabulary": [
    {"term": "photosynthesis", "definition": "How plants make food.", "example": "A leaf makes sugar in the sun."},
    {"term": "chlorophyll", "definition": "The green part of a leaf.", "example": "Chlorophyll makes leaves green."},
    {"term": "oxygen", "definition": "A gas we breathe.", "example": "Plants give off oxygen."}
  ],
  "Questions": {
    "trueFalse": {"q": "Plants need sunlight to make food.", "answer": true, "explain": "Sunlight powers photosynthesis."},
    "mcq": {
      "q": "What do leaves absorb?",
      "options": ["Light", "Rocks", "Sand", "Metal"],
      "answer": "Light",
      "explain": "Leaves absorb light to make food."
    },
    "shortAnswer": {
      "q": "Explain what roots do.",
      "idealAnswer": "Roots take in water from the soil.",
      "rubric": ["Mentions water", "Mentions soil"]
    }
  },
  "Draw-it": {
    "title": "A plant making food",
    "labels": ["Sun", "Leaf", "Roots"],
    "caption": "Draw arrows from the sun to the leaf."
  },
  "Review Plan": [
    {"when": "Tomorrow", "minutes": 10, "plan": ["Reread the summary", "Say the three words out loud"]},
    {"when": "In 3 days", "minutes": 10, "plan": ["Answer the quiz again"]}
  ]
}`

func TestSplitChunks_Order(t *testing.T) {
	text := "first section\n---\nsecond section\n---\nthird section"
	chunks := SplitChunks(text)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	want := []string{"first section", "second section", "third section"}
	for i, chunk := range chunks {
		if chunk != want[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, chunk, want[i])
		}
	}
}

func TestSplitChunks_DropsBlankSegments(t *testing.T) {
	chunks := SplitChunks("a---   ---\n\n---b")
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2: %v", len(chunks), chunks)
	}
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			t.Errorf("blank chunk survived: %q", chunk)
		}
	}
}

func TestSplitChunks_Idempotent(t *testing.T) {
	first := SplitChunks("one --- two --- three")
	second := SplitChunks(strings.Join(first, "\n---\n"))
	if len(first) != len(second) {
		t.Fatalf("re-split changed chunk count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk[%d] changed on re-split: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestSplitChunks_NoSeparator(t *testing.T) {
	chunks := SplitChunks("just one block of text")
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
}

func TestSplitChunks_Degenerate(t *testing.T) {
	// Zero chunks is a valid result; callers must handle it.
	if chunks := SplitChunks("   \n \t "); len(chunks) != 0 {
		t.Fatalf("got %d chunks, want 0", len(chunks))
	}
}

func TestNormalize_PlainText_Trims(t *testing.T) {
	res, err := Normalize("  simple text \n", ShapePlainText)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if res.Text != "simple text" {
		t.Errorf("text = %q, want %q", res.Text, "simple text")
	}
}

func TestNormalize_PlainText_Empty(t *testing.T) {
	_, err := Normalize("   ", ShapePlainText)
	var normErr *NormalizationError
	if !errors.As(err, &normErr) {
		t.Fatalf("error = %v, want NormalizationError", err)
	}
}

func TestNormalize_PlainText_LevelJSON(t *testing.T) {
	raw := `{"summary": "Short version.", "rephrased": "This is the simple text."}`
	res, err := Normalize(raw, ShapePlainText)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if res.Text != "This is the simple text." {
		t.Errorf("text = %q", res.Text)
	}
	if res.Summary != "Short version." {
		t.Errorf("summary = %q", res.Summary)
	}
}

func TestNormalize_PlainText_FencedLevelJSON(t *testing.T) {
	raw := "```json\n{\"summary\": \"S.\", \"rephrased\": \"R.\"}\n```"
	res, err := Normalize(raw, ShapePlainText)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if res.Text != "R." || res.Summary != "S." {
		t.Errorf("got text=%q summary=%q", res.Text, res.Summary)
	}
}

func TestNormalize_Chunked(t *testing.T) {
	raw := "⚡ Quick Summary\n- point\n---\nMicro-Lesson 1\n---\n🎮 Quick Quiz"
	res, err := Normalize(raw, ShapeChunkedMarkdown)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if res.Content != raw {
		t.Errorf("content was altered")
	}
	if len(res.Chunks) != 3 {
		t.Errorf("got %d chunks, want 3", len(res.Chunks))
	}
}

func TestNormalize_Lesson_Strict(t *testing.T) {
	res, err := Normalize(validLessonJSON, ShapeStructuredLesson)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	lesson := res.Lesson
	if lesson == nil {
		t.Fatal("lesson is nil")
	}
	if len(lesson.Vocabulary) != 3 {
		t.Errorf("vocabulary has %d entries, want 3", len(lesson.Vocabulary))
	}
	if len(lesson.Questions.MCQ.Options) != 4 {
		t.Errorf("mcq has %d options, want 4", len(lesson.Questions.MCQ.Options))
	}
	if len(lesson.ReviewPlan) != 2 {
		t.Errorf("review plan has %d entries, want 2", len(lesson.ReviewPlan))
	}
}

func TestNormalize_Lesson_WrappedInProse(t *testing.T) {
	raw := "Here is the lesson you asked for:\n\n" + validLessonJSON + "\n\nLet me know if you need more."
	res, err := Normalize(raw, ShapeStructuredLesson)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if res.Lesson == nil || len(res.Lesson.Summary) == 0 {
		t.Fatal("embedded lesson not recovered")
	}
}

func TestNormalize_Lesson_Fenced(t *testing.T) {
	raw := "```json\n" + validLessonJSON + "\n```"
	res, err := Normalize(raw, ShapeStructuredLesson)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if res.Lesson == nil {
		t.Fatal("fenced lesson not recovered")
	}
}

func TestNormalize_Lesson_MissingKey(t *testing.T) {
	for _, key := range []string{"Summary", "Vocabulary", "Questions", "Draw-it", "Review Plan"} {
		var m map[string]json.RawMessage
		if err := json.Unmarshal([]byte(validLessonJSON), &m); err != nil {
			t.Fatal(err)
		}
		delete(m, key)
		broken, _ := json.Marshal(m)

		_, err := Normalize(string(broken), ShapeStructuredLesson)
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Errorf("missing %q: error = %v, want SchemaError", key, err)
			continue
		}
		if schemaErr.Raw == "" {
			t.Errorf("missing %q: SchemaError has no raw text attached", key)
		}
	}
}

func TestNormalize_Lesson_WrongCounts(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"short vocabulary", "Vocabulary", `[{"term": "a", "definition": "b", "example": "c"}]`},
		{"one summary bullet", "Summary", `["only one bullet"]`},
		{"too many summary bullets", "Summary", `["a", "b", "c", "d", "e", "f", "g", "h"]`},
		{"three mcq options", "Questions", `{
			"trueFalse": {"q": "q", "answer": true, "explain": "x"},
			"mcq": {"q": "q", "options": ["a", "b", "c"], "answer": "a", "explain": "x"},
			"shortAnswer": {"q": "q", "idealAnswer": "a", "rubric": ["r"]}
		}`},
	}
	for _, tc := range cases {
		var m map[string]json.RawMessage
		if err := json.Unmarshal([]byte(validLessonJSON), &m); err != nil {
			t.Fatal(err)
		}
		m[tc.key] = json.RawMessage(tc.value)
		broken, _ := json.Marshal(m)

		_, err := Normalize(string(broken), ShapeStructuredLesson)
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Errorf("%s: error = %v, want SchemaError", tc.name, err)
		}
	}
}

func TestNormalize_Lesson_NotJSON(t *testing.T) {
	_, err := Normalize("I could not produce a lesson, sorry.", ShapeStructuredLesson)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error = %v, want SchemaError", err)
	}
	if !strings.Contains(schemaErr.Raw, "sorry") {
		t.Errorf("raw text not preserved for diagnostics")
	}
}

func TestLastJSONObject_TakesLast(t *testing.T) {
	s := `first {"a": 1} then {"b": {"c": 2}} trailing`
	got := lastJSONObject(s)
	if got != `{"b": {"c": 2}}` {
		t.Errorf("lastJSONObject = %q", got)
	}
}
