package adapt

// OutputShape identifies which of the three result forms a mode produces.
type OutputShape string

const (
	ShapePlainText        OutputShape = "plain_text"
	ShapeChunkedMarkdown  OutputShape = "chunked_markdown"
	ShapeStructuredLesson OutputShape = "structured_lesson"
)

// Request is one adaptation job: a source document (binary PDF) or raw text,
// the mode selecting the instruction template, and auxiliary parameters.
type Request struct {
	Document     []byte
	Text         string
	Mode         string
	Age          int
	SectionIndex int
}

// Result is the normalized model output, tagged by shape. Exactly one of the
// payload groups is populated.
type Result struct {
	Shape OutputShape

	// ShapePlainText
	Text    string
	Summary string

	// ShapeChunkedMarkdown
	Content string
	Chunks  []string

	// ShapeStructuredLesson
	Lesson *Lesson
}

// Lesson is the fixed-schema object produced for structured lessons. Keys
// mirror the headings shown to the learner, so they stay capitalized on the
// wire.
type Lesson struct {
	Summary    []string     `json:"Summary"`
	Vocabulary []VocabItem  `json:"Vocabulary"`
	Questions  Questions    `json:"Questions"`
	DrawIt     DrawIt       `json:"Draw-it"`
	ReviewPlan []ReviewItem `json:"Review Plan"`
}

type VocabItem struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

type Questions struct {
	TrueFalse   TrueFalseQuestion   `json:"trueFalse"`
	MCQ         MCQQuestion         `json:"mcq"`
	ShortAnswer ShortAnswerQuestion `json:"shortAnswer"`
}

type TrueFalseQuestion struct {
	Q       string `json:"q"`
	Answer  bool   `json:"answer"`
	Explain string `json:"explain"`
}

type MCQQuestion struct {
	Q       string   `json:"q"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
	Explain string   `json:"explain"`
}

type ShortAnswerQuestion struct {
	Q           string   `json:"q"`
	IdealAnswer string   `json:"idealAnswer"`
	Rubric      []string `json:"rubric"`
}

type DrawIt struct {
	Title   string   `json:"title"`
	Labels  []string `json:"labels"`
	Caption string   `json:"caption"`
}

type ReviewItem struct {
	When    string   `json:"when"`
	Minutes int      `json:"minutes"`
	Plan    []string `json:"plan"`
}
