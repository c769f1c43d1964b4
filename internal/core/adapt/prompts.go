package adapt

import (
	"fmt"
	"strings"
)

// Instruction templates are static assets; the external model is instructed,
// but not provably forced, to obey them. The normalizer copes with drift.

const adhdPrompt = `Transform this PDF into ADHD-friendly format:

# RULES:
- Start with "⚡ Quick Summary" (3-5 bullets, ONE sentence each)
- Break into "Micro-Lessons" (100-150 words each, numbered)
- Use emojis as visual anchors (🎯 📚 ✅ 💡 🔥)
- Add "---" separator between sections
- End each section with "✅ Checkpoint: [quick question]"
- Include "🎮 Quick Quiz" at end (5 questions)
- Short sentences (15 words max)
- Lots of whitespace

Return as clean markdown. Make it engaging and bite-sized!`

const dyslexicPrompt = `Transform this PDF for dyslexic readers:

# RULES:
- 8th grade reading level maximum
- Sentences under 15 words
- Simple, common words only
- No similar-looking words in multiple choice
- Define technical terms immediately
- Use bullet points, not paragraphs
- Add extra blank lines between sections

Return as clean markdown.`

const deafPrompt = `Transform this PDF for deaf/HoH learners:

# RULES:
- Use visual descriptions only
- Never use: "sounds like", "listen", "hear"
- Replace audio metaphors with visual ones
- Use spatial language (above, below, left, right)
- Add [Visual: description] tags
- Describe processes visually

Return as clean markdown.`

const lessonPromptTemplate = `You are a patient tutor supporting an autistic learner.

LEARNING APPROACH:
- Use clear structure and short sentences
- Avoid idioms unless explained
- Keep working-memory load low
- Prefer concrete examples and step-by-step guidance

TASK:
From the attached PDF, focus on %s only (≈1–2 paragraphs / one main topic).

OUTPUT FORMAT (STRICT):
Return ONLY a single JSON object (no markdown, no commentary) where each key is the section heading and the value is the generated content.

JSON SCHEMA (keys must match exactly):
{
  "Summary": string[],                       // 5–7 bullets, each ≤ 15 words
  "Vocabulary": [
    { "term": string, "definition": string, "example": string }
  ],                                         // exactly 3 items
  "Questions": {
    "trueFalse": {
      "q": string,
      "answer": boolean,
      "explain": string
    },
    "mcq": {
      "q": string,
      "options": [string, string, string, string],
      "answer": string,                      // the correct option TEXT, not a letter
      "explain": string
    },
    "shortAnswer": {
      "q": string,
      "idealAnswer": string,
      "rubric": string[]                     // 2–4 short checklist points
    }
  },
  "Draw-it": {                               // simple diagram description
    "title": string,
    "labels": [string, string, string],
    "caption": string
  },
  "Review Plan": [
    { "when": "Tomorrow", "minutes": 10, "plan": string[] },
    { "when": "In 3 days", "minutes": 10, "plan": string[] }
  ]
}

CONSTRAINTS:
- Keep language simple and concrete.
- Do not use any keys not listed above.
- Do not include markdown.
- Return ONLY JSON that parses with JSON.parse.
The learner is %d years old and prefers clear steps and concrete examples.`

var levelPrompts = map[string]string{
	LevelMild: `You are helping someone with MILD dyslexia. They can read well but need slight adjustments.

SUMMARY (3-4 sentences):
- Keep key information
- Use clear language
- Make it concise

REPHRASE THE FULL TEXT with these rules:
- Break sentences over 25 words into 2 sentences
- Replace ONLY the most complex words (like "utilize" → "use", "facilitate" → "help")
- Keep most of the original vocabulary and tone
- Keep paragraph structure
- DO NOT oversimplify - maintain professional/academic tone if present

Return valid JSON:
{
  "summary": "3-4 sentence summary",
  "rephrased": "full rephrased text"
}`,

	LevelModerate: `You are helping someone with MODERATE dyslexia. They need significantly simplified text.

SUMMARY (3-5 sentences):
- Only main ideas
- Very simple words
- Short sentences (under 15 words each)

REPHRASE THE FULL TEXT with these STRICT rules:
- Every sentence MUST be under 15 words
- Replace ALL complex words with simple alternatives
- Use ONLY common, everyday vocabulary (middle school level)
- Break into small paragraphs (3-4 sentences max)
- Use active voice ONLY
- One main idea per sentence
- Add blank lines between paragraphs

Return valid JSON:
{
  "summary": "3-5 simple sentences",
  "rephrased": "full rephrased text with short sentences"
}`,

	LevelSevere: `You are helping someone with SEVERE dyslexia. They need EXTREMELY simple text.

SUMMARY (3 sentences MAXIMUM):
- Only the MOST important point
- Simplest possible words
- Very short sentences (under 10 words)

REPHRASE THE FULL TEXT with these MANDATORY rules:
- Every sentence MUST be 10 words or less
- Use ONLY basic everyday words (elementary school level)
- One simple idea per sentence
- Each sentence on a new line
- Active voice ONLY
- Remove ALL unnecessary information
- Focus on main actions and facts only
- NO complex concepts - break them down

Return valid JSON:
{
  "summary": "3 very simple sentences (under 10 words each)",
  "rephrased": "full text with each sentence under 10 words"
}`,
}

// Prompt assembles the full instruction payload for a request. For binary
// documents the source travels as a separate content block, so only the
// template (plus auxiliary parameters) is rendered here; for raw-text
// requests the source text is appended to the instructions.
func (p Profile) Prompt(req Request) string {
	switch p.ID {
	case ModeADHD:
		return withSource(adhdPrompt, req)
	case ModeDyslexic:
		return withSource(dyslexicPrompt, req)
	case ModeDeaf:
		return withSource(deafPrompt, req)
	case ModeAutism:
		return lessonPrompt(req.Age, req.SectionIndex)
	case LevelMild, LevelModerate, LevelSevere:
		return levelPrompt(p.ID, req.Text)
	}
	return withSource(adhdPrompt, req)
}

func withSource(template string, req Request) string {
	if len(req.Document) > 0 || req.Text == "" {
		return template
	}
	return fmt.Sprintf("%s\n\nHere is the text to transform:\n\n%s", template, req.Text)
}

func lessonPrompt(age, sectionIndex int) string {
	focus := "the FIRST logical section"
	if sectionIndex > 0 {
		focus = fmt.Sprintf("the NEXT logical section (section %d)", sectionIndex+1)
	}
	if age <= 0 {
		age = 12
	}
	return fmt.Sprintf(lessonPromptTemplate, focus, age)
}

func levelPrompt(level, inputText string) string {
	instructions, ok := levelPrompts[level]
	if !ok {
		instructions = levelPrompts[LevelModerate]
	}
	emphasis := map[string]string{
		LevelMild:     "Make MINIMAL changes - just break long sentences and replace a few complex words",
		LevelModerate: "Make SIGNIFICANT changes - all sentences must be under 15 words with simple vocabulary",
		LevelSevere:   "Make DRASTIC changes - every sentence must be 10 words or less with elementary vocabulary",
	}[level]
	return fmt.Sprintf(`%s

Here is the text to process:

%s

CRITICAL INSTRUCTIONS:
- Follow the %s level rules EXACTLY
- %s
- Return ONLY valid JSON with "summary" and "rephrased" fields
- NO markdown, NO extra text`, instructions, inputText, strings.ToUpper(level), emphasis)
}
