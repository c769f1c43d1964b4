package extract

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"ai-adapt-reader/config"
	"ai-adapt-reader/internal/llm"
	"ai-adapt-reader/pkg/logger"

	"github.com/ledongthuc/pdf"
)

// Result is the extracted document text plus extraction metadata.
type Result struct {
	Text     string `json:"text"`
	Pages    int    `json:"pages"`
	Enhanced bool   `json:"enhanced"`
}

const enhancePrompt = `Extract and clean the text from this PDF document for someone with dyslexia.

Please:
1. Remove headers, footers, and page numbers
2. Keep only the main content
3. Preserve paragraph structure
4. Remove any OCR artifacts or garbled text
5. Ensure sentences are complete
6. Return ONLY the cleaned text, no JSON or formatting

Focus on making the text clear and readable.`

// Service extracts text from uploaded PDFs, locally via the embedded text
// layer, with optional model-assisted cleanup.
type Service struct {
	client llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Extract pulls the text layer out of the PDF. With useAI set, the raw
// document additionally goes through a model cleanup pass; provider failures
// fall back to the local cleaning, never to an error.
func (s *Service) Extract(ctx context.Context, data []byte, useAI bool) (Result, error) {
	text, pages, err := PDFText(data)
	if err != nil {
		return Result{}, err
	}

	if useAI && s.client != nil {
		cleaned, enhErr := s.client.Generate(ctx, llm.GenerateRequest{
			Prompt:    enhancePrompt,
			Document:  data,
			MediaType: "application/pdf",
		})
		if enhErr == nil && strings.TrimSpace(cleaned) != "" {
			return Result{Text: strings.TrimSpace(cleaned), Pages: pages, Enhanced: true}, nil
		}
		logger.Error(enhErr, "%v: model cleanup failed, using local extraction", config.ModuleParse)
	}

	return Result{Text: CleanForReading(text), Pages: pages}, nil
}

// PDFText extracts the embedded text layer page by page. Scanned
// (image-only) PDFs yield little or no text; OCR is out of scope.
func PDFText(data []byte) (string, int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}

	numPages := r.NumPage()
	fonts := make(map[string]*pdf.Font)
	var parts []string

	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := p.Font(name)
				fonts[name] = &f
			}
		}
		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			parts = append(parts, text)
		}
	}

	joined := strings.Join(parts, "\n\n")
	if strings.TrimSpace(joined) == "" {
		return "", numPages, fmt.Errorf("no extractable text in %d page(s)", numPages)
	}
	return joined, numPages, nil
}

var (
	pageNumberRe = regexp.MustCompile(`(?i)Page \d+`)
	bareNumberRe = regexp.MustCompile(`(?m)^\d+\s*$`)
	urlRe        = regexp.MustCompile(`https?://\S+`)
	multiBlankRe = regexp.MustCompile(`\n{3,}`)
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
)

// CleanForReading strips page numbers, URLs and layout noise that distract
// dyslexic readers, keeping paragraph breaks.
func CleanForReading(text string) string {
	text = pageNumberRe.ReplaceAllString(text, "")
	text = bareNumberRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = multiBlankRe.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, strings.TrimSpace(line))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
