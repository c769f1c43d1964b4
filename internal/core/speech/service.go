package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"ai-adapt-reader/config"
	"ai-adapt-reader/pkg/logger"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ValidVoices is the fixed voice set the provider supports.
var ValidVoices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}

// ValidModels are the supported synthesis models (standard and HD).
var ValidModels = []string{"tts-1", "tts-1-hd"}

var (
	ErrTextRequired       = errors.New("text is required")
	ErrEmptyAfterCleaning = errors.New("text is empty after cleaning special characters")
)

// InvalidVoiceError rejects a voice outside the fixed set.
type InvalidVoiceError struct {
	Voice string
}

func (e *InvalidVoiceError) Error() string {
	return fmt.Sprintf("invalid voice %q, must be one of: %s", e.Voice, strings.Join(ValidVoices, ", "))
}

// SynthesisError is a failure from the speech provider.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string { return "speech synthesis failed: " + e.Err.Error() }
func (e *SynthesisError) Unwrap() error { return e.Err }

// Request is one synthesis job. Voice and Model fall back to config defaults.
type Request struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
	Model string `json:"model"`
}

// Response carries one full document's audio; there is no chunk streaming.
type Response struct {
	Audio string `json:"audio"`
	Voice string `json:"voice"`
	Model string `json:"model"`
}

// Service synthesizes speech through the OpenAI audio API.
type Service struct {
	client openai.Client
}

// NewService builds a service from the openai config section. Extra request
// options (e.g. a test base URL) are appended after the API key.
func NewService(opts ...option.RequestOption) *Service {
	options := append([]option.RequestOption{option.WithAPIKey(config.Cfg.OpenAI.Key)}, opts...)
	return &Service{client: openai.NewClient(options...)}
}

// Synthesize cleans the text and performs exactly one provider call,
// returning base64 mp3 audio.
func (s *Service) Synthesize(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.Text) == "" {
		return Response{}, ErrTextRequired
	}

	voice := req.Voice
	if voice == "" {
		voice = config.Cfg.OpenAI.Voice
	}
	if !contains(ValidVoices, voice) {
		return Response{}, &InvalidVoiceError{Voice: voice}
	}

	model := req.Model
	if model == "" {
		model = config.Cfg.OpenAI.TTSModel
	}
	if !contains(ValidModels, model) {
		model = ValidModels[0]
	}

	text := CleanText(req.Text)
	if text == "" {
		return Response{}, ErrEmptyAfterCleaning
	}

	logger.WithFields(map[string]interface{}{
		"voice":          voice,
		"model":          model,
		"raw_length":     len(req.Text),
		"cleaned_length": len(text),
	}).Infof("%v: synthesizing", config.ModuleSpeech)

	resp, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(model),
		Voice:          openai.AudioSpeechNewParamsVoice(voice),
		Input:          text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return Response{}, &SynthesisError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &SynthesisError{Err: err}
	}

	return Response{
		Audio: base64.StdEncoding.EncodeToString(audio),
		Voice: voice,
		Model: model,
	}, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
