package llm

import "context"

// Mock is a test double for the generation provider.
type Mock struct {
	Response    string
	Err         error
	Calls       int
	LastRequest *GenerateRequest // captures the last request for inspection
}

// NewMock creates a Mock that returns the given response.
func NewMock(response string) *Mock {
	return &Mock{Response: response}
}

func (m *Mock) Generate(_ context.Context, req GenerateRequest) (string, error) {
	m.Calls++
	m.LastRequest = &req
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
