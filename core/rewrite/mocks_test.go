package rewrite

import (
	"context"
	"io"
	"strings"
	"sync"

	"fale-proxy-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	mu      sync.Mutex
	calls   []string
	getFunc func(ctx context.Context, url string) (*mockResponse, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()

	if m.getFunc == nil {
		return &mockResponse{statusCode: 200}, nil
	}
	r, err := m.getFunc(ctx, url)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (m *mockHTTPClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
	closed     bool
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return &trackingBody{Reader: strings.NewReader(m.body), resp: m}
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

type trackingBody struct {
	io.Reader
	resp *mockResponse
}

func (b *trackingBody) Close() error {
	b.resp.closed = true
	return nil
}

// mockLogger records messages by level
type mockLogger struct {
	mu      sync.Mutex
	entries map[string][]string
}

func newMockLogger() *mockLogger {
	return &mockLogger{entries: make(map[string][]string)}
}

func (l *mockLogger) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[level] = append(l.entries[level], msg)
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) { l.log("debug", msg) }
func (l *mockLogger) Info(msg string, fields map[string]interface{})  { l.log("info", msg) }
func (l *mockLogger) Warn(msg string, fields map[string]interface{})  { l.log("warn", msg) }
func (l *mockLogger) Error(msg string, fields map[string]interface{}) { l.log("error", msg) }

const sampleHTMLWithYale = `<!DOCTYPE html>
<html>
<head>
  <title>Yale University Test Page</title>
  <meta charset="UTF-8">
</head>
<body>
  <div class="container">
    <h1>Welcome to Yale University</h1>
    <p>Yale University is a private Ivy League research university in New Haven, Connecticut.</p>
    <p>Founded in 1701, Yale is the third-oldest institution of higher education in the United States.</p>
    <div class="links">
      <a href="https://www.yale.edu/about">About Yale</a>
      <a href="https://www.yale.edu/admissions">Yale Admissions</a>
    </div>
    <p>Contact us at info@yale.edu for more information.</p>
  </div>
</body>
</html>`
