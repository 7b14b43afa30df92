package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/notesummarizer/internal/client/models"
	"github.com/dmitrijs2005/notesummarizer/internal/common"
	"github.com/dmitrijs2005/notesummarizer/internal/logging"
)

const maxResponseBytes = 4 << 20

// HTTPClient implements Service over plain HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. "http://localhost:3001/api"). timeout bounds each request; zero
// means no client-side limit beyond the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Summarize posts the notes as multipart/form-data to /summarize.
func (c *HTTPClient) Summarize(ctx context.Context, req models.SummaryRequest) (*models.SummaryResponse, error) {
	body, contentType, err := encodeSummaryForm(req)
	if err != nil {
		return nil, fmt.Errorf("encode summary form: %w", err)
	}

	var out models.SummaryResponse
	if err := c.post(ctx, "/summarize", contentType, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendEmail posts the draft as JSON to /email.
func (c *HTTPClient) SendEmail(ctx context.Context, req models.EmailRequest) (*models.EmailResponse, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode email request: %w", err)
	}

	var out models.EmailResponse
	if err := c.post(ctx, "/email", "application/json", bytes.NewReader(b), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) post(ctx context.Context, path, contentType string, body io.Reader, out any) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "url", url, "error", err)
		return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "response received", "url", url, "status", resp.StatusCode, "elapsed", time.Since(started))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er models.ErrorResponse
		_ = json.Unmarshal(data, &er)
		return &StatusError{Status: resp.StatusCode, Message: er.Error}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// encodeSummaryForm builds the multipart body: a "file" part or a "text"
// field, plus "prompt" when it is not blank.
func encodeSummaryForm(req models.SummaryRequest) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if req.File != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
			"name":     "file",
			"filename": req.File.Name,
		}))
		h.Set("Content-Type", fileContentType(req.File.Name))

		part, err := mw.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(req.File.Data); err != nil {
			return nil, "", err
		}
	} else if err := mw.WriteField("text", req.Text); err != nil {
		return nil, "", err
	}

	if prompt := strings.TrimSpace(req.Prompt); prompt != "" {
		if err := mw.WriteField("prompt", prompt); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

func fileContentType(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
