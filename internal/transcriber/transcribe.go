package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lecture-flow/internal/errs"
	"github.com/nguyentantai21042004/lecture-flow/internal/models"
)

type response struct {
	Text string `json:"text"`
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Transcribe uploads one chunk and returns both the raw JSON body and its
// text field. Every failure matches errs.ErrTranscription.
func (c *implClient) Transcribe(ctx context.Context, chunk models.AudioChunk) (models.Transcript, error) {
	body, contentType, err := c.buildForm(chunk.Path)
	if err != nil {
		return models.Transcript{}, fmt.Errorf("%w: %w", errs.ErrTranscription, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return models.Transcript{}, fmt.Errorf("%w: create request: %w", errs.ErrTranscription, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug(ctx, "Uploading segment %d: %s", chunk.Index, chunk.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Transcript{}, fmt.Errorf("%w: %w", errs.ErrTranscription, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Transcript{}, fmt.Errorf("%w: read body: %w", errs.ErrTranscription, err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Transcript{}, &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var r response
	if err := json.Unmarshal(raw, &r); err != nil {
		return models.Transcript{}, fmt.Errorf("%w: decode response: %w", errs.ErrTranscription, err)
	}

	return models.Transcript{
		Index:     chunk.Index,
		ChunkPath: chunk.Path,
		Text:      r.Text,
		Raw:       json.RawMessage(raw),
	}, nil
}

func (c *implClient) buildForm(path string) (*bytes.Buffer, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open chunk: %w", err)
	}
	defer f.Close()

	b := &bytes.Buffer{}
	mp := multipart.NewWriter(b)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(filepath.Base(path))))
	h.Set("Content-Type", "audio/mpeg")

	fp, err := mp.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(fp, f); err != nil {
		return nil, "", fmt.Errorf("copy chunk: %w", err)
	}

	if err := mp.WriteField("model", c.model); err != nil {
		return nil, "", err
	}
	if err := mp.Close(); err != nil {
		return nil, "", err
	}

	return b, mp.FormDataContentType(), nil
}
