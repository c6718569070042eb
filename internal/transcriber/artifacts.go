package transcriber

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lecture-flow/internal/models"
)

// SaveArtifacts writes <chunk>_transcription.txt and <chunk>_transcription.json
// into dir and returns the text file path.
func (c *implClient) SaveArtifacts(t models.Transcript, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create transcription dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(t.ChunkPath), filepath.Ext(t.ChunkPath))
	if base == "" || base == "." {
		base = fmt.Sprintf("segment_%d", t.Index)
	}
	txtPath := filepath.Join(dir, base+"_transcription.txt")
	jsonPath := filepath.Join(dir, base+"_transcription.json")

	raw := []byte(t.Raw)
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err == nil {
		raw = pretty.Bytes()
	}
	if err := os.WriteFile(jsonPath, raw, 0644); err != nil {
		return "", fmt.Errorf("write json: %w", err)
	}

	if err := os.WriteFile(txtPath, []byte(t.Text), 0644); err != nil {
		return "", fmt.Errorf("write text: %w", err)
	}

	return txtPath, nil
}
