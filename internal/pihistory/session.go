package pihistory

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"time"
)

type sessionEnvelope struct {
	Type    string          `json:"type"`
	Message json.RawMessage `json:"message"`
}

type sessionMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SessionMeta holds the metadata extracted from a transcript file.
type SessionMeta struct {
	FirstMessage string
	MessageCount int
	ModifiedAt   time.Time
}

// ReadSessionMeta streams a Pi JSONL transcript and extracts the first user
// message text, the message count, and the file modification time. Malformed
// lines are skipped; read failures degrade to zero metadata. ModifiedAt is
// always populated, falling back to the current time when stat fails.
func ReadSessionMeta(filePath string) SessionMeta {
	var meta SessionMeta

	if f, err := os.Open(filePath); err == nil {
		reader := bufio.NewReader(f)
		for {
			line, err := reader.ReadBytes('\n')
			if err != nil && err != io.EOF {
				break
			}
			line = bytes.TrimSpace(line)
			if len(line) > 0 {
				parseMetaLine(line, &meta)
			}
			if err == io.EOF {
				break
			}
		}
		_ = f.Close()
	}

	if st, err := os.Stat(filePath); err == nil {
		meta.ModifiedAt = st.ModTime().UTC()
	} else {
		meta.ModifiedAt = time.Now().UTC()
	}
	return meta
}

func parseMetaLine(line []byte, meta *SessionMeta) {
	var env sessionEnvelope
	if err := json.Unmarshal(line, &env); err != nil {
		return
	}
	if env.Type != "message" {
		return
	}
	meta.MessageCount++
	if meta.FirstMessage != "" || len(env.Message) == 0 {
		return
	}
	var msg sessionMessage
	if err := json.Unmarshal(env.Message, &msg); err != nil {
		return
	}
	if msg.Role != "user" {
		return
	}
	meta.FirstMessage = firstTextBlock(msg.Content)
}

func firstTextBlock(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var blocks []contentBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return ""
	}
	for _, block := range blocks {
		if block.Type == "text" {
			return block.Text
		}
	}
	return ""
}

// Enrich fills each session in place with metadata parsed from its
// transcript file.
func Enrich(sessions []Session) {
	for i := range sessions {
		meta := ReadSessionMeta(sessions[i].FilePath)
		sessions[i].FirstMessage = meta.FirstMessage
		sessions[i].MessageCount = meta.MessageCount
		sessions[i].ModifiedAt = meta.ModifiedAt
	}
}
