package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
}

// sendLog ships the entry to the remote log endpoint in the background.
// Failures are reported on stderr only; logging must never block or
// fail a request.
func sendLog(level, message string, attrs []slog.Attr) {
	go func() {
		remoteURI := os.Getenv("REMOTE_LOG_HTTP_URI")
		if remoteURI == "" {
			return
		}

		logEntry := buildLogEntry(level, message, attrs)

		jsonData, err := json.Marshal(logEntry)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal for remote log entry: %v\n", err)
			return
		}

		req, err := http.NewRequest(http.MethodPost, remoteURI, bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create request for remote log: %v\n", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to send to remote log: %v\n", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			fmt.Fprintf(os.Stderr, "Remote log returned error status: %d\n", resp.StatusCode)
		}
	}()
}

// buildLogEntry shapes the entry for a Loki-style push endpoint.
func buildLogEntry(level, message string, attrs []slog.Attr) map[string]interface{} {
	return map[string]interface{}{
		"streams": []map[string]interface{}{
			{
				"stream": map[string]string{
					"level": level,
					"job":   "warehouse-api",
				},
				"values": [][]string{
					{
						fmt.Sprintf("%d", time.Now().UnixNano()),
						buildLogLine(level, message, attrs),
					},
				},
			},
		},
	}
}

func buildLogLine(level, message string, attrs []slog.Attr) string {
	logData := map[string]interface{}{
		"level":   level,
		"message": message,
		"time":    time.Now().Format(time.RFC3339),
	}

	for _, attr := range attrs {
		logData[attr.Key] = attr.Value.Any()
	}

	jsonBytes, _ := json.Marshal(logData)
	return string(jsonBytes)
}
