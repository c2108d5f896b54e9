package logger

import (
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestFormatRequest(t *testing.T) {
	param := gin.LogFormatterParams{
		TimeStamp:  time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
		StatusCode: 404,
		Latency:    12 * time.Millisecond,
		ClientIP:   "10.0.0.7",
		Method:     "GET",
		Path:       "/api/v1/cours/abc",
	}

	line := formatRequest(param)

	for _, fragment := range []string{"[HTTP]", "404", "GET", "/api/v1/cours/abc", "10.0.0.7"} {
		if !strings.Contains(line, fragment) {
			t.Errorf("la ligne de log devrait contenir %q: %s", fragment, line)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("la ligne de log doit se terminer par un saut de ligne")
	}
}

func TestErrorSuffix(t *testing.T) {
	if got := errorSuffix(""); got != "" {
		t.Errorf("errorSuffix(\"\") = %q, attendu chaîne vide", got)
	}
	if got := errorSuffix("timeout"); got != " | timeout" {
		t.Errorf("errorSuffix(\"timeout\") = %q", got)
	}
}
