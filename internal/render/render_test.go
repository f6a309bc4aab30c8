package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestResponsePrettyPrintsJSON(t *testing.T) {
	var out bytes.Buffer
	Response(&out, 200, []byte(`{"success":true,"event_id":7}`))

	got := out.String()
	if !strings.HasPrefix(got, "\nResponse:\n") {
		t.Errorf("missing response header: %q", got)
	}
	if !strings.Contains(got, "200") {
		t.Errorf("missing status: %q", got)
	}
	if !strings.Contains(got, "  \"success\": true") {
		t.Errorf("body not indented: %q", got)
	}
}

func TestResponseRawOnInvalidJSON(t *testing.T) {
	var out bytes.Buffer
	Response(&out, 500, []byte("internal error\n"))
	if !strings.Contains(out.String(), "internal error") {
		t.Errorf("raw body lost: %q", out.String())
	}
}

func TestResponseEmptyBody(t *testing.T) {
	var out bytes.Buffer
	Response(&out, 204, nil)
	if !strings.Contains(out.String(), "204") {
		t.Errorf("status missing: %q", out.String())
	}
}

func TestResponseNon2xxStillRendered(t *testing.T) {
	var out bytes.Buffer
	Response(&out, 409, []byte(`{"error":true,"message":"bid year already exists"}`))
	got := out.String()
	if !strings.Contains(got, "409") {
		t.Errorf("status missing: %q", got)
	}
	if !strings.Contains(got, "bid year already exists") {
		t.Errorf("error body missing: %q", got)
	}
}

func TestJSONEcho(t *testing.T) {
	var out bytes.Buffer
	JSON(&out, "Request JSON:", map[string]int{"year": 2025})

	got := out.String()
	if !strings.HasPrefix(got, "\nRequest JSON:\n") {
		t.Errorf("missing label: %q", got)
	}
	if !strings.Contains(got, "\"year\": 2025") {
		t.Errorf("value not rendered: %q", got)
	}
}

func TestJSONNoHTMLEscaping(t *testing.T) {
	var out bytes.Buffer
	JSON(&out, "Request JSON:", map[string]string{"cause_description": "R&D <review>"})
	if !strings.Contains(out.String(), "R&D <review>") {
		t.Errorf("HTML escaping leaked into operator output: %q", out.String())
	}
}
