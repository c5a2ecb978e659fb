package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"sppd-activity/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	d := response.Date(time.Date(2024, 8, 5, 23, 30, 0, 0, loc))

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-08-05"` {
		t.Errorf("got %s, want \"2024-08-05\"", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	dt := response.DateTime(time.Date(2024, 8, 5, 9, 0, 0, 0, loc))

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-08-05 09:00:00"` {
		t.Errorf("got %s, want \"2024-08-05 09:00:00\"", b)
	}
}
