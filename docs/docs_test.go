package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestDocumentedFailures(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]struct {
			Responses map[string]json.RawMessage `json:"responses"`
		} `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid json: %v", err)
	}

	cases := []struct {
		path, method string
		statuses     []string
	}{
		{"/payments", "post", []string{"201", "400", "401", "404", "409", "500"}},
		{"/payments/record/{record_number}", "get", []string{"200", "404"}},
		{"/service-records/{record_number}", "delete", []string{"200", "404", "409"}},
		{"/reports/daily", "get", []string{"200", "400"}},
	}
	for _, tc := range cases {
		op, ok := doc.Paths[tc.path][tc.method]
		if !ok {
			t.Fatalf("missing %s %s", tc.method, tc.path)
		}
		for _, s := range tc.statuses {
			if _, ok := op.Responses[s]; !ok {
				t.Fatalf("%s %s does not document %s", tc.method, tc.path, s)
			}
		}
	}
}
