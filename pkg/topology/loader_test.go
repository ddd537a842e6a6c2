package topology_test

import (
	"strings"
	"testing"

	"github.com/jihwankim/rubbertree/pkg/topology"
)

const validDoc = `
dimensions: [az, version]
cells:
  - coord: [us-east-1a, "1"]
    endpoints:
      - value: 10.0.1.5
        health_check_ids: [hc-abc]
      - value: 10.0.1.6
        health_check_ids: [hc-def]
  - coord: [us-east-1b, "1"]
    endpoints:
      - value: 10.0.2.5
plan:
  zone_id: Z123EXAMPLE
  name: www.example.com
  type: A
  ttl: 60
  records_per_entry: 8
`

func TestLoaderLoadValidDocument(t *testing.T) {
	l := topology.NewLoader()
	lat, plan, err := l.Load([]byte(validDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if plan.ZoneID != "Z123EXAMPLE" || plan.RecordsPerEntry != 8 {
		t.Fatalf("unexpected plan settings: %+v", plan)
	}
	if got := len(lat.GetAllEndpoints()); got != 3 {
		t.Fatalf("got %d endpoints, want 3", got)
	}
	if got := len(lat.GetAllCoordinates()); got != 2 {
		t.Fatalf("got %d coordinates, want 2", got)
	}
}

func TestLoaderRejectsArityMismatch(t *testing.T) {
	doc := `
dimensions: [az, version]
cells:
  - coord: [us-east-1a]
    endpoints:
      - value: 10.0.1.5
plan:
  zone_id: Z1
  name: www.example.com
  type: A
  records_per_entry: 4
`
	l := topology.NewLoader()
	_, _, err := l.Load([]byte(doc))
	if err == nil {
		t.Fatal("expected an error for arity mismatch")
	}
	if !strings.Contains(err.Error(), "arity") {
		t.Fatalf("expected an arity-related message, got: %v", err)
	}
}

func TestLoaderRejectsDuplicateValues(t *testing.T) {
	doc := `
dimensions: [root]
cells:
  - coord: [only]
    endpoints:
      - value: 10.0.0.1
      - value: 10.0.0.1
plan:
  zone_id: Z1
  name: www.example.com
  type: A
  records_per_entry: 4
`
	l := topology.NewLoader()
	_, _, err := l.Load([]byte(doc))
	if err == nil {
		t.Fatal("expected an error for duplicate endpoint values")
	}
	if !strings.Contains(err.Error(), "duplicated") {
		t.Fatalf("expected a duplication message, got: %v", err)
	}
}

func TestLoaderRejectsOutOfRangeRecordsPerEntry(t *testing.T) {
	doc := `
dimensions: [root]
cells:
  - coord: [only]
    endpoints:
      - value: 10.0.0.1
plan:
  zone_id: Z1
  name: www.example.com
  type: A
  records_per_entry: 9
`
	l := topology.NewLoader()
	_, _, err := l.Load([]byte(doc))
	if err == nil {
		t.Fatal("expected an error for records_per_entry out of [1,8]")
	}
}
