package answer_test

import (
	"testing"

	"github.com/jihwankim/rubbertree/pkg/answer"
	"github.com/jihwankim/rubbertree/pkg/lattice"
)

func TestAnswerSetUniquenessAndOrdering(t *testing.T) {
	a := answer.New()
	a.Add(lattice.NewEndpoint("3.3.3.3"))
	a.Add(lattice.NewEndpoint("1.1.1.1"))
	a.Add(lattice.NewEndpoint("1.1.1.1")) // duplicate, no-op
	a.Add(lattice.NewEndpoint("2.2.2.2"))

	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (duplicate insertion must be a no-op)", a.Len())
	}

	records := a.ToRecords("Z1", "www.example.com", "A", 300)
	if len(records) != 1 {
		t.Fatalf("no health checks: expected single leaf record, got %d", len(records))
	}
	leaf := records[0]
	values := make([]string, len(leaf.ResourceRecords))
	for i, rr := range leaf.ResourceRecords {
		values[i] = *rr.Value
	}
	want := []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"}
	for i, v := range want {
		if values[i] != v {
			t.Errorf("leaf.ResourceRecords[%d] = %s, want %s (ascending)", i, values[i], v)
		}
	}
	if *leaf.SetIdentifier != answer.LeafSetIdentifier {
		t.Errorf("leaf.SetIdentifier = %s, want %s", *leaf.SetIdentifier, answer.LeafSetIdentifier)
	}
	if leaf.HealthCheckId != nil {
		t.Errorf("leaf with no health checks should have nil HealthCheckId, got %v", *leaf.HealthCheckId)
	}
}

func TestAnswerSetChainLength(t *testing.T) {
	cases := []struct {
		name           string
		endpoints      []lattice.Endpoint
		wantLen        int
		wantFinalName  string
	}{
		{
			name:          "no health checks",
			endpoints:     []lattice.Endpoint{lattice.NewEndpoint("1.1.1.1"), lattice.NewEndpoint("2.2.2.2")},
			wantLen:       1,
			wantFinalName: "www.example.com",
		},
		{
			name: "single shared health check id",
			endpoints: []lattice.Endpoint{
				lattice.WithHealthChecks("1.1.1.1", "hc1"),
				lattice.WithHealthChecks("2.2.2.2", "hc1"),
			},
			wantLen:       1,
			wantFinalName: "www.example.com",
		},
		{
			name: "three distinct health checks",
			endpoints: []lattice.Endpoint{
				lattice.WithHealthChecks("1.1.1.1", "hcid3"),
				lattice.WithHealthChecks("2.2.2.2", "hcid2"),
				lattice.WithHealthChecks("3.3.3.3", "hcid1"),
			},
			wantLen:       3,
			wantFinalName: "www.example.com",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := answer.New(tc.endpoints...)
			records := a.ToRecords("Z123", "www.example.com", "A", 60)
			if len(records) != tc.wantLen {
				t.Fatalf("got %d records, want %d", len(records), tc.wantLen)
			}
			last := records[len(records)-1]
			if *last.Name != tc.wantFinalName {
				t.Errorf("final entry name = %s, want %s", *last.Name, tc.wantFinalName)
			}
		})
	}
}

// TestAnswerSetAliasChainS4 is the concrete end-to-end scenario from
// the component's spec: three endpoints with distinct health checks
// produce a 3-entry alias chain.
func TestAnswerSetAliasChainS4(t *testing.T) {
	a := answer.New(
		lattice.WithHealthChecks("1.1.1.1", "hcid3"),
		lattice.WithHealthChecks("2.2.2.2", "hcid2"),
		lattice.WithHealthChecks("3.3.3.3", "hcid1"),
	)

	records := a.ToRecords("Z123", "www.example.com", "A", 60)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	leaf, alias1, alias2 := records[0], records[1], records[2]

	if leaf.HealthCheckId == nil || *leaf.HealthCheckId != "hcid1" {
		t.Errorf("leaf health check = %v, want hcid1", leaf.HealthCheckId)
	}
	values := []string{*leaf.ResourceRecords[0].Value, *leaf.ResourceRecords[1].Value, *leaf.ResourceRecords[2].Value}
	if values[0] != "1.1.1.1" || values[1] != "2.2.2.2" || values[2] != "3.3.3.3" {
		t.Errorf("leaf record values = %v, want sorted ascending", values)
	}

	if alias1.AliasTarget == nil || *alias1.AliasTarget.DNSName != *leaf.Name {
		t.Errorf("alias1 should target leaf's renamed name %q, got %v", *leaf.Name, alias1.AliasTarget)
	}
	if alias1.HealthCheckId == nil || *alias1.HealthCheckId != "hcid2" {
		t.Errorf("alias1 health check = %v, want hcid2", alias1.HealthCheckId)
	}

	if alias2.AliasTarget == nil || *alias2.AliasTarget.DNSName != *alias1.Name {
		t.Errorf("alias2 should target alias1's renamed name %q, got %v", *alias1.Name, alias2.AliasTarget)
	}
	if alias2.HealthCheckId == nil || *alias2.HealthCheckId != "hcid3" {
		t.Errorf("alias2 health check = %v, want hcid3", alias2.HealthCheckId)
	}
	if *alias2.Name != "www.example.com" {
		t.Errorf("final entry name = %s, want www.example.com", *alias2.Name)
	}
}
