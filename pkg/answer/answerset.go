// Package answer implements the AnswerSet: an ordered, deduped
// collection of endpoints that lowers to one "leaf" DNS entry plus an
// alias chain expressing logical-AND of the members' health checks.
package answer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/jihwankim/rubbertree/pkg/lattice"
)

// LeafSetIdentifier is the set-identifier every leaf entry carries.
const LeafSetIdentifier = "leafnode"

// AnswerSet is an ordered, unique-by-value collection of endpoints.
// Insertion of a duplicate value is a no-op.
type AnswerSet struct {
	byValue map[string]struct{}
	members []lattice.Endpoint
}

// New builds an AnswerSet from the given endpoints, in insertion
// order, rejecting value duplicates.
func New(endpoints ...lattice.Endpoint) *AnswerSet {
	a := &AnswerSet{byValue: make(map[string]struct{}, len(endpoints))}
	for _, e := range endpoints {
		a.Add(e)
	}
	return a
}

// Add inserts e unless an endpoint with the same value is already
// present.
func (a *AnswerSet) Add(e lattice.Endpoint) {
	if _, dup := a.byValue[e.Value]; dup {
		return
	}
	a.byValue[e.Value] = struct{}{}
	a.members = append(a.members, e)
}

// Len returns the number of distinct members.
func (a *AnswerSet) Len() int {
	return len(a.members)
}

// Members returns the members in insertion order.
func (a *AnswerSet) Members() []lattice.Endpoint {
	return append([]lattice.Endpoint(nil), a.members...)
}

// healthCheckIDs returns H: the de-duplicated union of member health
// check ids, sorted ascending. The reference implementation this is
// ported from resolves H by alphabetical id order rather than by
// member-value order (see the leaf health-check quirk documented
// alongside this package); the worked S4 example is only reproducible
// under that reading, so this is not a shortcut, it's the contract.
func (a *AnswerSet) healthCheckIDs() []string {
	seen := make(map[string]struct{})
	var h []string
	for _, e := range a.members {
		for _, id := range e.HealthCheckIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			h = append(h, id)
		}
	}
	sort.Strings(h)
	return h
}

// ToRecords implements the full lowering: a leaf entry carrying the
// sorted record values, followed by an alias chain that expresses
// logical-AND of the members' distinct health checks. zoneID names the
// hosted zone used on every alias target produced by the chain.
func (a *AnswerSet) ToRecords(zoneID, name, recordType string, ttl int64) []route53types.ResourceRecordSet {
	h := a.healthCheckIDs()
	sorted := lattice.SortEndpoints(a.members)
	recordValues := make([]string, len(sorted))
	for i, e := range sorted {
		recordValues[i] = e.Value
	}

	leaf := route53types.ResourceRecordSet{
		Name:            aws.String(name),
		Type:            route53types.RRType(recordType),
		TTL:             aws.Int64(ttl),
		Weight:          aws.Int64(1),
		SetIdentifier:   aws.String(LeafSetIdentifier),
		ResourceRecords: toResourceRecords(recordValues),
	}
	if len(h) > 0 {
		// Documented quirk: the first id in alphabetical order lands on
		// the leaf, not necessarily the smallest-value member's own check.
		leaf.HealthCheckId = aws.String(h[0])
	}

	if len(h) <= 1 {
		return []route53types.ResourceRecordSet{leaf}
	}

	records := []route53types.ResourceRecordSet{leaf}
	entryIdx := 0

	for _, hcID := range h[1:] {
		entry := &records[entryIdx]
		c := checksum(checksumInput(*entry, recordValues, ttl))
		preRenameName := *entry.Name
		renamedName := c + "." + preRenameName

		alias := route53types.ResourceRecordSet{
			Name:          aws.String(preRenameName),
			Type:          entry.Type,
			Weight:        entry.Weight,
			SetIdentifier: aws.String("Alias to " + c),
			HealthCheckId: aws.String(hcID),
			AliasTarget: &route53types.AliasTarget{
				DNSName:              aws.String(renamedName),
				HostedZoneId:         aws.String(zoneID),
				EvaluateTargetHealth: true,
			},
		}

		entry.Name = aws.String(renamedName)
		records = append(records, alias)
		entryIdx = len(records) - 1
	}

	return records
}

func toResourceRecords(values []string) []route53types.ResourceRecord {
	out := make([]route53types.ResourceRecord, len(values))
	for i, v := range values {
		out[i] = route53types.ResourceRecord{Value: aws.String(v)}
	}
	return out
}

// checksumInput renders the data-bearing fields of r: for an alias
// entry, its target's zone/name/evaluate-health; for a plain entry,
// its record values and TTL.
func checksumInput(r route53types.ResourceRecordSet, recordValues []string, ttl int64) []byte {
	var sb strings.Builder
	sb.WriteString(string(r.Type))
	if r.AliasTarget != nil {
		sb.WriteString(aws.ToString(r.AliasTarget.HostedZoneId))
		sb.WriteString(aws.ToString(r.AliasTarget.DNSName))
		sb.WriteString(strconv.FormatBool(r.AliasTarget.EvaluateTargetHealth))
	} else {
		sb.WriteString(fmt.Sprint(recordValues))
		sb.WriteString(strconv.FormatInt(ttl, 10))
	}
	return []byte(sb.String())
}
