package reporting

import (
	"io"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Printer renders a plan's emitted record list for human consumption:
// a single table, one row per record, used for "--format text" output.
type Printer struct{}

// NewPrinter returns a ready-to-use Printer.
func NewPrinter() *Printer {
	return &Printer{}
}

// Print renders records as a table to w: name, type, weight,
// set-identifier, and a one-line summary of the entry's target (either
// its record values or its alias target).
func (p *Printer) Print(w io.Writer, records []route53types.ResourceRecordSet) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Name", "Type", "Weight", "Set Identifier", "Target"})

	for i, r := range records {
		t.AppendRow(table.Row{
			i + 1,
			aws.ToString(r.Name),
			string(r.Type),
			weightOf(r),
			aws.ToString(r.SetIdentifier),
			targetOf(r),
		})
	}

	t.Render()
}

func weightOf(r route53types.ResourceRecordSet) string {
	if r.Weight == nil {
		return ""
	}
	return strconv.FormatInt(*r.Weight, 10)
}

func targetOf(r route53types.ResourceRecordSet) string {
	if r.AliasTarget != nil {
		return "alias -> " + aws.ToString(r.AliasTarget.DNSName)
	}
	values := make([]string, len(r.ResourceRecords))
	for i, rr := range r.ResourceRecords {
		values[i] = aws.ToString(rr.Value)
	}
	return strings.Join(values, ", ")
}
