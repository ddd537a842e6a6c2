package reporting_test

import (
	"fmt"
	"os"

	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/jihwankim/rubbertree/pkg/reporting"
)

// Example demonstrates the reporting package usage.
func Example() {
	logger := reporting.NewLogger(reporting.LoggerConfig{
		Level:  reporting.LogLevelInfo,
		Format: reporting.LogFormatText,
		Output: os.Stdout,
	})

	logger.Info("plan starting", "dimensions", 2)

	storage, err := reporting.NewStorage("./plan-reports", 10, logger)
	if err != nil {
		fmt.Printf("failed to create storage: %v\n", err)
		return
	}
	defer os.RemoveAll("./plan-reports")

	report := reporting.NewPlanReport(reporting.PopulationSummary{
		Dimensions:    []string{"az"},
		CellCount:     1,
		EndpointCount: 8,
	})
	report.Complete([]route53types.ResourceRecordSet{
		{Name: strPtr("www.example.com")},
	})

	path, err := storage.SaveReport(report)
	if err != nil {
		fmt.Printf("failed to save report: %v\n", err)
		return
	}

	fmt.Println("report saved successfully")

	summaries, err := storage.ListReports()
	if err != nil {
		fmt.Printf("failed to list reports: %v\n", err)
		return
	}
	fmt.Printf("found %d report(s)\n", len(summaries))

	loaded, err := storage.LoadReport(path)
	if err != nil {
		fmt.Printf("failed to load report: %v\n", err)
		return
	}
	fmt.Printf("loaded report for run: %s\n", loaded.RunID)

	// Output will vary due to timestamps and generated run IDs, so we
	// don't check it.
}

func strPtr(s string) *string { return &s }
