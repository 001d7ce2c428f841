package main

import (
	"context"
	"fmt"
	"os"

	"github.com/propeq/equity-dashboard/internal/service"
	"github.com/propeq/equity-dashboard/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <config-file>")
		return
	}
	s, err := store.LoadFileStore(os.Args[1])
	if err != nil {
		panic(err)
	}
	report, err := service.NewDashboardService(s, nil, nil).Dashboard(context.Background(), service.DashboardOptions{})
	if err != nil {
		panic(err)
	}
	if len(report.Scenarios) < 1 {
		fmt.Println("no scenarios")
		return
	}

	// Header
	header := "Month,Label"
	for _, sc := range report.Scenarios {
		header += fmt.Sprintf(",%s_AdjustedNet,%s_Cumulative", sc.Scenario.Name, sc.Scenario.Name)
	}
	fmt.Println(header)

	// Iterate months and print components
	for idx := range report.Scenarios[0].Monthly {
		row := fmt.Sprintf("%d,%s", idx, report.Scenarios[0].Monthly[idx].Label)
		for _, sc := range report.Scenarios {
			p := sc.Monthly[idx]
			row += fmt.Sprintf(",%.0f,%.0f", p.AdjustedNet, p.Cumulative)
		}
		fmt.Println(row)
	}

	fmt.Println()
	for _, sc := range report.Scenarios {
		fmt.Printf("%s BreakEven: %+v\n", sc.Scenario.Name, sc.BreakEven)
	}
}
