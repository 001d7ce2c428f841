package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/propeq/equity-dashboard/internal/calculation"
	"github.com/propeq/equity-dashboard/internal/config"
	"github.com/propeq/equity-dashboard/pkg/dateutil"
)

// Prints the scheduled amortization of the loan from origination.
// usage: print_amortization [config-file] [months]
func main() {
	parser := config.NewInputParser()
	ds := parser.CreateExampleDataset()
	if len(os.Args) > 1 {
		loaded, err := parser.LoadFromFile(os.Args[1])
		if err != nil {
			panic(err)
		}
		ds = loaded
	}
	months := 24
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			panic(err)
		}
		months = n
	}

	p := ds.Property
	if !p.HasOrigination() {
		fmt.Println("property has no origination facts (original_loan_amount and loan_start_date)")
		return
	}

	principal := p.OriginalLoanAmount.InexactFloat64()
	rate := p.InterestRate.InexactFloat64()
	payment := calculation.MonthlyPayment(principal, rate, p.LoanTermYears)
	fmt.Printf("Original %.2f at %.4f over %d years, payment %.2f\n", principal, rate, p.LoanTermYears, payment)
	fmt.Println("Payment,Date,Interest,Principal,Balance")

	balance := principal
	for m := 1; m <= months && balance > 0; m++ {
		interest := balance * rate / 12
		next := calculation.AmortizeWithPayment(balance, rate/12, payment, 1)
		fmt.Printf("%d,%s,%.2f,%.2f,%.2f\n", m,
			dateutil.AddMonths(*p.LoanStartDate, m).Format(dateutil.DateLayout),
			interest, balance-next, next)
		balance = next
	}

	today := calculation.Now()
	fmt.Printf("\nAmortized balance today (%s): %.2f\n", today.Format(dateutil.DateLayout), calculation.CalculateAmortizedBalance(p, today))
}
