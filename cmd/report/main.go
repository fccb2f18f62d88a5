package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/locvowork/employee_salary_api/internal/logger"
	"github.com/locvowork/employee_salary_api/internal/repository"
	"github.com/locvowork/employee_salary_api/internal/seed"
	"github.com/locvowork/employee_salary_api/internal/service"
)

// report renders a seed document into the same xlsx the API serves at
// /v2/employees/export, without starting a server.
func main() {
	seedFile := flag.String("seed", "", "Seed YAML file (defaults to the built-in data)")
	layout := flag.String("layout", "", "Report layout YAML file (defaults to the built-in layout)")
	out := flag.String("out", "employee_salaries.xlsx", "Output xlsx path")
	flag.Parse()

	ctx := context.Background()
	logger.InitLogging("", "info")

	doc, err := seed.Load(*seedFile)
	if err != nil {
		log.Fatalf("load seed: %v", err)
	}

	repo := repository.NewEmployeeRepository()
	if err := seed.NewDataSeeder(repo, nil).SeedData(ctx, doc); err != nil {
		log.Fatalf("seed store: %v", err)
	}

	reports, err := service.NewReportService(service.NewEmployeeService(repo), *layout)
	if err != nil {
		log.Fatalf("init report: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	if err := reports.SalaryReport(ctx, f); err != nil {
		log.Fatalf("write report: %v", err)
	}
	fmt.Printf("Wrote %d employees to %s\n", len(doc.Employees), *out)
}
