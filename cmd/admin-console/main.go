package main

import (
	"context"
	"flag"
	"log"
	"time"

	"astromarket/config"
	"astromarket/console"
	customerRepo "astromarket/database/repository/customer"
	"astromarket/services/customer"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	local := flag.Bool("local", false, "browse the built-in mock roster instead of the API")
	flag.Parse()

	config.LoadConfig()
	ctx := context.Background()

	var source console.Source
	if *local {
		source = &customer.DefaultCustomerAdminService{
			Repo: customerRepo.NewMemoryCustomerRepo(customerRepo.MockRoster(time.Now())),
		}
	} else {
		api := console.NewHTTPSource(config.AppConfig.APIBaseURL)
		password := config.AppConfig.AdminPassword
		if password == "" {
			log.Fatal("ADMIN_PASSWORD must be set (or run with -local)")
		}
		loginCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err := api.Login(loginCtx, config.AppConfig.AdminUsername, password)
		cancel()
		if err != nil {
			log.Fatalf("login: %v", err)
		}
		source = api
	}

	p := tea.NewProgram(console.New(ctx, source), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("console: %v", err)
	}
}
