// One-off: go run scripts/createsuperuser.go -email admin@example.com -password secret
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pjavier1988/todo-api/internal/repo"
	"github.com/pjavier1988/todo-api/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	email := flag.String("email", "", "superuser email")
	password := flag.String("password", "", "superuser password")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: createsuperuser -email ... -password ...")
		os.Exit(2)
	}

	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "PG_DSN is required")
		os.Exit(2)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pg connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	svc := service.NewUserService(repo.NewPGUserRepo(pool), nil)
	u, err := svc.CreateSuperuser(ctx, *email, *password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create superuser: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("superuser %s created (id=%d)\n", u.Email, u.ID)
}
