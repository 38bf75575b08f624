package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/celerix-dev/gamingtech-store/internal/logging"
	"github.com/celerix-dev/gamingtech-store/pkg/schema"
	"github.com/celerix-dev/gamingtech-store/pkg/sdk"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	logCfg := logging.DefaultConfig()
	logCfg.Output = os.Stderr
	logCfg.Prefix = "gamingtech"
	logger := logging.New(logCfg)

	client := sdk.NewFromEnv(sdk.WithLogger(logging.PrintfLogger{Logger: logger}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	command := strings.ToUpper(os.Args[1])
	if err := run(ctx, client, command, os.Args[2:]); err != nil {
		logger.Error(command+" failed", "err", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, client sdk.GamingTech, command string, args []string) error {
	switch command {
	case "REGISTER":
		if len(args) < 4 {
			return usage("REGISTER <firstName> <lastName> <email> <password>")
		}
		return printJSON(client.Register(ctx, args[0], args[1], args[2], args[3]))

	case "LOGIN":
		if len(args) < 2 {
			return usage("LOGIN <email> <password>")
		}
		return printJSON(client.Login(ctx, args[0], args[1]))

	case "VERIFY":
		if len(args) < 1 {
			return usage("VERIFY <token>")
		}
		return printJSON(client.Verify(ctx, args[0]))

	case "USERS":
		return printJSON(client.Users(ctx))

	case "PRODUCTS":
		category := ""
		if len(args) > 0 {
			category = args[0]
		}
		return printJSON(client.Products(ctx, category))

	case "PRODUCT":
		if len(args) < 1 {
			return usage("PRODUCT <id>")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("product id must be a number: %w", err)
		}
		return printJSON(client.Product(ctx, id))

	case "COMPONENTS":
		if len(args) > 0 {
			return printJSON(client.ComponentsOfType(ctx, args[0]))
		}
		return printJSON(client.Components(ctx))

	case "BUILD":
		if len(args) < 4 {
			return usage("BUILD <cpuID> <gpuID> <ramID> <storageID>")
		}
		req, err := resolveBuild(ctx, client, args[:4])
		if err != nil {
			return err
		}
		return printJSON(client.BuildPC(ctx, req))

	case "CONTACT":
		if len(args) < 4 {
			return usage("CONTACT <name> <email> <subject> <message...>")
		}
		return printJSON(client.Contact(ctx, schema.ContactMessage{
			Name:    args[0],
			Email:   args[1],
			Subject: args[2],
			Message: strings.Join(args[3:], " "),
		}))

	case "PING":
		for _, svc := range []sdk.Service{sdk.AccountService, sdk.CatalogService} {
			status, err := client.Health(ctx, svc)
			if err != nil {
				return fmt.Errorf("%s: %w", svc, err)
			}
			fmt.Printf("%s %s\n", svc, status.Status)
		}
		return nil

	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// resolveBuild looks the four component ids up in the catalog, one per slot.
func resolveBuild(ctx context.Context, client sdk.CatalogReader, ids []string) (schema.BuildRequest, error) {
	table, err := client.Components(ctx)
	if err != nil {
		return schema.BuildRequest{}, err
	}

	var picked [4]*schema.Component
	for i, kind := range schema.ComponentTypes {
		for _, c := range table[kind] {
			if c.ID == ids[i] {
				picked[i] = &c
				break
			}
		}
		if picked[i] == nil {
			return schema.BuildRequest{}, fmt.Errorf("no %s component with id %q", kind, ids[i])
		}
	}
	return schema.BuildRequest{CPU: picked[0], GPU: picked[1], RAM: picked[2], Storage: picked[3]}, nil
}

func usage(form string) error {
	return fmt.Errorf("usage: gamingtech %s", form)
}

func printJSON[T any](v T, err error) error {
	if err != nil {
		return err
	}
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(bytes))
	return nil
}

func printUsage() {
	fmt.Println("GamingTech CLI - client for the account and catalog services")
	fmt.Println("\nUsage:")
	fmt.Println("  gamingtech REGISTER <firstName> <lastName> <email> <password>")
	fmt.Println("  gamingtech LOGIN <email> <password>")
	fmt.Println("  gamingtech VERIFY <token>")
	fmt.Println("  gamingtech USERS")
	fmt.Println("  gamingtech PRODUCTS [category]")
	fmt.Println("  gamingtech PRODUCT <id>")
	fmt.Println("  gamingtech COMPONENTS [type]")
	fmt.Println("  gamingtech BUILD <cpuID> <gpuID> <ramID> <storageID>")
	fmt.Println("  gamingtech CONTACT <name> <email> <subject> <message...>")
	fmt.Println("  gamingtech PING")
	fmt.Println("\nEnvironment Variables:")
	fmt.Println("  GAMINGTECH_ACCOUNT_ADDR     Account service URL (default: http://localhost:3001)")
	fmt.Println("  GAMINGTECH_CATALOG_ADDR     Catalog service URL (default: http://localhost:5000)")
	fmt.Println("  GAMINGTECH_TLS_SKIP_VERIFY  Set to true to accept self-signed certificates")
}
