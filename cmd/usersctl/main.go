package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"user-management-api/internal/client"
	"user-management-api/internal/lib/sl"
)

const (
	defaultBase    = "http://localhost:8080"
	requestTimeout = 10 * time.Second
)

func main() {
	base := os.Getenv("API_BASE")
	if base == "" {
		base = defaultBase
	}

	createCmd := flag.NewFlagSet("create", flag.ExitOnError)
	createName := createCmd.String("name", "", "Full name (required)")
	createMob := createCmd.String("mob", "", "Mobile number (required)")
	createPan := createCmd.String("pan", "", "PAN (required)")
	createManager := createCmd.String("manager", "", "Manager ID (required)")

	getCmd := flag.NewFlagSet("get", flag.ExitOnError)
	getID := getCmd.String("id", "", "User ID")
	getMob := getCmd.String("mob", "", "Mobile number suffix")
	getManager := getCmd.String("manager", "", "Manager ID")

	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)
	deleteID := deleteCmd.String("id", "", "User ID")
	deleteMob := deleteCmd.String("mob", "", "Mobile number")

	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	updateIDs := updateCmd.String("ids", "", "Comma separated user IDs (required)")
	updateName := updateCmd.String("name", "", "New full name")
	updateMob := updateCmd.String("mob", "", "New mobile number")
	updatePan := updateCmd.String("pan", "", "New PAN")
	updateManager := updateCmd.String("manager", "", "New manager ID")

	if len(os.Args) < 2 {
		usage()
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	c := client.New(base, requestTimeout)
	ctx := context.Background()

	switch os.Args[1] {
	case "create":
		createCmd.Parse(os.Args[2:])
		if *createName == "" || *createMob == "" || *createPan == "" || *createManager == "" {
			fmt.Fprintln(os.Stderr, "Missing required flags: -name, -mob, -pan and -manager")
			createCmd.Usage()
			os.Exit(1)
		}
		resp, err := c.CreateUser(ctx, client.CreateUserInput{
			FullName:  *createName,
			MobNum:    *createMob,
			PanNum:    *createPan,
			ManagerID: *createManager,
		})
		if err != nil {
			fatal(log, "request failed", err)
		}
		printJSON(log, resp)

	case "get":
		getCmd.Parse(os.Args[2:])
		users, err := c.GetUsers(ctx, client.UserFilter{
			UserID:    *getID,
			MobNum:    *getMob,
			ManagerID: *getManager,
		})
		if err != nil {
			fatal(log, "request failed", err)
		}
		printJSON(log, users)

	case "delete":
		deleteCmd.Parse(os.Args[2:])
		if *deleteID == "" && *deleteMob == "" {
			fmt.Fprintln(os.Stderr, "Missing required flag: -id or -mob")
			deleteCmd.Usage()
			os.Exit(1)
		}
		if err := c.DeleteUser(ctx, *deleteID, *deleteMob); err != nil {
			fatal(log, "request failed", err)
		}
		fmt.Println("deleted")

	case "update":
		updateCmd.Parse(os.Args[2:])
		ids := splitIDs(*updateIDs)
		if len(ids) == 0 {
			fmt.Fprintln(os.Stderr, "Missing required flag: -ids")
			updateCmd.Usage()
			os.Exit(1)
		}
		data := map[string]any{}
		setIfNotEmpty(data, "full_name", *updateName)
		setIfNotEmpty(data, "mob_num", *updateMob)
		setIfNotEmpty(data, "pan_num", *updatePan)
		setIfNotEmpty(data, "manager_id", *updateManager)
		if len(data) == 0 {
			fmt.Fprintln(os.Stderr, "Nothing to update")
			updateCmd.Usage()
			os.Exit(1)
		}
		resp, err := c.UpdateUsers(ctx, ids, data)
		if err != nil {
			fatal(log, "request failed", err)
		}
		printJSON(log, resp)

	case "managers":
		managers, err := c.GetManagers(ctx)
		if err != nil {
			fatal(log, "request failed", err)
		}
		printJSON(log, managers)

	default:
		usage()
		os.Exit(1)
	}
}

func splitIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func setIfNotEmpty(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func printJSON(log *slog.Logger, v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(log, "failed to encode response", err)
	}
	fmt.Println(string(out))
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, sl.Err(err))
	os.Exit(1)
}

func usage() {
	fmt.Println(`Usage: usersctl <command> [flags]

Commands:
  create    -name -mob -pan -manager
  get       [-id] [-mob] [-manager]
  delete    -id | -mob
  update    -ids a,b [-name] [-mob] [-pan] [-manager]
  managers

Environment:
  API_BASE  service address (default http://localhost:8080)`)
}
