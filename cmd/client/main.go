// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command go-todo-client runs a smoke scenario against a running API:
// it signs in (registering on first use), creates a todo, optionally
// attaches an uploaded image, lists, finishes and deletes it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

type options struct {
	address  string
	timeout  time.Duration
	phone    string
	password string
	name     string
	title    string
	image    string
	logLevel string
}

func parseOptions(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("go-todo-client", flag.ContinueOnError)
	fs.StringVar(&opts.address, "a", "localhost:5000", "API address")
	fs.DurationVar(&opts.timeout, "t", 15*time.Second, "request timeout")
	fs.StringVar(&opts.phone, "phone", "", "phone number to sign in with")
	fs.StringVar(&opts.password, "password", "", "password")
	fs.StringVar(&opts.name, "name", "Smoke Test", "display name used on registration")
	fs.StringVar(&opts.title, "title", "Buy milk", "title of the todo to create")
	fs.StringVar(&opts.image, "image", "", "optional image file to upload and attach")
	fs.StringVar(&opts.logLevel, "l", "info", "log level")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.phone == "" || opts.password == "" {
		return opts, errors.New("-phone and -password are required")
	}

	return opts, nil
}

func main() {
	printBuildInfo()

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.NewLogger("go-todo-client", opts.logLevel)

	client, err := adapter.NewHTTPTodoClient(opts.address, opts.timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	if err = run(context.Background(), client, opts, log); err != nil {
		log.Fatal().Err(err).Msg("smoke scenario failed")
	}
	log.Info().Msg("smoke scenario passed")
}

func run(ctx context.Context, client adapter.TodoClient, opts options, log *logger.Logger) error {
	if err := client.Health(ctx); err != nil {
		return fmt.Errorf("health: %w", err)
	}

	auth, err := client.Login(ctx, models.LoginRequest{Phone: opts.phone, Password: opts.password})
	if errors.Is(err, adapter.ErrUnauthorized) {
		auth, err = client.Register(ctx, models.RegisterRequest{
			Phone:       opts.phone,
			Password:    opts.password,
			DisplayName: opts.name,
		})
	}
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	log.Info().Str("user_id", auth.ID).Msg("signed in")

	create := models.CreateTaskRequest{Title: opts.title}
	if opts.image != "" {
		url, err := upload(ctx, client, opts.image)
		if err != nil {
			return err
		}
		create.Image = models.NullableOf(absoluteURL(opts.address, url))
	}

	todo, err := client.CreateTodo(ctx, create)
	if err != nil {
		return fmt.Errorf("create todo: %w", err)
	}
	log.Info().Str("id", todo.ID).Str("status", string(todo.Status)).Msg("todo created")

	_, page, err := client.ListTodos(ctx, adapter.ListParams{Search: opts.title})
	if err != nil {
		return fmt.Errorf("list todos: %w", err)
	}
	log.Info().Int64("total", page.Total).Msg("todos listed")

	finished := models.StatusFinished
	if _, err = client.UpdateTodo(ctx, todo.ID, models.UpdateTaskRequest{Status: &finished}); err != nil {
		return fmt.Errorf("update todo: %w", err)
	}

	if _, err = client.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh tokens: %w", err)
	}

	if err = client.DeleteTodo(ctx, todo.ID); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if _, err = client.GetTodo(ctx, todo.ID); !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("deleted todo is still visible: %v", err)
	}

	return nil
}

func upload(ctx context.Context, client adapter.TodoClient, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	image, err := client.UploadImage(ctx, path, f)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return image.URL, nil
}

// absoluteURL resolves the path returned by an upload against the API
// address, since a todo only accepts http(s) image URLs.
func absoluteURL(address, path string) string {
	address = strings.TrimRight(address, "/")
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	return address + path
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
