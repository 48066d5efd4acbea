package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"wordadventure/internal/api"
	"wordadventure/internal/config"
	"wordadventure/internal/database"
	"wordadventure/internal/models"
	"wordadventure/internal/store"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one subcommand and returns the process exit code
func run(args []string) int {
	// Define subcommands
	wordsCmd := flag.NewFlagSet("words", flag.ExitOnError)
	randomCmd := flag.NewFlagSet("random", flag.ExitOnError)
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	registerCmd := flag.NewFlagSet("register", flag.ExitOnError)
	forgotCmd := flag.NewFlagSet("forgot-password", flag.ExitOnError)
	resetCmd := flag.NewFlagSet("reset-password", flag.ExitOnError)
	offlineCmd := flag.NewFlagSet("offline", flag.ExitOnError)

	// Word filters
	wordsCategory := wordsCmd.String("category", "", "Category filter")
	wordsDifficulty := wordsCmd.String("difficulty", "", "Difficulty filter: easy, medium or hard")
	wordsUser := wordsCmd.Int64("user", 0, "User ID filter")
	randomCount := randomCmd.Int("count", api.DefaultRandomCount, "Number of words")
	randomCategory := randomCmd.String("category", "", "Category filter")
	randomDifficulty := randomCmd.String("difficulty", "", "Difficulty filter: easy, medium or hard")

	// Auth flags
	loginUser := loginCmd.String("username", "", "Username (required)")
	loginPass := loginCmd.String("password", "", "Password (required)")
	registerUser := registerCmd.String("username", "", "Username (required)")
	registerEmail := registerCmd.String("email", "", "Email address")
	registerPass := registerCmd.String("password", "", "Password (required)")
	registerConfirm := registerCmd.String("confirm", "", "Password confirmation (required)")
	forgotEmail := forgotCmd.String("email", "", "Email address (required)")
	resetToken := resetCmd.String("token", "", "Reset token (required)")
	resetPass := resetCmd.String("password", "", "New password (required)")
	resetConfirm := resetCmd.String("confirm", "", "New password confirmation (required)")

	// Offline queue export
	offlineOutput := offlineCmd.String("output", "", "Output file path (default: stdout)")

	if len(args) < 1 {
		printUsage()
		return 1
	}

	// Load configuration
	cfg := config.Load()

	// Open the local store
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Printf("Failed to initialize store: %v", err)
		return 1
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Printf("Failed to run migrations: %v", err)
		return 1
	}

	sessions, err := store.Open(db)
	if err != nil {
		log.Printf("Failed to open session store: %v", err)
		return 1
	}

	client, err := api.New(api.Config{
		BaseURL: cfg.APIBaseURL,
		Store:   sessions,
		Debug:   cfg.Debug,
	})
	if err != nil {
		log.Printf("Failed to create API client: %v", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	switch args[0] {
	case "health":
		printJSON(client.HealthCheck(ctx))

	case "words":
		wordsCmd.Parse(args[1:])
		res := client.GetWords(ctx, models.WordFilter{
			Category:   *wordsCategory,
			Difficulty: models.Difficulty(*wordsDifficulty),
			UserID:     *wordsUser,
		})
		printResult(res.Outcome, res.Err, res.Value)

	case "random":
		randomCmd.Parse(args[1:])
		res := client.GetRandomWords(ctx, *randomCount, models.WordFilter{
			Category:   *randomCategory,
			Difficulty: models.Difficulty(*randomDifficulty),
		})
		printResult(res.Outcome, res.Err, res.Value)

	case "categories":
		res := client.GetCategories(ctx)
		printResult(res.Outcome, res.Err, res.Value)

	case "difficulties":
		res := client.GetDifficulties(ctx)
		printResult(res.Outcome, res.Err, res.Value)

	case "init-categories":
		resp, err := client.InitCategories(ctx)
		if err != nil {
			log.Printf("Failed to initialize categories: %v", err)
			return 1
		}
		printJSON(resp)
		if res := client.GetCategories(ctx); res.Remote() {
			log.Printf("Successfully initialized %d categories", len(res.Value))
		}

	case "login":
		loginCmd.Parse(args[1:])
		if !requireFlags(loginCmd, *loginUser, *loginPass) {
			return 1
		}
		res, err := client.Login(ctx, api.Credentials{Username: *loginUser, Password: *loginPass})
		if err != nil {
			log.Printf("Login failed: %v", err)
			return 1
		}
		printResult(res.Outcome, res.Err, res.Value)

	case "register":
		registerCmd.Parse(args[1:])
		if !requireFlags(registerCmd, *registerUser, *registerPass, *registerConfirm) {
			return 1
		}
		resp, err := client.Register(ctx, api.RegisterRequest{
			Username:        *registerUser,
			Email:           *registerEmail,
			Password:        *registerPass,
			ConfirmPassword: *registerConfirm,
		})
		if err != nil {
			log.Printf("Registration failed: %v", err)
			return 1
		}
		printJSON(resp)

	case "forgot-password":
		forgotCmd.Parse(args[1:])
		if !requireFlags(forgotCmd, *forgotEmail) {
			return 1
		}
		resp, err := client.ForgotPassword(ctx, *forgotEmail)
		if err != nil {
			log.Printf("Failed to request password reset: %v", err)
			return 1
		}
		printJSON(resp)

	case "reset-password":
		resetCmd.Parse(args[1:])
		if !requireFlags(resetCmd, *resetToken, *resetPass, *resetConfirm) {
			return 1
		}
		if _, err := client.VerifyResetToken(ctx, *resetToken); err != nil {
			log.Printf("Invalid or expired token: %v", err)
			return 1
		}
		resp, err := client.ResetPassword(ctx, api.ResetPasswordRequest{
			Token:           *resetToken,
			NewPassword:     *resetPass,
			ConfirmPassword: *resetConfirm,
		})
		if err != nil {
			log.Printf("Failed to reset password: %v", err)
			return 1
		}
		printJSON(resp)

	case "logout":
		res := client.Logout(ctx)
		if res.Err != nil {
			log.Printf("Warning: %v", res.Err)
		}
		log.Println("Logged out")

	case "whoami":
		user := client.CurrentUser()
		if user == nil {
			log.Println("Not signed in")
			return 0
		}
		printJSON(user)
		if exp, ok := client.TokenExpiry(); ok {
			log.Printf("Token expires at %s", exp.Format(time.RFC3339))
		}

	case "offline":
		offlineCmd.Parse(args[1:])
		if err := handleOfflineExport(client.OfflineResults(), *offlineOutput); err != nil {
			log.Printf("Export failed: %v", err)
			return 1
		}

	default:
		printUsage()
		return 1
	}
	return 0
}

func handleOfflineExport(results []models.TestResult, outputPath string) error {
	if outputPath == "" {
		printJSON(results)
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode offline results: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}
	log.Printf("Exported %d offline results to: %s", len(results), outputPath)
	return nil
}

func requireFlags(fs *flag.FlagSet, values ...string) bool {
	for _, v := range values {
		if v == "" {
			fmt.Printf("Error: missing required flags for %s\n", fs.Name())
			fs.PrintDefaults()
			return false
		}
	}
	return true
}

func printResult(outcome api.Outcome, cause error, value any) {
	if outcome != api.OutcomeRemote {
		log.Printf("Warning: result is %s: %v", outcome, cause)
	}
	printJSON(value)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("Failed to encode output: %v", err)
		return
	}
	fmt.Println(string(data))
}

func printUsage() {
	fmt.Println("Word Adventure API Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  wordadventure health                      Check backend connectivity")
	fmt.Println("  wordadventure words [options]             List words")
	fmt.Println("  wordadventure random [options]            List random words")
	fmt.Println("  wordadventure categories                  List categories")
	fmt.Println("  wordadventure difficulties                List difficulty levels")
	fmt.Println("  wordadventure init-categories             Seed the backend's default categories")
	fmt.Println("  wordadventure login [options]             Sign in")
	fmt.Println("  wordadventure register [options]          Create an account")
	fmt.Println("  wordadventure forgot-password [options]   Request a password reset email")
	fmt.Println("  wordadventure reset-password [options]    Set a new password with a reset token")
	fmt.Println("  wordadventure logout                      Sign out and clear the local session")
	fmt.Println("  wordadventure whoami                      Show the cached session")
	fmt.Println("  wordadventure offline [options]           Export queued offline test results")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  wordadventure login -username demo -password password")
	fmt.Println("  wordadventure random -count 5 -difficulty easy")
	fmt.Println("  wordadventure offline -output offline_results.json")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  API_BASE_URL       Backend base URL (default: http://localhost:5000/api)")
	fmt.Println("  STORE_TYPE         Store type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  STORE_PATH         SQLite store path (default: ./wordadventure.db)")
	fmt.Println("  STORE_URL          PostgreSQL or MySQL connection URL")
	fmt.Println("  REQUEST_TIMEOUT    Timeout for each command (default: 15s)")
	fmt.Println("  DEBUG              Log every request (default: false)")
}
