// Package main is the entry point of the ShareCloud API server, which serves the
// OCS provisioning, theming and l10n endpoints of the app framework.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/sharecloud/internal/auth"
	"github.com/yasinhessnawi1/sharecloud/internal/config"
	"github.com/yasinhessnawi1/sharecloud/internal/server"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

// Version information is set during build time through linker flags.
var (
	// version represents the release version of the application.
	version = "dev"

	// commit is the git commit hash from which the application was built.
	commit = "none"

	// buildDate is the timestamp when the application was built.
	buildDate = "unknown"
)

// init loads environment variables from a .env file if present.
func init() {
	// Configuration might be provided by other means
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found or couldn't be loaded")
	}
}

func main() {
	var (
		configPath  string
		showVersion bool
		tokenUser   string
		tokenGroups string
	)

	flag.StringVar(&configPath, "config", "./configs/config.yaml", "Path to configuration file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&tokenUser, "token", "", "Print a bearer token for this user id and exit (development only)")
	flag.StringVar(&tokenGroups, "groups", "", "Comma separated groups for -token")
	flag.Parse()

	if showVersion {
		fmt.Printf("ShareCloud API Server\nVersion: %s\nCommit: %s\nBuild Date: %s\n", version, commit, buildDate)
		os.Exit(0)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if version != "dev" {
		cfg.App.Version = version
	}

	utils.InitLogger(cfg)

	if tokenUser != "" {
		if err := printToken(cfg, tokenUser, tokenGroups); err != nil {
			log.Fatal().Err(err).Msg("Failed to generate token")
		}
		return
	}

	log.Info().
		Str("version", cfg.App.Version).
		Str("environment", cfg.App.Environment).
		Msg("Starting ShareCloud API Server")

	utils.InitValidator()

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create server")
	}

	// Blocks until a shutdown signal is received
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

// printToken signs a token with the configured secret. Only development and
// testing environments may mint tokens locally.
func printToken(cfg *config.AppConfig, userID, groups string) error {
	if !cfg.App.IsDevelopment() && !cfg.App.IsTesting() {
		return fmt.Errorf("token generation is disabled in %s", cfg.App.Environment)
	}

	var groupList []string
	if groups != "" {
		groupList = utils.NormalizeList(strings.Split(groups, ","))
	}

	token, jwtID, err := auth.NewJWTService(&cfg.JWT).GenerateToken(userID, groupList)
	if err != nil {
		return err
	}

	log.Info().Str("user_id", userID).Str("jwt_id", jwtID).Strs("groups", groupList).Msg("Token generated")
	fmt.Println(token)
	return nil
}
