package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"esports-club-backend/internal/config"
	"esports-club-backend/internal/database"
	"esports-club-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed files

type GameData struct {
	Name              string   `yaml:"name"`
	Description       string   `yaml:"description"`
	ImageURL          string   `yaml:"image_url,omitempty"`
	MaxPlayersPerTeam int      `yaml:"max_players_per_team"`
	Teams             []string `yaml:"teams,omitempty"`
}

type AdminData struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type GamesFile struct {
	Games []GameData `yaml:"games"`
}

type AdminsFile struct {
	Admins []AdminData `yaml:"admins"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry waits for a dockerized Postgres to come up before seeding
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	games, err := loadGames(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load games: %w", err)
	}
	admins, err := loadAdmins(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load admins: %w", err)
	}

	gamesCreated, teamsCreated := 0, 0
	for _, gameData := range games {
		game, created, err := createGame(db, gameData)
		if err != nil {
			return fmt.Errorf("failed to create game %s: %w", gameData.Name, err)
		}
		if created {
			gamesCreated++
		}
		for _, teamName := range gameData.Teams {
			created, err := createTeam(db, game.ID, teamName)
			if err != nil {
				return fmt.Errorf("failed to create team %s: %w", teamName, err)
			}
			if created {
				teamsCreated++
			}
		}
	}
	log.Printf("📋 Games: %d created, %d total", gamesCreated, len(games))
	log.Printf("📋 Teams: %d created", teamsCreated)

	adminsCreated := 0
	for _, adminData := range admins {
		created, err := createAdmin(db, adminData)
		if err != nil {
			return fmt.Errorf("failed to create admin %s: %w", adminData.Username, err)
		}
		if created {
			adminsCreated++
		}
	}
	log.Printf("📋 Admins: %d created, %d total", adminsCreated, len(admins))

	return nil
}

func loadGames(dataDir string) ([]GameData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "games.yaml"))
	if err != nil {
		return nil, err
	}
	var file GamesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Games, nil
}

func loadAdmins(dataDir string) ([]AdminData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "admins.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file AdminsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Admins, nil
}

// createGame is idempotent on the game name
func createGame(db *gorm.DB, data GameData) (*models.Game, bool, error) {
	var existing models.Game
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	game := &models.Game{
		Name:              data.Name,
		Description:       data.Description,
		ImageURL:          data.ImageURL,
		MaxPlayersPerTeam: data.MaxPlayersPerTeam,
	}
	if err := db.Create(game).Error; err != nil {
		return nil, false, err
	}
	return game, true, nil
}

// createTeam is idempotent on (game, name)
func createTeam(db *gorm.DB, gameID uuid.UUID, name string) (bool, error) {
	var existing models.Team
	err := db.First(&existing, "game_id = ? AND name = ?", gameID, name).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	team := &models.Team{GameID: gameID, Name: name}
	if err := db.Create(team).Error; err != nil {
		return false, err
	}
	return true, nil
}

// createAdmin is idempotent on the username. The plaintext password from the
// seed file is hashed before it is stored.
func createAdmin(db *gorm.DB, data AdminData) (bool, error) {
	var existing models.User
	err := db.First(&existing, "username = ?", data.Username).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	user := &models.User{
		Username: data.Username,
		Email:    data.Email,
		Password: string(hash),
		Role:     models.UserRoleAdmin,
	}
	if err := db.Create(user).Error; err != nil {
		return false, err
	}
	return true, nil
}
