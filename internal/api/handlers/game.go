package handlers

import (
	"net/http"

	apperrors "esports-club-backend/internal/errors"
	"esports-club-backend/internal/service"
	"esports-club-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameHandler handles HTTP requests for game operations
type GameHandler struct {
	gameService   service.GameServiceInterface
	rosterService service.RosterServiceInterface
	store         storage.ObjectStore
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService service.GameServiceInterface, rosterService service.RosterServiceInterface, store storage.ObjectStore) *GameHandler {
	return &GameHandler{
		gameService:   gameService,
		rosterService: rosterService,
		store:         store,
	}
}

// ListGames handles GET /games
// @Summary List games for navigation
// @Description Get the public list of games with slugs, served from a short-lived cache
// @Tags games
// @Produce json
// @Success 200 {array} service.NavigationGame "Games"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.gameService.ListNavigation()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, gin.H{"games": games})
}

// ListRoster handles GET /roster
// @Summary List the full roster
// @Description Get every game with its teams, players and capacity
// @Tags games
// @Produce json
// @Success 200 {array} service.GameRoster "Roster"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /roster [get]
func (h *GameHandler) ListRoster(c *gin.Context) {
	roster, err := h.gameService.ListRoster()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": roster})
}

// CreateGame handles POST /admin/games
// @Summary Create a new game
// @Description Create a game with a unique name and a per-team player capacity
// @Tags admin
// @Accept json
// @Produce json
// @Param game body service.CreateGameRequest true "Game data"
// @Success 201 {object} service.GameResponse "Created game"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Game name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req service.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.Create(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, game)
}

// UpdateGame handles PATCH /admin/games/:id
// @Summary Update a game
// @Description Apply a partial update to a game's description, image or capacity
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Param game body service.UpdateGameRequest true "Fields to update"
// @Success 200 {object} service.GameResponse "Updated game"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/games/{id} [patch]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var req service.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.Update(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}

// DeleteGame handles DELETE /admin/games/:id
// @Summary Delete a game
// @Description Delete a game, its teams, and free every player assigned to those teams
// @Tags admin
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {object} service.DeleteGameResponse "Cascade outcome"
// @Failure 400 {object} ErrorResponse "Invalid game ID"
// @Failure 500 {object} ErrorResponse "Cascade failed partway"
// @Security BearerAuth
// @Router /admin/games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	result, err := h.rosterService.DeleteGame(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.gameService.InvalidateCache()
	c.JSON(http.StatusOK, result)
}

// UploadGameImage handles POST /admin/games/:id/image
// @Summary Upload a game image
// @Description Store an image (jpeg/png/webp/gif, max 5MB) and attach it to the game
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Param image formData file true "Image file"
// @Success 200 {object} service.GameResponse "Updated game"
// @Failure 400 {object} ErrorResponse "Invalid upload"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/games/{id}/image [post]
func (h *GameHandler) UploadGameImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}

	ext, err := storage.ValidateImage(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer src.Close()

	url, err := h.store.Save("games", ext, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.AttachImage(id, url)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}
