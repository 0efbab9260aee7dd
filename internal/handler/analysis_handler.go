package handler

import (
	"net/http"

	"indiepulse/backend/internal/analysis"
	"indiepulse/backend/internal/dataset"

	"github.com/gin-gonic/gin"
)

// Analytics is the dataset pipeline the analysis endpoints read from,
// wired in main the same way database.DB is.
var Analytics *dataset.Store

// GetGenreAnalysis godoc
// @Summary      Genre popularity analysis
// @Description  Returns genre popularity by game count and by review engagement, the top 20 tags, and genre statistics.
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  analysis.GenreOverview
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse "Dataset load failed"
// @Router       /analysis/genres [get]
func GetGenreAnalysis(c *gin.Context) {
	data, err := Analytics.Q1()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dataset"})
		return
	}
	c.JSON(http.StatusOK, analysis.BuildGenreOverview(data))
}

// GetPriceAnalysis godoc
// @Summary      Price distribution analysis
// @Description  Returns the price bucket distribution in EUR and price statistics over paid games.
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  analysis.PriceOverview
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse "Dataset load failed"
// @Router       /analysis/prices [get]
func GetPriceAnalysis(c *gin.Context) {
	games, err := Analytics.Games()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dataset"})
		return
	}
	c.JSON(http.StatusOK, analysis.BuildPriceOverview(games))
}

// GetLanguageAnalysis godoc
// @Summary      Language engagement analysis
// @Description  Returns per-language engagement shares, cumulative shares, game counts, and language statistics.
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  analysis.LanguageOverview
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse "Dataset load failed"
// @Router       /analysis/languages [get]
func GetLanguageAnalysis(c *gin.Context) {
	data, err := Analytics.Q3()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dataset"})
		return
	}
	c.JSON(http.StatusOK, analysis.BuildLanguageOverview(data))
}

// RefreshAnalysis godoc
// @Summary      Refresh the analysis cache
// @Description  Drops every cached derived table and rebuilds them from the input files.
// @Tags         admin-analysis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string "{"message": "Cache refreshed"}"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      500  {object}  ErrorResponse "Dataset load failed"
// @Router       /admin/analysis/refresh [post]
func RefreshAnalysis(c *gin.Context) {
	Analytics.Invalidate()
	if err := Analytics.Warm(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rebuild dataset"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cache refreshed"})
}
