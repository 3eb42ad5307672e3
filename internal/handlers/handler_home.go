package handlers

import (
	"net/http"

	"github.com/SscSPs/currency_toolkit/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server and the currencies it knows about.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message":    "Currency Toolkit API",
		"currencies": domain.SupportedCurrencies,
	})
}
