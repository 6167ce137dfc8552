package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jhaabhishek9/Nutrifitnes/storage"
)

const Version = "1.0.0"

type MetaController struct {
	store       storage.Store
	environment string
}

func NewMetaController(store storage.Store, environment string) *MetaController {
	return &MetaController{store: store, environment: environment}
}

func (ct *MetaController) Health(c *gin.Context) {
	if err := ct.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unavailable",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (ct *MetaController) GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":     Version,
		"environment": ct.environment,
	})
}
