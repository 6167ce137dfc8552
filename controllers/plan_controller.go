package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhaabhishek9/Nutrifitnes/storage"
)

type PlanController struct {
	store storage.Store
}

func NewPlanController(store storage.Store) *PlanController {
	return &PlanController{store: store}
}

func (ct *PlanController) List(c *gin.Context) {
	plans, err := ct.store.DietPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load diet plans"})
		return
	}
	c.JSON(http.StatusOK, plans)
}
