package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhaabhishek9/Nutrifitnes/services"
)

type BMIController struct {
	svc *services.BMIService
}

func NewBMIController(svc *services.BMIService) *BMIController {
	return &BMIController{svc: svc}
}

// Calculate handles POST /calculate-bmi. The computation and the history
// write are separate steps: a storage failure is reported, but the computed
// result is still returned to the caller.
func (ct *BMIController) Calculate(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var in services.BMIInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	res, err := ct.svc.Calculate(in)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := ct.svc.Record(c.Request.Context(), userID, in, res); err != nil {
		slog.Error("failed to save bmi record", "error", err, "userId", userID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":  "BMI was calculated but the record could not be saved",
			"bmi":      res.DisplayBMI(),
			"category": res.Category,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bmi":          res.DisplayBMI(),
		"category":     res.Category,
		"heightMeters": res.HeightMeters,
		"weightKg":     in.Weight,
	})
}

// History handles GET /bmi-records, newest first.
func (ct *BMIController) History(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	records, err := ct.svc.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load BMI records"})
		return
	}
	c.JSON(http.StatusOK, records)
}
