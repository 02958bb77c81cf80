package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderly-app/wanderly-api/schema"
	"github.com/wanderly-app/wanderly-api/utils"
)

type labeledValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var priceMessageIDs = map[schema.PriceTier]string{
	schema.PriceFree:      "price.free.name",
	schema.PriceBudget:    "price.budget.name",
	schema.PriceModerate:  "price.moderate.name",
	schema.PriceExpensive: "price.expensive.name",
}

// categories is the API to list the filter values with localized labels
func (s *Server) categories(c *gin.Context) {
	var params struct {
		Language string `form:"lang"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	lang := "en"
	if params.Language != "" {
		lang = params.Language
	}
	localizer := utils.NewLocalizer(lang)

	categories := make([]labeledValue, 0, len(schema.Categories))
	for _, v := range schema.Categories {
		id := fmt.Sprintf("categories.%s.name", v)
		categories = append(categories, labeledValue{Value: string(v), Label: utils.Label(localizer, id, string(v))})
	}

	prices := make([]labeledValue, 0, len(schema.PriceTiers))
	for _, v := range schema.PriceTiers {
		prices = append(prices, labeledValue{Value: string(v), Label: utils.Label(localizer, priceMessageIDs[v], string(v))})
	}

	transport := make([]labeledValue, 0, len(schema.TransportModes))
	for _, v := range schema.TransportModes {
		id := fmt.Sprintf("transport.%s.name", v)
		transport = append(transport, labeledValue{Value: string(v), Label: utils.Label(localizer, id, string(v))})
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":     categories,
		"prices":         prices,
		"transportModes": transport,
	})
}
