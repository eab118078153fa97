// Package httpapi holds the gin handlers. Keep these thin: bind and validate
// input, delegate to internal services, shape the JSON response.
package httpapi

import (
	"errors"
	"net/http"

	"load-relay/internal/analytics"
	"load-relay/internal/loads"
	"load-relay/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handlers groups HTTP handlers for dependency injection.
type Handlers struct {
	Loads          *loads.Service
	Analytics      *analytics.Service
	DashboardToken string
}

// processLoadRequest mirrors the workflow's call payload. Pointer fields with
// binding:"required" enforce presence while still admitting empty strings;
// every field is part of the dedup identity, so none may be silently dropped.
type processLoadRequest struct {
	Origin           *string `json:"origin" binding:"required"`
	Destination      *string `json:"destination" binding:"required"`
	PickupDatetime   *string `json:"pickup_datetime" binding:"required"`
	DeliveryDatetime *string `json:"delivery_datetime" binding:"required"`
	EquipmentType    *string `json:"equipment_type" binding:"required"`
	LoadboardRate    *string `json:"loadboard_rate" binding:"required"`
	Notes            *string `json:"notes" binding:"required"`
	Weight           *string `json:"weight" binding:"required"`
	CommodityType    *string `json:"commodity_type" binding:"required"`
	NumOfPieces      *string `json:"num_of_pieces" binding:"required"`
	Miles            *string `json:"miles" binding:"required"`
	Dimensions       *string `json:"dimensions" binding:"required"`
	CarrierName      *string `json:"carrier_name" binding:"required"`
	CarrierPhone     *string `json:"carrier_phone" binding:"required"`
	CarrierMCNumber  *string `json:"carrier_mc_number" binding:"required"`
	TypeOfCall       *string `json:"type_of_call" binding:"required"`
	ValidateCarrier  *string `json:"validate_carrier" binding:"required"`
}

func (r processLoadRequest) toCall() loads.Call {
	return loads.Call{
		Origin:           *r.Origin,
		Destination:      *r.Destination,
		PickupDatetime:   *r.PickupDatetime,
		DeliveryDatetime: *r.DeliveryDatetime,
		EquipmentType:    *r.EquipmentType,
		LoadboardRate:    *r.LoadboardRate,
		Notes:            *r.Notes,
		Weight:           *r.Weight,
		CommodityType:    *r.CommodityType,
		NumOfPieces:      *r.NumOfPieces,
		Miles:            *r.Miles,
		Dimensions:       *r.Dimensions,
		CarrierName:      *r.CarrierName,
		CarrierPhone:     *r.CarrierPhone,
		CarrierMCNumber:  *r.CarrierMCNumber,
		TypeOfCall:       *r.TypeOfCall,
		ValidateCarrier:  *r.ValidateCarrier,
	}
}

type processLoadResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// ProcessLoad relays one call event: carrier validation, deduplication,
// forward.
func (h Handlers) ProcessLoad(c *gin.Context) {
	if h.Loads == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "relay not configured"})
		return
	}
	var req processLoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid call payload"})
		return
	}

	out, err := h.Loads.Process(c.Request.Context(), req.toCall())
	if err != nil {
		if errors.Is(err, loads.ErrUnknownCallType) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown type_of_call"})
			return
		}
		// Registry or workflow unreachable: fail the whole request. No
		// retries, no partial-success bookkeeping.
		logger.FromGin(c).Error("process load failed", "err", err)
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "upstream failure"})
		return
	}
	c.JSON(http.StatusOK, processLoadResponse{Status: out.Status, Reason: out.Reason})
}

type processCallRequest struct {
	CarrierPhone    *string `json:"carrier_phone" binding:"required"`
	CarrierName     *string `json:"carrier_name" binding:"required"`
	CallDurationSec *string `json:"call_duration_sec" binding:"required"`
	Outcome         *string `json:"outcome" binding:"required"`
	Sentiment       *string `json:"sentiment" binding:"required"`
	RateUSD         *string `json:"rate_usd"`
	Origin          *string `json:"origin" binding:"required"`
	Destination     *string `json:"destination" binding:"required"`
	Miles           *string `json:"miles" binding:"required"`
}

func (r processCallRequest) toReport() analytics.Report {
	return analytics.Report{
		CarrierPhone:    *r.CarrierPhone,
		CarrierName:     *r.CarrierName,
		CallDurationSec: *r.CallDurationSec,
		Outcome:         *r.Outcome,
		Sentiment:       *r.Sentiment,
		RateUSD:         r.RateUSD,
		Origin:          *r.Origin,
		Destination:     *r.Destination,
		Miles:           *r.Miles,
	}
}

// ProcessCall stores one call-outcome report in the analytics table.
func (h Handlers) ProcessCall(c *gin.Context) {
	if h.Analytics == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "analytics not configured"})
		return
	}
	var req processCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid outcome payload"})
		return
	}

	if err := h.Analytics.Log(c.Request.Context(), req.toReport()); err != nil {
		var ce *analytics.CoercionError
		if errors.As(err, &ce) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "field does not parse", "field": ce.Field})
			return
		}
		logger.FromGin(c).Error("process call failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "analytics append failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged"})
}

// Metrics returns the snapshot recomputed from the full analytics table.
func (h Handlers) Metrics(c *gin.Context) {
	if h.Analytics == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "analytics not configured"})
		return
	}
	m, err := h.Analytics.Metrics(c.Request.Context())
	if err != nil {
		logger.FromGin(c).Error("metrics failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "metrics computation failed"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// Dashboard serves the analytics page. The embedded token lets the page's
// script call /metrics.
func (h Handlers) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"DashToken": h.DashboardToken})
}
