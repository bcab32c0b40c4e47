package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/engagecrm/engage-backend/internal/models"
	"github.com/engagecrm/engage-backend/internal/repositories/memory"
	"github.com/engagecrm/engage-backend/internal/services"
	"github.com/engagecrm/engage-backend/pkg/delivery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newCampaignRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewCampaignService(
		memory.NewCampaignRepository(),
		memory.NewCustomerRepository(),
		delivery.FixedSimulator{Rate: 0.8},
		zap.NewNop(),
	)
	h := NewCampaignHandler(svc)

	r := gin.New()
	r.GET("/campaigns", h.ListCampaigns)
	r.POST("/campaigns", h.CreateCampaign)
	r.GET("/campaigns/:id", h.GetCampaign)
	r.PUT("/campaigns/:id", h.UpdateCampaign)
	r.DELETE("/campaigns/:id", h.DeleteCampaign)
	return r
}

func performJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCampaignEndpoint(t *testing.T) {
	r := newCampaignRouter(t)

	w := performJSON(r, http.MethodPost, "/campaigns", gin.H{
		"name":         "Diwali Sale",
		"message":      "20% off this week",
		"ruleLogic":    "AND",
		"audienceSize": 500,
		"rules": []gin.H{
			{"id": "rule-1", "field": "city", "operator": "eq", "value": "Mumbai"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var campaign models.Campaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &campaign))
	assert.Equal(t, models.CampaignStatusDraft, campaign.Status)
	assert.Equal(t, 500, campaign.AudienceSize)
	assert.False(t, campaign.ID.IsZero())
}

func TestCreateCampaignEndpointValidationErrors(t *testing.T) {
	r := newCampaignRouter(t)

	w := performJSON(r, http.MethodPost, "/campaigns", gin.H{"name": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "message")
	assert.Contains(t, body.Errors, "rules")
}

func TestGetCampaignEndpointNotFound(t *testing.T) {
	r := newCampaignRouter(t)

	w := performJSON(r, http.MethodGet, "/campaigns/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCampaignEndpointBadID(t *testing.T) {
	r := newCampaignRouter(t)

	w := performJSON(r, http.MethodGet, "/campaigns/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCampaignEndpointLifecycle(t *testing.T) {
	r := newCampaignRouter(t)

	w := performJSON(r, http.MethodPost, "/campaigns", gin.H{
		"name":         "Diwali Sale",
		"message":      "20% off this week",
		"ruleLogic":    "AND",
		"audienceSize": 500,
		"rules": []gin.H{
			{"id": "rule-1", "field": "city", "operator": "eq", "value": "Mumbai"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Campaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = performJSON(r, http.MethodPut, "/campaigns/"+created.ID.Hex(), gin.H{
		"status": "Sent",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Campaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.CampaignStatusSent, updated.Status)
	assert.Equal(t, 400, updated.SentCount)
	assert.Equal(t, 100, updated.FailedCount)
}

func TestDeleteCampaignEndpoint(t *testing.T) {
	r := newCampaignRouter(t)

	w := performJSON(r, http.MethodPost, "/campaigns", gin.H{
		"name":      "Short lived",
		"message":   "Hello",
		"ruleLogic": "OR",
		"rules": []gin.H{
			{"id": "rule-1", "field": "city", "operator": "eq", "value": "Pune"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Campaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = performJSON(r, http.MethodDelete, "/campaigns/"+created.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(r, http.MethodGet, "/campaigns/"+created.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
