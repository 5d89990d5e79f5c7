package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HealisPortal/util"
)

func billingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	Billing(router)
	return router
}

func postBilling(t *testing.T, router *gin.Engine, payload string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/api/billing", bytes.NewBufferString(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestCreateBilling_MalformedJSONIsBadRequest(t *testing.T) {
	router := billingRouter()

	recorder := postBilling(t, router, `{"patientDetails":`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
}

func TestCreateBilling_EmptyMedicinesIsBadRequest(t *testing.T) {
	router := billingRouter()

	recorder := postBilling(t, router, `{
		"patientDetails": {"name": "Asha Rao", "email": "asha@example.com", "phone": "9876543210"},
		"medicines": [],
		"billing": {"subtotal": 0, "tax": 0, "totalAmount": 0}
	}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, util.MEDICINES_MUST_NOT_BE_EMPTY, body["message"])
}

func TestCreateBilling_MissingPatientNameIsBadRequest(t *testing.T) {
	router := billingRouter()

	recorder := postBilling(t, router, `{
		"patientDetails": {"name": "   ", "email": "asha@example.com", "phone": "9876543210"},
		"medicines": [{"name": "Paracetamol", "quantity": 1, "pricePerUnit": 20}],
		"billing": {"subtotal": 20, "tax": 2, "totalAmount": 22}
	}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, util.PATIENT_NAME_REQUIRED, body["message"])
}

func TestCreateBilling_AmountMismatchIsBadRequestWithFixedMessage(t *testing.T) {
	router := billingRouter()

	recorder := postBilling(t, router, `{
		"patientDetails": {"name": "Asha Rao", "email": "asha@example.com", "phone": "9876543210"},
		"medicines": [
			{"name": "Paracetamol", "quantity": 2, "pricePerUnit": 50},
			{"name": "Cetirizine", "quantity": 1, "pricePerUnit": 20}
		],
		"billing": {"subtotal": 120, "tax": 15, "totalAmount": 135}
	}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, util.AMOUNTS_DO_NOT_MATCH, body["message"])
}
