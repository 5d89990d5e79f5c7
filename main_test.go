package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRun_WiresRouterAndServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	isTest = true
	defer func() { isTest = false }()

	prevConnect, prevServe := connectDB, runServer
	defer func() { connectDB, runServer = prevConnect, prevServe }()

	connectDB = func() error { return nil }

	var capturedAddr string
	var capturedRouter *gin.Engine
	runServer = func(r *gin.Engine, addr string) error {
		capturedRouter = r
		capturedAddr = addr
		return nil
	}

	main()
	run()

	assert.Equal(t, ":8000", capturedAddr)
	assert.NotNil(t, capturedRouter)

	routePaths := make(map[string]bool)
	for _, route := range capturedRouter.Routes() {
		routePaths[route.Method+" "+route.Path] = true
	}
	assert.True(t, routePaths["POST /api/billing"])
	assert.True(t, routePaths["GET /api/billing/:billNumber"])
	assert.True(t, routePaths["POST /api/login"])
	assert.True(t, routePaths["GET /api/inventory"])
}

func TestRun_HonorsPortEnv(t *testing.T) {
	gin.SetMode(gin.TestMode)
	isTest = true
	defer func() { isTest = false }()
	t.Setenv("PORT", "9100")

	prevConnect, prevServe := connectDB, runServer
	defer func() { connectDB, runServer = prevConnect, prevServe }()

	connectDB = func() error { return nil }

	var capturedAddr string
	runServer = func(r *gin.Engine, addr string) error {
		capturedAddr = addr
		return nil
	}

	run()

	assert.Equal(t, ":9100", capturedAddr)
}
