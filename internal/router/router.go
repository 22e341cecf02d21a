package router

import (
	"Radiation-Safety-Question-Bank/internal/api"
	"Radiation-Safety-Question-Bank/internal/utils"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const RequestIDHeader = "X-Request-ID"

func SetupRouter(bankHandler *api.BankHandler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Logger())

	config := cors.DefaultConfig()
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	config.AllowHeaders = append(config.AllowHeaders, RequestIDHeader, "Content-Type")
	config.ExposeHeaders = append(config.ExposeHeaders, RequestIDHeader)
	r.Use(cors.New(config))

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/bank", bankHandler.SummaryHandler)
		apiV1.GET("/questions", bankHandler.ListQuestionsHandler)
		apiV1.GET("/questions/:id", bankHandler.GetQuestionHandler)
		apiV1.POST("/reload", bankHandler.ReloadHandler)
		apiV1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "UP"})
		})
	}

	return r
}

// RequestID 沿用调用方传入的 X-Request-ID，没有时生成一个。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			generated, err := utils.GenerateRequestID()
			if err != nil {
				log.Printf("!!! 错误：生成请求ID失败: %v", err)
			}
			requestID = generated
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		requestID, _ := c.Get("request_id")
		log.Printf("[HTTP] [%s] %s %s %d %s",
			requestID,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
