package http

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

func (s *Service) initRouter() {
	s.initBaseRouter()
	s.initDocsRouter()
	s.initAPIRouter()
	s.initRPCRouter()
}

func (s *Service) initBaseRouter() {
	s.router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

// initDocsRouter serves the knowledge PDF so page-link locators resolve. The
// route is registered even when the file is not there yet; requests 404 until
// it appears, matching the per-request stat the page-link tool does.
func (s *Service) initDocsRouter() {
	docPath := s.conf.GetDocPath()
	s.router.StaticFile("/docs/"+filepath.Base(docPath), docPath)
}

func (s *Service) initAPIRouter() {
	api := s.router.Group("/api/v1")
	{
		api.POST("/question", s.handleGenerateQuestion)
		api.POST("/redact", s.handleRedact)
		api.GET("/page_link", s.handlePageLink)
	}

	// Aliases kept for clients of the pre-RPC revisions.
	s.router.POST("/generate_question", s.handleGenerateQuestion)
	s.router.POST("/clean_for_logging", s.handleRedact)
	s.router.GET("/get_pdf_page_link", s.handlePageLink)
}

func (s *Service) initRPCRouter() {
	s.router.POST("/mcp", s.rpc.HandleRPC)
}
