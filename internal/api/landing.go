package api

import (
	"embed"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

//go:embed web/*
var embeddedWeb embed.FS

// MountLanding serves the embedded landing page at the root path. API and
// swagger routes take precedence; the static handler only answers paths
// nothing else claims.
func MountLanding(r *gin.Engine) {
	fs := static.EmbedFolder(embeddedWeb, "web")
	if fs == nil {
		panic("failed to load embedded web assets")
	}
	r.Use(static.Serve("/", fs))
}
