package router

import "github.com/gin-gonic/gin"

// Module is one feature area's slice of the route table. Each module mounts
// its own endpoints, public and protected, onto the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
