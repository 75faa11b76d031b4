package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and mounts them under a common /api
// group. Middlewares added with Use apply to the group as a whole, before
// any module routes.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{
		Engine: engine,
		API:    engine.Group("/api"),
	}
}

// Use queues group-wide middleware. Must be called before RegisterAll.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll applies the queued middleware and mounts every module's routes.
func (r *Registry) RegisterAll() {
	r.API.Use(r.middlewares...)
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
