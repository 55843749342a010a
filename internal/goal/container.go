package goal

import "gorm.io/gorm"

type Container struct {
	Handler *Handler
	Service Service
	Engine  *Engine
	Repo    Repository
}

func NewContainer(db *gorm.DB, metrics MetricSummer, achievements CompletionRecorder) *Container {
	repo := NewRepository(db)
	engine := NewEngine(repo, metrics, achievements, db, EngineConfigFromEnv())
	service := NewService(repo, engine)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Engine:  engine,
		Repo:    repo,
	}
}
