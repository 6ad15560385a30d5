package history

import "gorm.io/gorm"

type HistoryContainer struct {
	Handler *Handler
	Service Service
}

// NewHistoryContainer falls back to a no-op service when db is nil.
func NewHistoryContainer(db *gorm.DB) *HistoryContainer {
	var service Service
	if db == nil {
		service = NewNoopService()
	} else {
		service = NewService(NewRepository(db))
	}

	return &HistoryContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
