package postgres

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/docflowhq/docflow-backend/internal/infrastructure/record"
)

// RecordModel é a linha GORM que guarda um registro serializado de uma
// coleção do record store. Position preserva a ordem de inserção.
type RecordModel struct {
	Collection string `gorm:"type:varchar(64);primaryKey"`
	Position   int    `gorm:"primaryKey;autoIncrement:false"`
	Payload    []byte `gorm:"type:jsonb;not null"`
}

func (RecordModel) TableName() string {
	return "records"
}

// RecordStore implementa record.Store sobre o PostgreSQL. Write substitui
// a coleção inteira dentro de uma transação, preservando a garantia de
// substituição atômica do contrato do store.
type RecordStore struct {
	db      *gorm.DB
	latency record.Latency
}

// NewRecordStore cria um novo RecordStore
func NewRecordStore(db *gorm.DB, latency record.Latency) record.Store {
	return &RecordStore{db: db, latency: latency}
}

func (s *RecordStore) Read(ctx context.Context, collection record.Collection) ([]json.RawMessage, error) {
	s.latency.SleepRead()

	var models []RecordModel
	err := s.db.WithContext(ctx).
		Where("collection = ?", string(collection)).
		Order("position").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	records := make([]json.RawMessage, len(models))
	for i, model := range models {
		records[i] = json.RawMessage(model.Payload)
	}

	return records, nil
}

func (s *RecordStore) Write(ctx context.Context, collection record.Collection, records []json.RawMessage) error {
	s.latency.SleepWrite()

	models := make([]RecordModel, len(records))
	for i, raw := range records {
		models[i] = RecordModel{
			Collection: string(collection),
			Position:   i,
			Payload:    []byte(raw),
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", string(collection)).Delete(&RecordModel{}).Error; err != nil {
			return err
		}

		if len(models) == 0 {
			return nil
		}

		return tx.Create(&models).Error
	})
}
