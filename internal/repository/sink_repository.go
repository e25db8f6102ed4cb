package repository

import (
	"fmt"
	"reflect"

	"gorm.io/gorm"

	"github.com/workseedhq/workseed/internal/constants"
)

// GormSink is a GORM implementation of Sink
type GormSink struct {
	db *gorm.DB
}

// NewSink creates a new Sink
func NewSink(db *gorm.DB) Sink {
	return &GormSink{db: db}
}

// InsertBatch writes the records to the named table in chunks. CreateInBatches
// wraps the chunks in a single transaction, so a failed stage leaves the table
// untouched.
func (s *GormSink) InsertBatch(table string, records interface{}) error {
	value := reflect.ValueOf(records)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Slice {
		return fmt.Errorf("insert into %s: expected a slice, got %T", table, records)
	}
	if value.Len() == 0 {
		return fmt.Errorf("insert into %s: %w", table, ErrEmptyBatch)
	}

	if err := s.db.Table(table).CreateInBatches(records, constants.InsertChunkSize).Error; err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}

	return nil
}
