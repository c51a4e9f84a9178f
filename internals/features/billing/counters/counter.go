// Package counters menyediakan nomor urut per scope per tahun
// (invoice, kwitansi). Increment dilakukan dengan row lock supaya
// nomor tidak pernah loncat ganda saat concurrent.
package counters

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	ScopeInvoice = "invoice"
	ScopeReceipt = "receipt"
)

type CounterModel struct {
	CounterScope string `gorm:"column:counter_scope;size:16;not null;primaryKey" json:"counter_scope"`
	CounterYear  int    `gorm:"column:counter_year;not null;primaryKey" json:"counter_year"`
	CounterValue int64  `gorm:"column:counter_value;not null;default:0" json:"counter_value"`

	CounterUpdatedAt time.Time `gorm:"column:counter_updated_at;autoUpdateTime" json:"counter_updated_at"`
}

func (CounterModel) TableName() string { return "counters" }

// Next: ambil nomor berikutnya untuk scope+tahun di dalam transaksi
// pemanggil. Baris counter dikunci FOR UPDATE sampai commit.
func Next(tx *gorm.DB, scope string, year int) (int64, error) {
	var ctr CounterModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ctr, "counter_scope = ? AND counter_year = ?", scope, year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctr = CounterModel{CounterScope: scope, CounterYear: year, CounterValue: 0}
		// ON CONFLICT DO NOTHING lalu lock ulang, aman dari balapan insert
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&ctr).Error; err != nil {
			return 0, err
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ctr, "counter_scope = ? AND counter_year = ?", scope, year).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	ctr.CounterValue++
	if err := tx.Model(&CounterModel{}).
		Where("counter_scope = ? AND counter_year = ?", scope, year).
		Update("counter_value", ctr.CounterValue).Error; err != nil {
		return 0, err
	}
	return ctr.CounterValue, nil
}
