package repository

import (
	"context"
	"errors"

	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/pkg/pg"
	"gorm.io/gorm/clause"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
)

type InvoiceRepository struct {
	*pg.DB
}

func NewInvoiceRepository(db *pg.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db,
	}
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*model.InvoiceSummary, error) {
	var entities []*InvoiceEntity
	if err := r.Read(ctx).Select("id", "comp_code").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toInvoiceSummaries(entities), nil
}

// GetWithCompany loads an invoice joined with its owning company.
func (r *InvoiceRepository) GetWithCompany(ctx context.Context, id int64) (*model.InvoiceDetail, error) {
	var rows []*invoiceCompanyRow
	err := r.Read(ctx).
		Table("invoices AS inv").
		Select(`
            inv.id          AS id,
            inv.amt         AS amt,
            inv.paid        AS paid,
            inv.add_date    AS add_date,
            inv.paid_date   AS paid_date,
            c.code          AS code,
            c.name          AS name,
            c.description   AS description
        `).
		Joins("JOIN companies AS c ON c.code = inv.comp_code").
		Where("inv.id = ?", id).
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrInvoiceNotFound
	}
	return toInvoiceDetail(rows[0]), nil
}

// Create inserts an invoice; paid, add_date and paid_date take their column
// defaults and come back through RETURNING.
func (r *InvoiceRepository) Create(ctx context.Context, p model.InvoiceCreateRequest) (*model.Invoice, error) {
	entity := &InvoiceEntity{Amt: p.Amt}
	if p.CompCode != nil {
		entity.CompCode = *p.CompCode
	}

	if err := r.Write(ctx).Clauses(clause.Returning{}).Create(entity).Error; err != nil {
		return nil, err
	}
	return toInvoiceModel(entity), nil
}

func (r *InvoiceRepository) UpdateAmount(ctx context.Context, id int64, amt *float64) (*model.Invoice, error) {
	var entity InvoiceEntity
	result := r.Write(ctx).
		Model(&entity).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("amt", amt)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrInvoiceNotFound
	}
	return toInvoiceModel(&entity), nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Where("id = ?", id).Delete(&InvoiceEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}
