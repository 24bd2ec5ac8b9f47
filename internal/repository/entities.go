package repository

// Entities lists every mapped table, parents first. Tests hand it to
// AutoMigrate, production schemas come from the goose migrations.
func Entities() []any {
	return []any{&CompanyEntity{}, &IndustryEntity{}, &InvoiceEntity{}, &CompanyIndustryEntity{}}
}
