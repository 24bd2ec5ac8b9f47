package handlers

// RegisterRoutes mounts every resource at the root of e.
func RegisterRoutes(e Routes, company *CompanyHandler, invoice *InvoiceHandler, health *HealthHandler) {
	RegisterCompanyRoutes(e, company)
	RegisterInvoiceRoutes(e, invoice)
	RegisterHealthRoutes(e, health)
}
