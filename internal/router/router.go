package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gstbook/internal/handler"
	"gstbook/internal/metrics"
	"gstbook/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Health   *handler.HealthHandler
	HSN      *handler.HSNHandler
	Tax      *handler.TaxHandler
	Business *handler.BusinessHandler
	Customer *handler.CustomerHandler
	Invoice  *handler.InvoiceHandler
	Payment  *handler.PaymentHandler
	Library  *handler.ItemLibraryHandler
	Master   *handler.MasterDataHandler
	Template *handler.TemplateHandler
}

// Options configures the engine built by Setup.
type Options struct {
	AllowedOrigins []string
	// MetricsPath mounts MetricsHandler when both are set.
	MetricsPath    string
	MetricsHandler http.Handler
	Metrics        *metrics.Metrics
	Logger         *zap.Logger
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, opts Options) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(middleware.CORS(opts.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)
	if opts.MetricsPath != "" && opts.MetricsHandler != nil {
		r.GET(opts.MetricsPath, gin.WrapH(opts.MetricsHandler))
	}

	v1 := r.Group("/api/v1")

	hsnGroup := v1.Group("/hsn")
	hsnGroup.GET("/suggest", h.HSN.Suggest)
	hsnGroup.GET("/search", h.HSN.Search)
	hsnGroup.GET("/codes/:code", h.HSN.Lookup)
	hsnGroup.POST("/:id/use", h.HSN.RecordUsage)

	v1.POST("/tax/compute", h.Tax.Compute)

	v1.GET("/business", h.Business.Get)
	v1.PUT("/business", h.Business.Update)

	customers := v1.Group("/customers")
	customers.POST("", h.Customer.Create)
	customers.GET("", h.Customer.List)
	customers.GET("/:id", h.Customer.GetByID)
	customers.PUT("/:id", h.Customer.Update)
	customers.DELETE("/:id", h.Customer.Delete)
	customers.GET("/:id/invoices/export", h.Customer.ExportInvoices)

	// Static segments are registered before /:id so they are not read as ids.
	invoices := v1.Group("/invoices")
	invoices.GET("/summary", h.Invoice.Summary)
	invoices.GET("/export", h.Invoice.Export)
	invoices.POST("", h.Invoice.Create)
	invoices.GET("", h.Invoice.List)
	invoices.GET("/:id", h.Invoice.GetByID)
	invoices.PUT("/:id", h.Invoice.Update)
	invoices.DELETE("/:id", h.Invoice.Delete)
	invoices.POST("/:id/mark-paid", h.Invoice.MarkPaid)
	invoices.POST("/:id/mark-unpaid", h.Invoice.MarkUnpaid)
	invoices.POST("/:id/duplicate", h.Invoice.Duplicate)
	invoices.POST("/:id/payments", h.Payment.Add)
	invoices.GET("/:id/payments", h.Payment.List)

	v1.DELETE("/payments/:id", h.Payment.Delete)

	library := v1.Group("/item-library")
	library.POST("", h.Library.Create)
	library.GET("", h.Library.List)
	library.GET("/:id", h.Library.GetByID)
	library.PUT("/:id", h.Library.Update)
	library.DELETE("/:id", h.Library.Delete)

	masterServices := v1.Group("/master-services")
	masterServices.GET("/search", h.Master.SearchServices)
	masterServices.GET("/categories", h.Master.ServiceCategories)
	masterServices.POST("/:id/use", h.Master.RecordServiceUsage)

	masterProducts := v1.Group("/master-products")
	masterProducts.GET("/search", h.Master.SearchProducts)
	masterProducts.GET("/categories", h.Master.ProductCategories)

	v1.GET("/master-data/search", h.Master.Search)
	v1.GET("/master-data/categories", h.Master.Categories)

	templates := v1.Group("/templates")
	templates.POST("", h.Template.Create)
	templates.GET("", h.Template.List)
	templates.GET("/:id", h.Template.GetByID)
	templates.PUT("/:id", h.Template.Update)
	templates.DELETE("/:id", h.Template.Delete)

	return r
}
