// Package routes maps the HTTP surface onto controllers.
package routes

import (
	"github.com/blossom-shop/blossom/app/controllers"
	"github.com/blossom-shop/blossom/pkg/router"
)

// API bundles the controllers the route table needs.
type API struct {
	Products     *controllers.ProductController
	Transactions *controllers.TransactionController
	BankDetails  *controllers.BankDetailsController
	Settings     *controllers.SettingsController
	Admin        *controllers.AdminController
}

// Register mounts every endpoint under the /api prefix.
func Register(r *router.Router, api API) {
	g := r.Group("/api")

	g.Get("/products", "products.index", api.Products.Index)
	g.Post("/products", "products.store", api.Products.Store)
	g.Get("/products/{id}", "products.show", api.Products.Show)
	g.Put("/products/{id}", "products.update", api.Products.Update)
	g.Patch("/products/{id}", "products.patch", api.Products.Update)
	g.Delete("/products/{id}", "products.destroy", api.Products.Destroy)
	g.Post("/products/{id}/upload-images", "products.images.upload", api.Products.UploadImages)
	g.Post("/products/{id}/set-primary-image", "products.images.primary", api.Products.SetPrimaryImage)
	g.Delete("/products/{id}/delete-image", "products.images.delete", api.Products.DeleteImage)

	g.Get("/transactions", "transactions.index", api.Transactions.Index)
	g.Post("/transactions", "transactions.store", api.Transactions.Store)
	g.Get("/transactions/{id}", "transactions.show", api.Transactions.Show)
	g.Put("/transactions/{id}", "transactions.update", api.Transactions.Update)
	g.Patch("/transactions/{id}", "transactions.patch", api.Transactions.Update)
	g.Delete("/transactions/{id}", "transactions.destroy", api.Transactions.Destroy)
	g.Get("/track-order", "transactions.track", api.Transactions.Track)
	g.Post("/upload-payment-proof", "transactions.proof", api.Transactions.UploadPaymentProof)

	g.Get("/bank-details", "bank-details.index", api.BankDetails.Index)
	g.Post("/bank-details", "bank-details.store", api.BankDetails.Store)
	g.Get("/bank-details/{id}", "bank-details.show", api.BankDetails.Show)
	g.Put("/bank-details/{id}", "bank-details.update", api.BankDetails.Update)
	g.Patch("/bank-details/{id}", "bank-details.patch", api.BankDetails.Update)
	g.Delete("/bank-details/{id}", "bank-details.destroy", api.BankDetails.Destroy)

	g.Get("/site-settings", "settings.show", api.Settings.Show)
	g.Put("/site-settings", "settings.update", api.Settings.Update)
	g.Patch("/site-settings", "settings.patch", api.Settings.Update)

	g.Post("/verify-admin", "admin.verify", api.Admin.Verify)
}
