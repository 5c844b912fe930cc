package main

import (
	appfx "github.com/harunoztuurk/otoservis/internal/fx"

	"go.uber.org/fx"
)

// @title OtoServis API
// @version 1.0
// @description Araç servis atölyesi için servis, fatura ve ödeme yaşam döngüsü API'si
// @BasePath /api
func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
