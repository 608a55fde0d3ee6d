package main

// Seeds a development database with a small but representative catalog:
// a category tree for both lines, a handful of motos with spec sheets,
// spare parts and homepage content.

import (
	"os"
	"time"

	"github.com/Bran258/land-roys-v4/internal/config"
	"github.com/Bran258/land-roys-v4/internal/infra"
	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	if err := seed(db); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("seed completed")
}

func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Categoria{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info().Msg("database already seeded, skipping")
		return nil
	}

	cargueros := model.Categoria{Nombre: "Cargueros", Linea: model.LineaMotos, Estado: true}
	deportivas := model.Categoria{Nombre: "Deportivas", Linea: model.LineaMotos, Estado: true}
	lubricantes := model.Categoria{Nombre: "Lubricantes", Linea: model.LineaRepuestos, Estado: true}
	for _, c := range []*model.Categoria{&cargueros, &deportivas, &lubricantes} {
		if err := db.Create(c).Error; err != nil {
			return err
		}
	}

	liviano := model.Categoria{Nombre: "Carguero liviano", Linea: model.LineaMotos, Estado: true, ParentID: &cargueros.ID}
	pesado := model.Categoria{Nombre: "Carguero pesado", Linea: model.LineaMotos, Estado: true, ParentID: &cargueros.ID}
	for _, c := range []*model.Categoria{&liviano, &pesado} {
		if err := db.Create(c).Error; err != nil {
			return err
		}
	}

	anio := 2024
	cc := 890
	mt09 := model.Moto{
		Nombre:    "MT-09",
		Categoria: "Deportivas",
		Precio:    decimal.NewFromInt(9800000),
		Stock:     3,
		Estado:    model.EstadoDisponible,
	}
	if err := db.Create(&mt09).Error; err != nil {
		return err
	}
	if err := db.Create(&model.MotoSpec{MotoID: mt09.ID, Anio: &anio, CilindradaCC: &cc}).Error; err != nil {
		return err
	}

	carguero := model.Moto{
		Nombre:    "ZB 200 Carguera",
		Categoria: "Carguero liviano",
		Precio:    decimal.NewFromInt(4200000),
		Stock:     5,
		Estado:    model.EstadoDisponible,
	}
	if err := db.Create(&carguero).Error; err != nil {
		return err
	}

	aceite := model.Repuesto{
		Nombre:      "Aceite 20W-50 mineral",
		Categoria:   "Lubricantes",
		CategoriaID: &lubricantes.ID,
		Precio:      decimal.NewFromInt(15000),
		Stock:       40,
		Estado:      model.EstadoDisponible,
	}
	if err := db.Create(&aceite).Error; err != nil {
		return err
	}

	slide := model.Slide{
		Titulo:    "Nueva temporada",
		ImagenURL: "https://example.com/slider/temporada.jpg",
		Orden:     0,
		Activo:    true,
	}
	return db.Create(&slide).Error
}
